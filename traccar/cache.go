package traccar

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type cachedClient struct {
	Client

	ttl     time.Duration
	mutex   sync.Mutex
	fences  []Geofence
	fetched time.Time
}

// NewCachedClient memoizes geofence lookups for ttl, geofences change
// rarely compared to how often events are requested. A non-positive ttl
// disables caching.
func NewCachedClient(client Client, ttl time.Duration) Client {
	if ttl <= 0 {
		return client
	}
	return &cachedClient{
		Client: client,
		ttl:    ttl,
	}
}

func (c *cachedClient) Geofences(ctx context.Context) ([]Geofence, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.fences != nil && time.Since(c.fetched) < c.ttl {
		log.Debugf("Serving %d geofences from cache", len(c.fences))
		return c.fences, nil
	}

	fences, err := c.Client.Geofences(ctx)
	if err != nil {
		return nil, err
	}
	c.fences = fences
	c.fetched = time.Now()
	return fences, nil
}
