package traccar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"

	"github.com/trackhq/fencewatch/config"
	"github.com/trackhq/fencewatch/metrics"
)

// traccar accepts UTC timestamps with an explicit Z suffix
const timeLayout = "2006-01-02T15:04:05Z"

// Client .
type Client interface {
	Geofences(context.Context) ([]Geofence, error)
	Positions(ctx context.Context, deviceID int, from time.Time, to time.Time) ([]Position, error)
	Devices(context.Context) ([]Device, error)
	Ping(context.Context) error
}

type httpClient struct {
	baseURI  string
	username string
	password string
	client   *http.Client
}

// NewClient .
func NewClient(conf config.TraccarConfig) Client {
	return httpClient{
		baseURI:  strings.TrimRight(conf.BaseURI, "/"),
		username: conf.Username,
		password: conf.Password,
		client: &http.Client{
			Timeout: conf.Timeout.Value(),
		},
	}
}

func (c httpClient) Geofences(ctx context.Context) ([]Geofence, error) {
	var geofences []Geofence
	if err := c.get(ctx, "/api/geofences", nil, &geofences); err != nil {
		return nil, err
	}
	return geofences, nil
}

func (c httpClient) Positions(ctx context.Context, deviceID int, from time.Time, to time.Time) ([]Position, error) {
	query := url.Values{}
	query.Set("deviceId", strconv.Itoa(deviceID))
	query.Set("from", from.UTC().Format(timeLayout))
	query.Set("to", to.UTC().Format(timeLayout))

	var positions []Position
	if err := c.get(ctx, "/api/positions", query, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

func (c httpClient) Devices(ctx context.Context) ([]Device, error) {
	var devices []Device
	if err := c.get(ctx, "/api/devices", nil, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

func (c httpClient) Ping(ctx context.Context) error {
	var server map[string]interface{}
	return c.get(ctx, "/api/server", nil, &server)
}

func (c httpClient) get(ctx context.Context, path string, query url.Values, out interface{}) (err error) {
	defer func() {
		metrics.TraccarRequests.WithLabelValues(path, strconv.FormatBool(err == nil)).Inc()
	}()

	uri := c.baseURI + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return errors.Trace(err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	log.WithField("uri", uri).Debug("Request traccar")

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Annotatef(err, "request traccar %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("traccar returned %s for %s", resp.Status, path)
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Annotatef(err, "decode traccar %s response", path)
	}
	return nil
}
