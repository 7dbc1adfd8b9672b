package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/trackhq/fencewatch/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// instrument wraps the router with request logging and a per route
// duration histogram.
func instrument(router *mux.Router) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		route := "NotFound"
		var match mux.RouteMatch
		if router.Match(req, &match) && match.Route != nil {
			if name := match.Route.GetName(); name != "" {
				route = name
			}
		}

		log.WithFields(log.Fields{
			"method": req.Method,
			"url":    req.URL.String(),
		}).Debug("Incoming request")

		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: res, status: http.StatusOK}
		router.ServeHTTP(recorder, req)

		metrics.RequestDuration.WithLabelValues(route, strconv.Itoa(recorder.status)).Observe(time.Since(start).Seconds())
	})
}
