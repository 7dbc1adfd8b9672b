package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/juju/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/trackhq/fencewatch/analyzer"
	"github.com/trackhq/fencewatch/fence"
	"github.com/trackhq/fencewatch/traccar"
	"github.com/trackhq/fencewatch/types"
	"github.com/trackhq/fencewatch/utils"
)

// Handler serves the fencewatch api.
type Handler struct {
	client   traccar.Client
	deviceID int
	location *time.Location
}

// NewHandler .
func NewHandler(client traccar.Client, deviceID int, location *time.Location) http.Handler {
	handler := Handler{
		client:   client,
		deviceID: deviceID,
		location: location,
	}

	router := mux.NewRouter()
	router.NewRoute().Name("Events").Methods(http.MethodGet).Path("/events/{day}").HandlerFunc(handler.Events)
	router.NewRoute().Name("Geofences").Methods(http.MethodGet).Path("/geofences").HandlerFunc(handler.Geofences)
	router.NewRoute().Name("Devices").Methods(http.MethodGet).Path("/devices").HandlerFunc(handler.Devices)
	router.NewRoute().Name("Ping").Methods(http.MethodGet, http.MethodHead).Path("/ping").HandlerFunc(handler.Ping)
	router.NewRoute().Name("Metrics").Methods(http.MethodGet).Path("/metrics").Handler(promhttp.Handler())

	return instrument(router)
}

// Events maps one day of positions onto geofence events.
func (h Handler) Events(res http.ResponseWriter, req *http.Request) {
	day := mux.Vars(req)["day"]
	from, to, err := dayWindow(day, h.location)
	if err != nil {
		_ = utils.WriteBadRequestResponse(res, err)
		return
	}

	deviceID := h.deviceID
	if value := req.URL.Query().Get("device"); value != "" {
		if deviceID, err = strconv.Atoi(value); err != nil {
			_ = utils.WriteBadRequestResponse(res, types.ErrBadDeviceParam)
			return
		}
	}

	var (
		geofences []traccar.Geofence
		positions []traccar.Position
	)
	group, ctx := errgroup.WithContext(req.Context())
	group.Go(func() (err error) {
		geofences, err = h.client.Geofences(ctx)
		return
	})
	group.Go(func() (err error) {
		positions, err = h.client.Positions(ctx, deviceID, from, to)
		return
	})
	if err = group.Wait(); err != nil {
		log.WithError(err).WithField("day", day).Error("Load traccar data error")
		_ = utils.WriteBadGateWayResponse(res, err)
		return
	}

	events := analyzer.FromTraccar(geofences).MapPositions(positions)
	log.WithFields(log.Fields{
		"day":       day,
		"device":    deviceID,
		"positions": len(positions),
		"events":    len(events),
	}).Debug("Mapped positions to events")

	_ = utils.WriteHTTPJSONResponse(res, http.StatusOK, events)
}

// GeofenceSummary .
type GeofenceSummary struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Geofences lists the configured geofences the parser understands.
func (h Handler) Geofences(res http.ResponseWriter, req *http.Request) {
	geofences, err := h.client.Geofences(req.Context())
	if err != nil {
		log.WithError(err).Error("Load geofences error")
		_ = utils.WriteBadGateWayResponse(res, err)
		return
	}

	summaries := []GeofenceSummary{}
	for _, geofence := range geofences {
		parsed, err := fence.Parse(geofence.Name, geofence.Area)
		if err != nil {
			log.WithError(err).WithField("geofence", geofence.Name).Debug("Skip geofence")
			continue
		}
		summaries = append(summaries, GeofenceSummary{
			Name: parsed.Name(),
			Kind: parsed.Kind(),
		})
	}
	_ = utils.WriteHTTPJSONResponse(res, http.StatusOK, summaries)
}

// Devices passes the upstream device list through.
func (h Handler) Devices(res http.ResponseWriter, req *http.Request) {
	devices, err := h.client.Devices(req.Context())
	if err != nil {
		log.WithError(err).Error("Load devices error")
		_ = utils.WriteBadGateWayResponse(res, err)
		return
	}
	if devices == nil {
		devices = []traccar.Device{}
	}
	_ = utils.WriteHTTPJSONResponse(res, http.StatusOK, devices)
}

// Ping checks the upstream traccar server is reachable.
func (h Handler) Ping(res http.ResponseWriter, req *http.Request) {
	if err := h.client.Ping(req.Context()); err != nil {
		_ = utils.WriteBadGateWayResponse(res, errors.Annotate(err, "traccar unreachable"))
		return
	}
	res.WriteHeader(http.StatusNoContent)
}
