package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackhq/fencewatch/traccar"
	"github.com/trackhq/fencewatch/types"
)

type mockClient struct {
	geofences []traccar.Geofence
	positions []traccar.Position
	devices   []traccar.Device
	err       error

	requestedDevice int
	requestedFrom   time.Time
	requestedTo     time.Time
}

func (c *mockClient) Geofences(context.Context) ([]traccar.Geofence, error) {
	return c.geofences, c.err
}

func (c *mockClient) Positions(_ context.Context, deviceID int, from time.Time, to time.Time) ([]traccar.Position, error) {
	c.requestedDevice = deviceID
	c.requestedFrom = from
	c.requestedTo = to
	return c.positions, c.err
}

func (c *mockClient) Devices(context.Context) ([]traccar.Device, error) {
	return c.devices, c.err
}

func (c *mockClient) Ping(context.Context) error {
	return c.err
}

func fixTime(hour int) time.Time {
	return time.Date(2024, 5, 1, hour, 0, 0, 0, time.UTC)
}

func testClient() *mockClient {
	return &mockClient{
		geofences: []traccar.Geofence{
			{ID: 1, Name: "island", Area: "CIRCLE (0 0, 1000)"},
		},
		positions: []traccar.Position{
			{Latitude: 0.05, Longitude: 0, FixTime: fixTime(8)},
			{Latitude: 0.001, Longitude: 0, FixTime: fixTime(9)},
			{Latitude: 0.05, Longitude: 0, FixTime: fixTime(10)},
		},
		devices: []traccar.Device{
			{ID: 7, Name: "van", UniqueID: "867322"},
		},
	}
}

func request(t *testing.T, handler http.Handler, method string, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder
}

func TestEvents(t *testing.T) {
	client := testClient()
	handler := NewHandler(client, 7, time.UTC)

	recorder := request(t, handler, http.MethodGet, "/events/2024-05-01")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "application/json")

	var events []types.Event
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &events))
	require.Len(t, events, 2)
	assert.Equal(t, types.EventEnter, events[0].Type)
	assert.Equal(t, types.EventLeave, events[1].Type)
	assert.Equal(t, "island", events[0].Geofence)
	assert.Equal(t, time.Hour.Seconds(), events[1].DurationSeconds)

	// configured device and the requested day window reach the client
	assert.Equal(t, 7, client.requestedDevice)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), client.requestedFrom)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), client.requestedTo)
}

func TestEventsDeviceOverride(t *testing.T) {
	client := testClient()
	handler := NewHandler(client, 7, time.UTC)

	recorder := request(t, handler, http.MethodGet, "/events/2024-05-01?device=9")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 9, client.requestedDevice)

	recorder = request(t, handler, http.MethodGet, "/events/2024-05-01?device=van")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestEventsEmptyDay(t *testing.T) {
	client := testClient()
	client.positions = nil
	handler := NewHandler(client, 7, time.UTC)

	recorder := request(t, handler, http.MethodGet, "/events/2024-05-01")
	require.Equal(t, http.StatusOK, recorder.Code)
	// an empty day is an empty list, not null
	assert.Equal(t, "[]", recorder.Body.String())
}

func TestEventsBadDay(t *testing.T) {
	handler := NewHandler(testClient(), 7, time.UTC)

	recorder := request(t, handler, http.MethodGet, "/events/yesterday")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestEventsUpstreamError(t *testing.T) {
	client := testClient()
	client.err = errors.New("connection refused")
	handler := NewHandler(client, 7, time.UTC)

	recorder := request(t, handler, http.MethodGet, "/events/2024-05-01")
	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "connection refused")
}

func TestGeofences(t *testing.T) {
	client := testClient()
	client.geofences = append(client.geofences, traccar.Geofence{
		ID: 2, Name: "route", Area: "LINESTRING (48 2, 49 3)",
	})
	handler := NewHandler(client, 7, time.UTC)

	recorder := request(t, handler, http.MethodGet, "/geofences")
	require.Equal(t, http.StatusOK, recorder.Code)

	var summaries []GeofenceSummary
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summaries))
	// the linestring is not mappable and must be dropped
	require.Len(t, summaries, 1)
	assert.Equal(t, GeofenceSummary{Name: "island", Kind: "circle"}, summaries[0])
}

func TestDevices(t *testing.T) {
	handler := NewHandler(testClient(), 7, time.UTC)

	recorder := request(t, handler, http.MethodGet, "/devices")
	require.Equal(t, http.StatusOK, recorder.Code)

	var devices []traccar.Device
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &devices))
	require.Len(t, devices, 1)
	assert.Equal(t, "van", devices[0].Name)
}

func TestPing(t *testing.T) {
	client := testClient()
	handler := NewHandler(client, 7, time.UTC)

	recorder := request(t, handler, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	client.err = errors.New("connection refused")
	recorder = request(t, handler, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	handler := NewHandler(testClient(), 7, time.UTC)

	recorder := request(t, handler, http.MethodPost, "/events/2024-05-01")
	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
