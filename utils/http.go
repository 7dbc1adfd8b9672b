package utils

import (
	"encoding/json"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// HTTPSimpleMessageResponseBody .
type HTTPSimpleMessageResponseBody struct {
	Message string `json:"message"`
}

// WriteBadRequestResponse .
func WriteBadRequestResponse(writer http.ResponseWriter, err error) error {
	return WriteHTTPJSONResponse(writer, http.StatusBadRequest, HTTPSimpleMessageResponseBody{Message: err.Error()})
}

// WriteBadGateWayResponse .
func WriteBadGateWayResponse(writer http.ResponseWriter, err error) error {
	return WriteHTTPJSONResponse(writer, http.StatusBadGateway, HTTPSimpleMessageResponseBody{Message: err.Error()})
}

// WriteInternalErrorResponse .
func WriteInternalErrorResponse(writer http.ResponseWriter, err error) error {
	return WriteHTTPJSONResponse(writer, http.StatusInternalServerError, HTTPSimpleMessageResponseBody{Message: err.Error()})
}

// WriteHTTPJSONResponse .
func WriteHTTPJSONResponse(writer http.ResponseWriter, statusCode int, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	header := writer.Header()
	header.Set("Content-Type", "application/json; charset=utf-8")
	header.Set("Content-Length", strconv.Itoa(len(data)))
	writer.WriteHeader(statusCode)
	if _, err = writer.Write(data); err != nil {
		log.WithError(err).Debug("Write response body error")
	}
	return err
}
