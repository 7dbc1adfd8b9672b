package http

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/docker/go-connections/sockets"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// TLSConfig .
type TLSConfig struct {
	CertFile string
	KeyFile  string
}

// Server .
type Server interface {
	ServeHTTP(string) error
	ServeHTTPS(string, TLSConfig) error
	ServeUnix(string, int) error
	Close(context.Context) error
}

type httpServer struct {
	http.Server
}

// NewServer .
func NewServer(handler http.Handler) Server {
	return &httpServer{
		Server: http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (server *httpServer) ServeHTTP(address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		log.WithError(err).WithField("address", address).Error("Create tcp listener error")
		return errors.Wrapf(err, "listen on %s", address)
	}
	return server.serve(listener, nil)
}

func (server *httpServer) ServeHTTPS(address string, config TLSConfig) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		log.WithError(err).WithField("address", address).Error("Create tcp listener for https error")
		return errors.Wrapf(err, "listen on %s", address)
	}
	return server.serve(listener, &config)
}

func (server *httpServer) ServeUnix(address string, gid int) error {
	listener, err := sockets.NewUnixSocket(address, gid)
	if err != nil {
		log.WithError(err).WithField("address", address).WithField("gid", gid).Error("Create unix listener error")
		return errors.Wrapf(err, "listen on unix socket %s", address)
	}
	return server.serve(listener, nil)
}

func (server *httpServer) serve(listener net.Listener, config *TLSConfig) error {
	log.Infof("Serving api on %s", listener.Addr())

	var err error
	if config != nil {
		err = server.ServeTLS(listener, config.CertFile, config.KeyFile)
	} else {
		err = server.Serve(listener)
	}
	if err != nil && err != http.ErrServerClosed {
		log.WithError(err).WithField("address", listener.Addr().String()).Error("Serve error")
		return err
	}
	return nil
}

func (server *httpServer) Close(ctx context.Context) error {
	return server.Shutdown(ctx)
}
