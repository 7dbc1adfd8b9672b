package app

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/juju/errors"

	fencewatchHttp "github.com/trackhq/fencewatch/http"
	"github.com/trackhq/fencewatch/service"
	"github.com/trackhq/fencewatch/utils"
)

type starter struct {
	logger         utils.Logger
	ss             []service.Service
	disposeTimeout time.Duration
}

func (starter starter) start(sigs <-chan os.Signal) error {
	chErr := utils.NewAutoCloseChanErr(len(starter.ss))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := sync.WaitGroup{}
	wg.Add(len(starter.ss))

	for _, elm := range starter.ss {
		go func(serv service.Service) {
			chErr.Send(starter.startService(ctx, serv))
			wg.Done()
		}(elm)
	}

	select {
	case <-sigs:
		starter.logger.Info("received terminate sigs")
		cancel()
		err := <-chErr.Receive()
		wg.Wait()
		return err
	case err := <-chErr.Receive():
		starter.logger.Errorf("error received, cause=%v", err)
		cancel()
		wg.Wait()
		starter.logger.Info("canceled")
		return err
	}
}

func (starter starter) startService(ctx context.Context, serv service.Service) error {
	if starter.disposeTimeout == time.Duration(0) {
		return serveContext{ctx: ctx, timeoutCtx: context.Background()}.serveAndDispose(serv)
	}

	timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), starter.disposeTimeout)
	defer timeoutCancel()

	return serveContext{ctx: ctx, timeoutCtx: timeoutCtx}.serveAndDispose(serv)
}

type serveContext struct {
	ctx        context.Context
	timeoutCtx context.Context
}

func (ctx serveContext) serveAndDispose(serv service.Service) error {
	disposable, serveErr := serv.Serve(ctx.ctx)
	if disposable == nil {
		return serveErr
	}
	if err := disposable.Dispose(ctx.timeoutCtx); err != nil {
		if serveErr != nil {
			return errors.Wrap(serveErr, err)
		}
		return err
	}
	return serveErr
}

const (
	unixPrefix  = "unix://"
	httpPrefix  = "http://"
	httpsPrefix = "https://"
)

type apiService struct {
	server    fencewatchHttp.Server
	hosts     []string
	gid       int
	tlsConfig fencewatchHttp.TLSConfig
}

func (service apiService) Serve(ctx context.Context) (service.Disposable, error) {
	ch := utils.NewAutoCloseChanErr(len(service.hosts))

	for _, host := range service.hosts {
		go func(addr string) {
			ch.Send(service.serveHost(addr))
		}(host)
	}

	select {
	case err := <-ch.Receive():
		return service, err
	case <-ctx.Done():
		return service, nil
	}
}

func (service apiService) Dispose(ctx context.Context) error {
	return service.server.Close(ctx)
}

func (service apiService) serveHost(address string) error {
	if strings.HasPrefix(address, unixPrefix) {
		return service.server.ServeUnix(strings.TrimPrefix(address, unixPrefix), service.gid)
	}
	if strings.HasPrefix(address, httpPrefix) {
		return service.server.ServeHTTP(strings.TrimPrefix(address, httpPrefix))
	}
	if strings.HasPrefix(address, httpsPrefix) {
		return service.server.ServeHTTPS(strings.TrimPrefix(address, httpsPrefix), service.tlsConfig)
	}
	return errors.Errorf("unsupported protocol schema %s", address)
}
