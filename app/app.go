package app

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/trackhq/fencewatch/api"
	"github.com/trackhq/fencewatch/config"
	fencewatchHttp "github.com/trackhq/fencewatch/http"
	"github.com/trackhq/fencewatch/service"
	"github.com/trackhq/fencewatch/traccar"
	"github.com/trackhq/fencewatch/utils"
)

// Application .
type Application struct {
	ConfigPath string
	Hosts      []string
	Debug      bool
}

// Run .
func (app Application) Run() error {
	conf, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if len(app.Hosts) > 0 {
		conf.Server.Hosts = app.Hosts
	}
	if err = conf.Validate(); err != nil {
		return err
	}

	location, err := conf.Location()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"traccar": conf.Traccar.BaseURI,
		"device":  conf.Traccar.DeviceID,
		"hosts":   conf.Server.Hosts,
	}).Info("Starting fencewatch")

	client := traccar.NewCachedClient(
		traccar.NewClient(conf.Traccar),
		conf.Traccar.GeofenceCacheTTL.Value(),
	)
	handler := api.NewHandler(client, conf.Traccar.DeviceID, location)

	services := []service.Service{
		apiService{
			server: fencewatchHttp.NewServer(handler),
			hosts:  conf.Server.Hosts,
			gid:    conf.Server.SocketGid,
			tlsConfig: fencewatchHttp.TLSConfig{
				CertFile: conf.Server.CertFile,
				KeyFile:  conf.Server.KeyFile,
			},
		},
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	defer signal.Stop(sigs)
	defer close(sigs)

	return starter{
		logger:         utils.NewStandardLogger(),
		ss:             services,
		disposeTimeout: conf.Server.ShutdownTimeout.Value(),
	}.start(sigs)
}
