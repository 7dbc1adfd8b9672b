package config

import (
	"os"
	"time"

	"github.com/juju/errors"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/trackhq/fencewatch/types"
)

const envPrefix = "fencewatch"

// Duration parses from "30s" style strings in both yaml and env values.
type Duration time.Duration

// UnmarshalYAML .
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return errors.Annotatef(err, "parse duration %q", value)
	}
	*d = Duration(parsed)
	return nil
}

// Set implements envconfig.Setter.
func (d *Duration) Set(value string) error {
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Value .
func (d Duration) Value() time.Duration {
	return time.Duration(d)
}

// TraccarConfig .
type TraccarConfig struct {
	BaseURI          string   `yaml:"base_uri" split_words:"true"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DeviceID         int      `yaml:"device_id" split_words:"true"`
	Timeout          Duration `yaml:"timeout"`
	GeofenceCacheTTL Duration `yaml:"geofence_cache_ttl" split_words:"true"`
}

// ServerConfig .
type ServerConfig struct {
	Hosts           []string `yaml:"hosts"`
	CertFile        string   `yaml:"cert_file" split_words:"true"`
	KeyFile         string   `yaml:"key_file" split_words:"true"`
	SocketGid       int      `yaml:"socket_gid" split_words:"true"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout" split_words:"true"`
}

// Config .
type Config struct {
	Traccar  TraccarConfig `yaml:"traccar"`
	Server   ServerConfig  `yaml:"server"`
	Timezone string        `yaml:"timezone"`
}

// Default .
func Default() Config {
	return Config{
		Traccar: TraccarConfig{
			Timeout:          Duration(10 * time.Second),
			GeofenceCacheTTL: Duration(time.Minute),
		},
		Server: ServerConfig{
			Hosts:           []string{"http://:5000"},
			ShutdownTimeout: Duration(15 * time.Second),
		},
		Timezone: "UTC",
	}
}

// Load reads the yaml file at path, then applies FENCEWATCH_* env overrides.
func Load(path string) (Config, error) {
	conf := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return conf, errors.Annotatef(err, "read config %s", path)
	}
	if err = yaml.Unmarshal(data, &conf); err != nil {
		return conf, errors.Annotatef(err, "parse config %s", path)
	}
	if err = envconfig.Process(envPrefix, &conf); err != nil {
		return conf, errors.Trace(err)
	}
	return conf, nil
}

// Validate .
func (conf Config) Validate() error {
	if conf.Traccar.BaseURI == "" {
		return types.ErrNoTraccarURI
	}
	if conf.Traccar.Username == "" {
		return types.ErrNoTraccarUser
	}
	if conf.Traccar.DeviceID <= 0 {
		return types.ErrNoDeviceID
	}
	if len(conf.Server.Hosts) == 0 {
		return types.ErrNoHosts
	}
	return nil
}

// Location resolves the configured timezone.
func (conf Config) Location() (*time.Location, error) {
	if conf.Timezone == "" {
		return time.UTC, nil
	}
	location, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		return nil, errors.Annotatef(err, "load timezone %q", conf.Timezone)
	}
	return location, nil
}
