package types

import "github.com/juju/errors"

var (
	// ErrNoHosts .
	ErrNoHosts = errors.New("can't serve api without hosts")
	// ErrServiceShutdown .
	ErrServiceShutdown = errors.New("Service shutdown")
	// ErrCannotDisposeService .
	ErrCannotDisposeService = errors.New("Can't dispose service")
	// ErrNoTraccarURI .
	ErrNoTraccarURI = errors.New("traccar base_uri must not be empty")
	// ErrNoTraccarUser .
	ErrNoTraccarUser = errors.New("traccar username must not be empty")
	// ErrNoDeviceID .
	ErrNoDeviceID = errors.New("traccar device_id must be positive")
	// ErrUnsupportedArea .
	ErrUnsupportedArea = errors.New("unsupported geofence area")
	// ErrBadDay .
	ErrBadDay = errors.New("unrecognized day format")
	// ErrBadDeviceParam .
	ErrBadDeviceParam = errors.New("device must be an integer")
)
