package service

import (
	"context"
)

// Service runs until its context is canceled or it fails.
type Service interface {
	Serve(context.Context) (Disposable, error)
}

// Disposable .
type Disposable interface {
	Dispose(context.Context) error
}
