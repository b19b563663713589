// Package api implements the HTTP-shaped surface of the config service:
// the response envelope, the four request handlers, and the router that
// dispatches API Gateway proxy events to them.
package api

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mealhub/remote-config/internal/content"
)

// ConfigStore is the persistence surface the handlers depend on.
// *store.Store satisfies it; tests use an in-memory fake.
type ConfigStore interface {
	FetchPublished(ctx context.Context, app string) ([]content.Entry, error)
	Put(ctx context.Context, app string, payload content.Payload, updatedBy string) error
	Delete(ctx context.Context, app, screen, key string) error
}

// API holds the handler dependencies.
type API struct {
	store  ConfigStore
	logger zerolog.Logger
}

// New creates an API over the given store.
func New(store ConfigStore, logger zerolog.Logger) *API {
	return &API{
		store:  store,
		logger: logger,
	}
}

// identity is the confirmation payload returned by the write handlers.
// The stored value is intentionally not echoed back.
type identity struct {
	App    string `json:"app"`
	Screen string `json:"screen"`
	Key    string `json:"key"`
}
