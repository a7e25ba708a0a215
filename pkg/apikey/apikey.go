// Package apikey resolves the search provider credential through an ordered
// chain of providers, first non-empty value wins.
package apikey

import (
	"context"

	"github.com/go-pkgz/lgr"
)

// Provider is a single credential source
type Provider interface {
	Name() string
	APIKey(ctx context.Context) (string, error)
}

// Resolver tries providers in order and returns the first non-empty key
type Resolver struct {
	providers []Provider
}

// NewResolver creates a resolver over the given providers, tried in order
func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// Resolve returns the first non-empty credential. An empty result with nil
// error means no provider has a key configured.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	for _, p := range r.providers {
		key, err := p.APIKey(ctx)
		if err != nil {
			lgr.Printf("[WARN] credential provider %s failed: %v", p.Name(), err)
			continue // a failing provider doesn't block the chain
		}
		if key != "" {
			return key, nil
		}
	}
	return "", nil
}

// Static is a fixed credential, typically from config or environment
type Static string

// Name identifies the provider in logs
func (s Static) Name() string { return "static" }

// APIKey returns the fixed value
func (s Static) APIKey(context.Context) (string, error) { return string(s), nil }

// StoreBacked reads the credential from the persisted store
type StoreBacked struct {
	store KeyStore
}

// KeyStore is the persistence interface for locally stored credentials
type KeyStore interface {
	APIKey(ctx context.Context) (string, error)
}

// NewStoreBacked creates a provider backed by the persisted store
func NewStoreBacked(store KeyStore) *StoreBacked {
	return &StoreBacked{store: store}
}

// Name identifies the provider in logs
func (s *StoreBacked) Name() string { return "store" }

// APIKey returns the locally persisted credential
func (s *StoreBacked) APIKey(ctx context.Context) (string, error) {
	return s.store.APIKey(ctx)
}
