// Package store is the durable key-value layer behind the storefront.
// Values are whole JSON documents addressed by a logical key; there are no
// partial updates, migrations or versions.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Logical keys.
const (
	KeyCurrentUser = "currentUser"
	KeyCart        = "cart"
	KeyPurchases   = "purchases"
	KeyUsers       = "users"
)

var ErrNotFound = errors.New("store: key not found")

// Store reads and writes raw documents.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Load decodes the document stored under key into dst.
// It reports false without error when the key is absent.
func Load(ctx context.Context, s Store, key string, dst any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save encodes v and replaces the document under key.
func Save(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
