// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is a small persistent string map. The client keeps its
// session under a fixed set of keys in it, so the store must survive process
// restarts for every backend except the in-memory one.
type KeyValueStore interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent, in which case value is empty and err is nil.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
