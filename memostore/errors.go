package memostore

import "github.com/cockroachdb/errors"

// ErrInvalidCapacity is returned by NewLRU when the requested capacity is
// zero or negative.
var ErrInvalidCapacity = errors.New("memostore: capacity must be a positive integer")
