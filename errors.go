package memoize

import "github.com/cockroachdb/errors"

var (
	// ErrConflictingOptions is returned when Capacity and CustomHasher are
	// both configured. The bounded LRU owns its hashing, so the two cannot
	// be combined.
	ErrConflictingOptions = errors.New("memoize: Capacity and CustomHasher are mutually exclusive")

	// ErrUnsupportedSignature is returned for signatures the synthesizer
	// cannot wrap: receiver-style functions, parameters that do not bind by
	// a plain identifier, functions without a return value, or more
	// memoized parameters than a key tuple can carry.
	ErrUnsupportedSignature = errors.New("memoize: unsupported function signature")

	// ErrExtendedRequired is returned when Capacity or TimeToLive is used
	// on a generator without the extended backends enabled.
	ErrExtendedRequired = errors.New("memoize: option requires extended backends")

	// ErrInvalidCapacity is returned when Capacity is negative.
	ErrInvalidCapacity = errors.New("memoize: Capacity must be a positive integer")
)
