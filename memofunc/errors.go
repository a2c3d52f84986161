package memofunc

import "github.com/cockroachdb/errors"

var (
	// ErrHasherMismatch is returned when WithHasher's argument does not
	// implement memostore.Hasher for the wrapper's key type.
	ErrHasherMismatch = errors.New("memofunc: hasher does not match the key type")

	// ErrInvalidIgnore is returned when WithIgnore names an argument
	// position outside the function's arity.
	ErrInvalidIgnore = errors.New("memofunc: ignored position out of range")
)
