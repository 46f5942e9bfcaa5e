package umap

import "errors"

// Errors reported by Map operations. All of them are surfaced
// synchronously at the call site and leave the map in its pre-call state;
// match them with errors.Is.
var (
	// ErrDuplicateKey is reported by Insert when the key is already
	// present.
	ErrDuplicateKey = errors.New("umap: duplicate key")

	// ErrKeyNotFound is reported by Erase and At when the key is absent.
	ErrKeyNotFound = errors.New("umap: key not found")

	// ErrInvalidArgument is reported for a non-positive max load factor
	// and for Reserve requesting fewer buckets than currently allocated.
	ErrInvalidArgument = errors.New("umap: invalid argument")
)
