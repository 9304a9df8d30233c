package mssmt

import "errors"

// ErrNotFound is returned by Get and Delete when the given key is absent
// from the tree. It is a normal, recoverable outcome.
var ErrNotFound = errors.New("mssmt: key not found")

// ErrKeyCollision is returned by Insert when two distinct keys fail to
// diverge anywhere within the 256-bit key space. This is astronomically
// unlikely for independent keys but is guarded against because the
// insertion algorithm would otherwise loop forever.
var ErrKeyCollision = errors.New("mssmt: key collision, keys do not diverge within 256 bits")

// ErrInvalidKeyLength is a precondition failure: the caller supplied a key
// that is not exactly KEY_SIZE bytes wide. Callers should treat this as a
// programming error, not a normal result.
var ErrInvalidKeyLength = errors.New("mssmt: key must be exactly 32 bytes")
