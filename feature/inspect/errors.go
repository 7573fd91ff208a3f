package inspect

import "errors"

var (
	// ErrUnknownKind is returned for data kinds the session does not register.
	ErrUnknownKind = errors.New("unknown data kind")
	// ErrReadOnly is returned by Save when the server is read-only.
	ErrReadOnly = errors.New("session is read-only")
)
