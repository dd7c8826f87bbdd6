package core

import "encoding/json"

// Frame is a serialized payload ready for the wire.
type Frame []byte

// SessionID identifies one live connection. It is a transport identity,
// minted per connection; it carries no application-level user identity.
type SessionID string

// Document is an opaque room state blob. The core stores and replays it
// verbatim and never looks inside.
type Document = json.RawMessage

// SignalConnection abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
