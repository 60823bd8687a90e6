// Package cmdparse decodes a single RESP multi-bulk request into a Command:
// its identity, arity, and the byte ranges of every key argument it carries.
// It never copies key bytes — a KeyPos borrows from the Command's Raw slice,
// so Raw must outlive every KeyPos derived from it.
package cmdparse

// Status is the outcome of parsing a request.
type Status int

const (
	// StatusOK means the request was well-formed and fully understood.
	StatusOK Status = iota
	// StatusProtocolError means the request was malformed, named an unknown
	// command, failed its arity check, or hit one of the documented parse
	// refusals (MIGRATE's empty-key form, an odd MSET term count, a missing
	// STREAMS keyword).
	StatusProtocolError
)

// KeyPos is a borrowed (start, end) byte range into a Command's Raw buffer.
// RemainLen and ValueStart, when RemainLen is nonzero, locate the value half
// immediately following the key (raw[ValueStart:ValueStart+RemainLen]) — used
// by MSET fragmentation and reassembly to recover key/value pairs.
type KeyPos struct {
	Start, End int
	RemainLen  int
	ValueStart int
}

// Bytes returns the key bytes this position denotes, borrowed from raw.
func (k KeyPos) Bytes(raw []byte) []byte {
	return raw[k.Start:k.End]
}

// Command is a parsed request: its identity, the raw bytes it was decoded
// from, and every key position found within those bytes.
type Command struct {
	ID     int64
	Status Status
	Err    string

	Name    string
	SubName string
	Raw     []byte
	Argc    int

	Keys []KeyPos

	// Slot is the routed slot number, -1 until a router assigns it (single
	// key or single-shard commands only; cross-slot commands are fragmented
	// instead, see package fragment).
	Slot int
}

// IsMultiKey reports whether this command carries more than one key and is
// therefore a fragmentation candidate.
func (c *Command) IsMultiKey() bool {
	return len(c.Keys) > 1
}
