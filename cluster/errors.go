package cluster

import "github.com/joomcode/errorx"

// Error kinds, namespaced under "rcluster". I/O, protocol, and
// configuration/semantic errors mirror the wire client's own taxonomy;
// TooManyRetries is the one cluster-specific addition.
var (
	namespace = errorx.NewNamespace("rcluster")

	// TypeIO covers socket errors and timeouts on a node connection.
	TypeIO = namespace.NewType("io")
	// TypeProtocol covers malformed framing or an unexpected reply shape.
	TypeProtocol = namespace.NewType("protocol")
	// TypeConfig covers configuration or semantic errors: a bad address,
	// duplicate slot ownership. A command that fails to parse, unknown
	// commands included, is reported as TypeProtocol.
	TypeConfig = namespace.NewType("config")
	// TypeOutOfMemory exists for taxonomy parity with a node-reported OOM
	// condition. Go's runtime panics on allocation failure rather than
	// returning a sentinel, and no code path in this module returns this
	// type — see DESIGN.md.
	TypeOutOfMemory = namespace.NewType("out_of_memory")
	// TypeTooManyRetries is raised when a command's retry budget
	// (max_retry_count) is exhausted without a non-redirect reply.
	TypeTooManyRetries = namespace.NewType("too_many_retries")
)

func errIO(cause error) error {
	return TypeIO.Wrap(cause, "connection error")
}

func errProtocolf(format string, args ...interface{}) error {
	return TypeProtocol.New(format, args...)
}

func errConfigf(format string, args ...interface{}) error {
	return TypeConfig.New(format, args...)
}

func errTooManyRetries(cmdName string) error {
	return TypeTooManyRetries.New("too many retries for %s", cmdName)
}

// IsTooManyRetries reports whether err is (or wraps) a TypeTooManyRetries
// error.
func IsTooManyRetries(err error) bool {
	return errorx.IsOfType(err, TypeTooManyRetries)
}

// IsIOError reports whether err is (or wraps) a TypeIO error.
func IsIOError(err error) bool {
	return errorx.IsOfType(err, TypeIO)
}

// errString renders err as a length-bounded string for the async callback
// path, bounded to a fixed 128-byte buffer (127 usable bytes + NUL). Used
// only there — everywhere else in this package returns a tagged error value
// directly.
func errString(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	const maxLen = 127
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}
