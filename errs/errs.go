// Package errs holds the stable error taxonomy every vpack I/O path
// returns against: one sentinel per failure kind, each matchable with
// errors.Is regardless of how much context got wrapped around it.
package errs

import "github.com/pkg/errors"

// Sentinel errors, one per binary-codec / stream-codec failure kind. Wrap
// these with errors.WithMessage (or errors.Wrapf) at the call site to add
// context - errors.Is still matches the sentinel afterwards.
var (
	ErrOpenFailed          = errors.New("open_failed")
	ErrWriteFailed         = errors.New("write_failed")
	ErrReadFailed          = errors.New("read_failed")
	ErrInvalidHeader       = errors.New("invalid_header")
	ErrSchemaMismatch      = errors.New("schema_mismatch")
	ErrPayloadSizeMismatch = errors.New("payload_size_mismatch")
	ErrTruncatedPayload    = errors.New("truncated_payload")
)

// tags maps each sentinel to its stable logging tag. The tag text doubles
// as the sentinel's own message, so Message degrades gracefully (returns
// the underlying error's text) for any error this package didn't mint.
var tags = map[error]string{
	ErrOpenFailed:          "open_failed",
	ErrWriteFailed:         "write_failed",
	ErrReadFailed:          "read_failed",
	ErrInvalidHeader:       "invalid_header",
	ErrSchemaMismatch:      "schema_mismatch",
	ErrPayloadSizeMismatch: "payload_size_mismatch",
	ErrTruncatedPayload:    "truncated_payload",
}

// Message returns the stable tag for err's sentinel kind, for logging and
// for CLI output. If err doesn't wrap one of this package's sentinels, it
// returns err's own message instead of an empty string.
func Message(err error) string {
	for sentinel, tag := range tags {
		if errors.Is(err, sentinel) {
			return tag
		}
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Wrap attaches msg as context to sentinel while keeping it matchable by
// errors.Is(result, sentinel).
func Wrap(sentinel error, msg string) error {
	return errors.WithMessage(sentinel, msg)
}

// Wrapf is Wrap with fmt.Sprintf-style formatting.
func Wrapf(sentinel error, format string, args ...any) error {
	return errors.WithMessage(sentinel, errors.Errorf(format, args...).Error())
}
