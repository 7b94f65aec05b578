package ring

// Policy selects the push behavior on a full buffer.
type Policy int

const (
	// Reject fails a push on a full buffer with ErrFull; nothing is
	// written and nothing is dropped.
	Reject Policy = iota
	// OverwriteOldest drops the oldest element on a push to a full buffer
	// to make room for the new one.
	OverwriteOldest
)

// DefaultPolicy is used when no WithPolicy option is given.
const DefaultPolicy = Reject

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Reject:
		return "reject"
	case OverwriteOldest:
		return "overwrite-oldest"
	default:
		return "unknown"
	}
}

// Option configures a buffer at construction.
type Option func(*config)

type config struct {
	policy Policy
}

// WithPolicy sets the push behavior on a full buffer.
// The policy is fixed for the buffer's lifetime.
func WithPolicy(p Policy) Option {
	return func(c *config) { c.policy = p }
}
