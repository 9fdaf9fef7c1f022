package callback

import "errors"

var (
	// ErrReceiverNotFound is returned when no receiver matches (root path, callback path)
	ErrReceiverNotFound = errors.New("receiver not found")

	// ErrNotFound is returned by lookups of applications, receivers, targets and messages by id
	ErrNotFound = errors.New("not found")

	// ErrInvalidConfig is returned when a configuration write is rejected
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConfigurationCorrupt is returned when a stored response override cannot be decoded
	ErrConfigurationCorrupt = errors.New("stored response configuration is corrupt")
)
