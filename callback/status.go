package callback

import "fmt"

/* ForwardStatus is the outcome of a forward attempt
 * Success means an HTTP response was received, whatever its status code
 * Error means the attempt could not complete (network failure, timeout, bad request)
 */
type ForwardStatus int

const (
	ForwardSuccess ForwardStatus = iota + 1
	ForwardError
)

// String returns the string representation of the status
func (s ForwardStatus) String() string {
	switch s {
	case ForwardSuccess:
		return "success"
	case ForwardError:
		return "error"
	default:
		return "unknown"
	}
}

// NewForwardStatus creates a ForwardStatus from a string
func NewForwardStatus(str string) ForwardStatus {
	switch str {
	case "success":
		return ForwardSuccess
	default:
		return ForwardError
	}
}

// Validate checks if the status is valid
func (s ForwardStatus) Validate() error {
	if s != ForwardSuccess && s != ForwardError {
		return fmt.Errorf("invalid forward status: %d", s)
	}
	return nil
}
