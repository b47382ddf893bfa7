package apierr

// Kind labels the failure category of a classified error. The set is closed:
// callers may switch over it exhaustively.
type Kind string

const (
	// KindAuthentication marks rejected or missing credentials.
	KindAuthentication Kind = "authentication"
	// KindNetwork marks transport failures where no response arrived.
	KindNetwork Kind = "network"
	// KindValidation marks input rejected before or by the backend.
	KindValidation Kind = "validation"
	// KindServer marks responses the backend answered with a failure status.
	KindServer Kind = "server"
	// KindUnknown marks everything the classifier could not place.
	KindUnknown Kind = "unknown"
)

// Error is the normalized form every failure is folded into.
type Error struct {
	// Kind is the failure category.
	Kind Kind
	// Message is safe to show to the user as-is.
	Message string
	// Status is the HTTP status code when the backend answered, zero otherwise.
	Status int
	// Details carries the raw response body for logs. Never shown to users.
	Details string

	cause error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the original error for errors.Is and errors.As chains.
func (e *Error) Unwrap() error { return e.cause }
