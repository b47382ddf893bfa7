package apierr

// FormatMessage renders err for terminal output, prefixing kinds whose bare
// message would not make the failure category obvious. Authentication and
// network messages already name their cause and are passed through.
func FormatMessage(err error) string {
	e := Classify(err)
	if e == nil {
		return ""
	}

	switch e.Kind {
	case KindValidation:
		return "Validation error: " + e.Message
	case KindServer:
		return "Service error: " + e.Message
	case KindUnknown:
		return "Error: " + e.Message
	default:
		return e.Message
	}
}
