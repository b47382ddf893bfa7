package apierr

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/taskpilot/internal/api"
)

// Classify folds err into an *Error. It returns nil for nil and passes an
// already classified *Error through unchanged, so calling it at every layer
// boundary is safe.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var already *Error
	if errors.As(err, &already) {
		return already
	}

	var verr *api.ValidationError
	if errors.As(err, &verr) {
		return &Error{
			Kind:    KindValidation,
			Message: strings.Join(verr.Result.Errors, "; "),
			cause:   err,
		}
	}

	if isNetworkFailure(err) {
		return &Error{
			Kind:    KindNetwork,
			Message: "cannot reach the service, check your connection",
			cause:   err,
		}
	}

	var serr *api.StatusError
	if errors.As(err, &serr) {
		return classifyStatus(serr)
	}

	return &Error{
		Kind:    KindUnknown,
		Message: orDefault(err.Error(), "an unknown error occurred"),
		cause:   err,
	}
}

func classifyStatus(serr *api.StatusError) *Error {
	e := &Error{
		Status:  serr.Status,
		Details: string(serr.Body),
		cause:   serr,
	}

	switch serr.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		e.Kind = KindAuthentication
		e.Message = "authentication required, please sign in again"
	case http.StatusUnprocessableEntity:
		e.Kind = KindValidation
		e.Message = orDefault(serr.Message, "the request was rejected as invalid")
	case http.StatusTooManyRequests:
		e.Kind = KindServer
		e.Message = "the service is rate limiting requests, try again shortly"
	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		e.Kind = KindServer
		e.Message = orDefault(serr.Message, "the service failed to handle the request")
	default:
		e.Kind = KindServer
		e.Message = orDefault(serr.Message, "unexpected response from the service")
	}

	return e
}

// isNetworkFailure reports whether err means the request never produced a
// response: DNS and dial failures, timeouts, cancelled contexts.
func isNetworkFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var uerr *url.Error
	if errors.As(err, &uerr) {
		return true
	}

	var nerr net.Error
	return errors.As(err, &nerr)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
