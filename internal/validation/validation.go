// Package validation checks outbound chat payloads before they reach the
// network. Validators are pure functions returning a Result; they never
// return error values, callers branch on Result.Valid.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskpilot/internal/models"
)

const (
	// MaxMessageLength is the rune limit for a single chat message.
	MaxMessageLength = 4000

	// MaxConversationIDLength limits a conversation id when one is present.
	MaxConversationIDLength = 100

	// MaxUserIDLength limits the user id.
	MaxUserIDLength = 100

	// MaxMetadataBytes limits the JSON-serialized metadata size.
	MaxMetadataBytes = 10 * 1024
)

// warningChars trip a warning, not an error. SanitizeMessage neutralizes
// every one of them.
const warningChars = `<>'"&`

// reservedMetadataKeys are rejected outright; the backend treats them as
// unsafe property names.
var reservedMetadataKeys = []string{"__proto__", "constructor", "prototype"}

// Result is the outcome of a validation pass. Valid is true exactly when
// Errors is empty; Warnings never affect validity.
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(msgs ...string) Result {
	return Result{Errors: msgs}
}

// merge concatenates the error and warning lists of all sub-results.
// It never short-circuits, so a caller sees every problem at once.
func merge(results ...Result) Result {
	var out Result
	for _, r := range results {
		out.Errors = append(out.Errors, r.Errors...)
		out.Warnings = append(out.Warnings, r.Warnings...)
	}
	out.Valid = len(out.Errors) == 0
	return out
}

// ValidateMessage checks a chat message body: non-blank and at most
// MaxMessageLength runes. Characters that the sanitizer will rewrite yield a
// warning, not an error.
func ValidateMessage(message string) Result {
	if strings.TrimSpace(message) == "" {
		return invalid("message cannot be empty")
	}

	out := valid()
	if n := utf8.RuneCountInString(message); n > MaxMessageLength {
		out = invalid(fmt.Sprintf("message is too long: %d characters (maximum is %d)", n, MaxMessageLength))
	}
	if strings.ContainsAny(message, warningChars) {
		out.Warnings = append(out.Warnings, "message contains special characters that will be sanitized")
	}
	return out
}

// ValidateConversationID accepts an empty id (no conversation yet) and
// otherwise bounds its length.
func ValidateConversationID(id string) Result {
	if id == "" {
		return valid()
	}
	if utf8.RuneCountInString(id) > MaxConversationIDLength {
		return invalid(fmt.Sprintf("conversation id is too long (maximum is %d characters)", MaxConversationIDLength))
	}
	return valid()
}

// ValidateUserID requires a canonical UUID version 4.
func ValidateUserID(id string) Result {
	if id == "" {
		return invalid("user id is required")
	}
	if utf8.RuneCountInString(id) > MaxUserIDLength {
		return invalid(fmt.Sprintf("user id is too long (maximum is %d characters)", MaxUserIDLength))
	}

	// uuid.Parse also accepts urn: and braced forms; only the plain
	// 36-character spelling is valid here.
	u, err := uuid.Parse(id)
	if err != nil || len(id) != 36 || u.Version() != 4 || u.Variant() != uuid.RFC4122 {
		return invalid("user id must be a UUID v4")
	}
	return valid()
}

// ValidateMetadata bounds the serialized size and rejects reserved keys.
// A nil map is valid.
func ValidateMetadata(metadata map[string]any) Result {
	if metadata == nil {
		return valid()
	}

	var errs []string
	for _, reserved := range reservedMetadataKeys {
		if _, ok := metadata[reserved]; ok {
			errs = append(errs, fmt.Sprintf("metadata key %q is not allowed", reserved))
		}
	}

	b, err := json.Marshal(metadata)
	if err != nil {
		errs = append(errs, "metadata cannot be serialized to JSON")
	} else if len(b) > MaxMetadataBytes {
		errs = append(errs, fmt.Sprintf("metadata is too large: %d bytes (maximum is %d)", len(b), MaxMetadataBytes))
	}

	if len(errs) > 0 {
		return invalid(errs...)
	}
	return valid()
}

// ValidateChatRequest runs every field validator and combines their results.
func ValidateChatRequest(req models.ChatRequest) Result {
	return merge(
		ValidateMessage(req.Message),
		ValidateConversationID(req.ConversationID),
		ValidateUserID(req.UserID),
		ValidateMetadata(req.Metadata),
	)
}

// sanitizer rewrites all warning characters in a single pass, so already
// escaped sequences are never escaped twice.
var sanitizer = strings.NewReplacer(
	"<", "",
	">", "",
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// SanitizeMessage strips angle brackets and escapes the remaining special
// characters to their entity forms. It is an unconditional transform, not
// gated by validation.
func SanitizeMessage(message string) string {
	return sanitizer.Replace(message)
}

// PrepareChatRequest validates req and, only when valid, returns it with the
// message sanitized. Callers must check Result.Valid before trusting the
// returned request.
func PrepareChatRequest(req models.ChatRequest) (models.ChatRequest, Result) {
	res := ValidateChatRequest(req)
	if !res.Valid {
		return req, res
	}

	req.Message = SanitizeMessage(req.Message)
	return req, res
}
