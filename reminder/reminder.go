// Package reminder validates "ISO_TIME || message" scheduling requests for
// the schedule_preventive_reminder tool.
//
// Accepted timestamps are YYYY-MM-DDTHH:MM:SS, optionally with fractional
// seconds and optionally with a Z or ±HH:MM offset. Date-only strings and a
// space in place of the T separator are rejected. The timestamp is echoed
// back as given (after trimming), never re-serialized.
//
// Nothing is actually scheduled: no timer, no store. The tool validates the
// request and returns an acknowledgment string for the agent to relay.
package reminder

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const delimiter = "||"

const (
	badFormatReply = "Invalid format. Use 'ISO_TIME || message'."
	badTimeReply   = "Invalid ISO time format."
)

// Layouts tried in order. ".999999999" makes fractional seconds optional;
// the offset-free layout must come second or it would never be reached.
var layouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
}

var (
	errMalformed   = errors.New("missing delimiter")
	errInvalidTime = errors.New("invalid timestamp")
)

// Request is one parsed scheduling request. It lives only for the duration
// of a single Schedule call.
type Request struct {
	When    string // trimmed timestamp substring, validated ISO-8601
	Message string // trimmed message, may itself contain the delimiter
}

// parse splits the combined input on the first delimiter and validates the
// timestamp half. The message half is never split further.
func parse(input string) (Request, error) {
	before, after, found := strings.Cut(input, delimiter)
	if !found {
		return Request{}, errMalformed
	}
	req := Request{
		When:    strings.TrimSpace(before),
		Message: strings.TrimSpace(after),
	}
	if !validTimestamp(req.When) {
		return Request{}, errInvalidTime
	}
	return req, nil
}

func validTimestamp(s string) bool {
	for _, layout := range layouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// Schedule is the schedule_preventive_reminder operation. Every anticipated
// bad input maps to a fixed human-readable string; it never returns an error.
func Schedule(input string) string {
	req, err := parse(input)
	switch {
	case errors.Is(err, errMalformed):
		return badFormatReply
	case err != nil:
		return badTimeReply
	}
	return fmt.Sprintf("Reminder scheduled at %s with message: '%s'", req.When, req.Message)
}
