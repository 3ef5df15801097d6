package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// FieldErrors maps wire field names to human-readable violation messages.
// A nil map means the input passed validation.
type FieldErrors map[string]string

// add records a violation unless the field already carries one, so a type
// mismatch reported during decoding is not overwritten by the
// required-field check that follows.
func (e FieldErrors) add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// rawBody is a decoded request object whose keys have been normalized:
// internal snake_case spellings are folded onto their wire names, so every
// field has exactly one canonical key. Unknown keys are kept but never
// read, which makes them ignored rather than rejected.
type rawBody map[string]json.RawMessage

// parseBody decodes data into a rawBody using the given internal→wire
// alias table. Anything that is not a JSON object is rejected wholesale.
func parseBody(data []byte, aliases map[string]string) (rawBody, FieldErrors) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil, FieldErrors{"body": "must be a valid JSON object"}
	}

	for internal, wire := range aliases {
		v, ok := raw[internal]
		if !ok {
			continue
		}

		// The wire spelling wins when both are supplied.
		if _, exists := raw[wire]; !exists {
			raw[wire] = v
		}

		delete(raw, internal)
	}

	return raw, nil
}

// has reports whether the key appeared in the request object.
func (b rawBody) has(key string) bool {
	_, ok := b[key]
	return ok
}

// isNull reports whether the key appeared with an explicit null value.
func (b rawBody) isNull(key string) bool {
	v, ok := b[key]
	return ok && bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// stringField extracts an optional string, recording a type violation on
// mismatch. Absent and null both yield nil.
func (b rawBody) stringField(key string, fe FieldErrors) *string {
	v, ok := b[key]
	if !ok || b.isNull(key) {
		return nil
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		fe[key] = "must be a string"

		return nil
	}

	return &s
}

// intField extracts an optional integer. Fractional numbers are type
// violations, matching the integer fields of the models.
func (b rawBody) intField(key string, fe FieldErrors) *int {
	v, ok := b[key]
	if !ok || b.isNull(key) {
		return nil
	}

	var n int
	if err := json.Unmarshal(v, &n); err != nil {
		fe[key] = "must be an integer"

		return nil
	}

	return &n
}

// timeField extracts an optional RFC 3339 timestamp.
func (b rawBody) timeField(key string, fe FieldErrors) *time.Time {
	v, ok := b[key]
	if !ok || b.isNull(key) {
		return nil
	}

	var t time.Time
	if err := json.Unmarshal(v, &t); err != nil {
		fe[key] = "must be an RFC 3339 timestamp"

		return nil
	}

	return &t
}

// fields remembers which keys were present in a request body and which of
// those were explicit nulls. Patch requests rely on it to distinguish
// "leave untouched" from "clear".
type fields struct {
	present map[string]bool
	nulls   map[string]bool
}

func newFields(b rawBody) fields {
	f := fields{
		present: make(map[string]bool, len(b)),
		nulls:   make(map[string]bool, len(b)),
	}

	for k := range b {
		f.present[k] = true

		if b.isNull(k) {
			f.nulls[k] = true
		}
	}

	return f
}

// has reports whether the key appeared in the request body.
func (f fields) has(key string) bool {
	return f.present[key]
}

// requiredMsg picks the violation message for a missing required field:
// an explicit null and outright absence read differently.
func (f fields) requiredMsg(key string) string {
	if f.nulls[key] {
		return "may not be null"
	}

	return "is required"
}

// Violation message helpers shared across the models.

func lengthMsg(min, max int) string {
	return fmt.Sprintf("must be between %d and %d characters", min, max)
}

func maxLengthMsg(max int) string {
	return fmt.Sprintf("must be at most %d characters", max)
}

func rangeMsg(min, max int) string {
	return fmt.Sprintf("must be between %d and %d", min, max)
}

func minMsg(min int) string {
	return fmt.Sprintf("must be at least %d", min)
}

func oneOfMsg[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}

	return "must be one of: " + strings.Join(parts, ", ")
}

func validLength(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)

	return n >= min && n <= max
}

// parsePagination fills page and limit from query parameters, leaving the
// defaults (page 1, limit 20) in place when a parameter is absent.
func parsePagination(values url.Values, page, limit *int, fe FieldErrors) {
	if s := values.Get("page"); s != "" {
		switch n, err := strconv.Atoi(s); {
		case err != nil:
			fe["page"] = "must be a valid integer"
		case n < 1:
			fe["page"] = minMsg(1)
		default:
			*page = n
		}
	}

	if s := values.Get("limit"); s != "" {
		switch n, err := strconv.Atoi(s); {
		case err != nil:
			fe["limit"] = "must be a valid integer"
		case n < 1 || n > 100:
			fe["limit"] = rangeMsg(1, 100)
		default:
			*limit = n
		}
	}
}

// queryValue returns the first non-empty value among the given parameter
// spellings, so filters accept both wire and internal names.
func queryValue(values url.Values, names ...string) string {
	for _, name := range names {
		if v := values.Get(name); v != "" {
			return v
		}
	}

	return ""
}

// PageQuery paginates nested list endpoints that take no filters.
type PageQuery struct {
	Page  int
	Limit int
}

// DecodePageQuery parses bare pagination parameters.
func DecodePageQuery(values url.Values) (*PageQuery, FieldErrors) {
	fe := FieldErrors{}
	q := &PageQuery{Page: 1, Limit: 20}

	parsePagination(values, &q.Page, &q.Limit, fe)

	if len(fe) > 0 {
		return nil, fe
	}

	return q, nil
}
