// Package form holds the password screen's controller: length validation and
// the pure state transitions the rendering layer calls into.
package form

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Length bounds, inclusive.
const (
	MinLength = 4
	MaxLength = 16
)

// LengthField is the only validated field on the screen.
const LengthField = "passwordLength"

// Messages shown under the length field.
const (
	MsgRequired = "This is required field"
	MsgMin      = "Should be min of 4 character"
	MsgMax      = "Should be max of 16 character"
	MsgInteger  = "Should be a whole number"
)

var validate = validator.New()

// ValidationError is a field-level rejection of user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(msg string) *ValidationError {
	return &ValidationError{Field: LengthField, Message: msg}
}

// ValidateLength checks raw length text against "integer, 4..16, required"
// and returns the parsed value. Surrounding whitespace is ignored.
func ValidateLength(raw string) (int, error) {
	raw = strings.TrimSpace(raw)

	if err := validate.Var(raw, "required,numeric"); err != nil {
		if tagOf(err) == "required" {
			return 0, invalid(MsgRequired)
		}
		return 0, invalid(MsgInteger)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if strings.HasPrefix(raw, "-") {
				return 0, invalid(MsgMin)
			}
			return 0, invalid(MsgMax)
		}
		return 0, invalid(MsgInteger)
	}

	if err := validate.Var(n, "min=4,max=16"); err != nil {
		if tagOf(err) == "max" {
			return 0, invalid(MsgMax)
		}
		return 0, invalid(MsgMin)
	}
	return n, nil
}

// tagOf returns the tag of the first failed rule.
func tagOf(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}

// MessageOf extracts the user-facing message from a validation error, or "".
func MessageOf(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return ""
}
