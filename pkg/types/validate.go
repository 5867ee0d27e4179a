package types

import (
	"regexp"
	"strings"
	"time"
)

// Sentinels stored in place of input that fails validation.
const (
	SentinelNoData   = "[no data]"
	SentinelNoNumber = "[no number]"
)

// DateLayout is the canonical birth date format.
const DateLayout = "2006-01-02"

// Gender values accepted by ValidateGender.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// validGenders is the set of recognized gender values.
var validGenders = map[string]bool{
	GenderMale:   true,
	GenderFemale: true,
}

// phonePattern accepts an optional leading "+" and two to four groups
// separated by a space or a dash. The first group may be of any length,
// later groups need at least two characters, and any group may be wrapped
// in parentheses.
var phonePattern = regexp.MustCompile(
	`^\+?(\([0-9A-Za-z]+\)|[0-9A-Za-z]+)([ -](\([0-9A-Za-z]{2,}\)|[0-9A-Za-z]{2,})){1,3}$`,
)

// Validator maps raw input to the value that gets stored. The returned string
// is always usable; a non-nil error describes why the input was replaced by a
// sentinel.
type Validator func(raw string) (string, error)

// ValidateText returns SentinelNoData when raw is empty after trimming and raw
// unchanged otherwise. It never returns an error.
func ValidateText(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return SentinelNoData, nil
	}
	return raw, nil
}

// ValidatePhone keeps raw when it has the shape of a phone number and returns
// SentinelNoNumber with ErrInvalidPhone otherwise.
func ValidatePhone(raw string) (string, error) {
	value, _ := ValidateText(raw)
	if !phonePattern.MatchString(value) {
		return SentinelNoNumber, ErrInvalidPhone
	}
	return value, nil
}

// ValidateDate parses raw as a YYYY-MM-DD calendar date and returns it in
// canonical form. Unparsable input yields SentinelNoData with ErrInvalidDate.
func ValidateDate(raw string) (string, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return SentinelNoData, ErrInvalidDate
	}
	return t.Format(DateLayout), nil
}

// ValidateGender keeps raw when it is one of the recognized gender values.
// The comparison is case-sensitive.
func ValidateGender(raw string) (string, error) {
	value, _ := ValidateText(raw)
	if !IsValidGender(value) {
		return SentinelNoData, ErrInvalidGender
	}
	return value, nil
}

// IsValidGender reports whether g is a recognized gender value.
func IsValidGender(g string) bool {
	return validGenders[g]
}

// Genders returns the recognized gender values in display order.
func Genders() []string {
	return []string{GenderMale, GenderFemale}
}
