package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns v as an error, or nil when empty.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Required records "<field> is required" when value is blank.
func (v *ValidationErrors) Required(field, value string) {
	if IsEmpty(value) {
		v.Add(field, field+" is required")
	}
}

// MaxLength records an error when value exceeds n characters.
func (v *ValidationErrors) MaxLength(field, value string, n int) {
	if len([]rune(value)) > n {
		v.Add(field, field+" must not exceed "+Itoa(n)+" characters")
	}
}

// Date records an error when value is set but is not YYYY-MM-DD.
func (v *ValidationErrors) Date(field, value string) {
	if value == "" {
		return
	}
	if _, ok := IsValidDate(value); !ok {
		v.Add(field, field+" must be a date in YYYY-MM-DD format")
	}
}

// DateRange records an error on endField when end is before start. Unparseable
// or empty dates are left to Date.
func (v *ValidationErrors) DateRange(startField, start, endField, end string) {
	s, okStart := IsValidDate(start)
	e, okEnd := IsValidDate(end)
	if okStart && okEnd && e.Before(s) {
		v.Add(endField, endField+" must not be before "+startField)
	}
}

// OneOf records an error when value is set and not in allowed.
func (v *ValidationErrors) OneOf(field, value string, allowed []string) {
	if value == "" || IsInSlice(value, allowed) {
		return
	}
	v.Add(field, field+" must be one of: "+strings.Join(allowed, ", "))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// NIN validation (Algerian national identification number)
func IsValidNIN(nin string) bool {
	return len(nin) == 18 && IsNumeric(nin)
}

var matriculeRegex = regexp.MustCompile(`^[A-Za-z0-9-]{3,20}$`)

// IsValidMatricule checks an employee registration number: 3-20 letters, digits or dashes.
func IsValidMatricule(m string) bool {
	return matriculeRegex.MatchString(m)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{3,50}$`)

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// Itoa converts an integer to a string.
func Itoa(i int) string {
	return strconv.Itoa(i)
}
