package validation

import (
	"math"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/helpers"
)

// Branches a student can belong to and a drive can require.
var Branches = []string{"Computer Science", "Electronics", "Electrical", "Mechanical"}

// Duration units accepted for mock sessions.
var DurationUnits = []string{"minutes", "hours"}

// CGPA scale bounds. Values are stored with two decimal places.
const (
	MinCGPA      = 0.0
	MaxCGPA      = 10.0
	CGPADecimals = 2
)

// DateLayout is the wire format for drive deadlines and mock dates.
const DateLayout = "2006-01-02"

// Validation rule patterns
var (
	// Roll numbers are alphanumeric, e.g. 22341A0594
	RollNumberPattern = `^[0-9A-Za-z]{4,20}$`

	PasswordMinLength = 6
	// bcrypt rejects longer inputs
	PasswordMaxLength = 72
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	RollNumber *regexp.Regexp
}{
	RollNumber: regexp.MustCompile(RollNumberPattern),
}

// IsValidBranch reports whether branch is one of Branches. Matching is exact.
func IsValidBranch(branch string) bool {
	return oneOf(branch, Branches)
}

// IsValidDurationUnit reports whether unit is one of DurationUnits.
func IsValidDurationUnit(unit string) bool {
	return oneOf(unit, DurationUnits)
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Required returns a validation error when value is blank.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(field, field+" is required")
	}
	return nil
}

// ParseCGPA parses a finite decimal on the CGPA scale.
func ParseCGPA(field, raw string) (float64, error) {
	if err := Required(field, raw); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.NewValidationError(field, field+" must be a decimal number")
	}
	if err := CheckCGPA(field, v); err != nil {
		return 0, err
	}
	scale := math.Pow10(CGPADecimals)
	if math.Round(v*scale)/scale != v {
		return 0, apperrors.NewValidationError(field, field+" must have at most 2 decimal places")
	}
	return v, nil
}

// CheckCGPA validates an already-numeric CGPA.
func CheckCGPA(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < MinCGPA || v > MaxCGPA {
		return apperrors.NewValidationError(field, field+" must be between 0 and 10")
	}
	return nil
}

// CheckPassword enforces the length bounds of a plaintext password in bytes.
func CheckPassword(field, password string) error {
	if err := Required(field, password); err != nil {
		return err
	}
	if len(password) < PasswordMinLength {
		return apperrors.NewValidationError(field, field+" must be at least 6 characters")
	}
	if len(password) > PasswordMaxLength {
		return apperrors.NewValidationError(field, field+" must be at most 72 bytes")
	}
	return nil
}

// ParseInt parses a base-10 integer no smaller than min.
func ParseInt(field, raw string, min int) (int, error) {
	if err := Required(field, raw); err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperrors.NewValidationError(field, field+" must be an integer")
	}
	if v < min {
		return 0, apperrors.NewValidationError(field, field+" must be at least "+strconv.Itoa(min))
	}
	return v, nil
}

// ParseDate parses a calendar date (YYYY-MM-DD). RFC 3339 timestamps are
// accepted and truncated to their date.
func ParseDate(field, raw string) (time.Time, error) {
	if err := Required(field, raw); err != nil {
		return time.Time{}, err
	}
	raw = strings.TrimSpace(raw)
	if d, err := time.Parse(DateLayout, raw); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return helpers.DateOnly(ts), nil
	}
	return time.Time{}, apperrors.NewValidationError(field, field+" must be a date in YYYY-MM-DD format")
}

// IsValidEmail checks the address parses as a bare RFC 5322 address.
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// IsValidRollNumber checks the roll number pattern.
func IsValidRollNumber(roll string) bool {
	return CompiledPatterns.RollNumber.MatchString(roll)
}
