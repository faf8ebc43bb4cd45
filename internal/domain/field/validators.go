// Package field holds the checkout form validators. Every validator is pure:
// callers pass "now" explicitly and get nil or a *Violation back.
package field

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	DateLayout       = "2006-01-02"
	MaxPartySize     = 10
	DefaultTermMax   = 100
	minCardDigits    = 13
	maxCardDigits    = 19
	minHolderLetters = 2
)

// Violation is a human-readable reason a single field value was rejected.
type Violation struct {
	Reason string
}

func (v *Violation) Error() string {
	return v.Reason
}

var (
	ErrDateRequired      = &Violation{Reason: "date is required"}
	ErrDateFormat        = &Violation{Reason: "date must use the YYYY-MM-DD format"}
	ErrDateInPast        = &Violation{Reason: "date cannot be in the past"}
	ErrDateNotAfter      = &Violation{Reason: "check-out must be after check-in"}
	ErrPartySizeRange    = &Violation{Reason: "party size must be between 1 and 10"}
	ErrCardNumberDigits  = &Violation{Reason: "card number must contain only digits"}
	ErrCardNumberLength  = &Violation{Reason: "card number must have between 13 and 19 digits"}
	ErrExpiryFormat      = &Violation{Reason: "expiry must use the MM/YY format"}
	ErrExpiryMonth       = &Violation{Reason: "expiry month must be between 01 and 12"}
	ErrExpiryPast        = &Violation{Reason: "card is expired"}
	ErrCVVFormat         = &Violation{Reason: "CVV must have 3 or 4 digits"}
	ErrHolderNameChars   = &Violation{Reason: "holder name may only contain letters and spaces"}
	ErrHolderNameLength  = &Violation{Reason: "holder name must have at least 2 letters"}
	ErrSearchTermTooLong = &Violation{Reason: "search term is too long"}
)

func IsViolation(err error) bool {
	var v *Violation
	return errors.As(err, &v)
}

// Errors maps form field names to the reason they were rejected.
type Errors map[string]string

func (e Errors) Add(name string, err error) {
	if err == nil {
		return
	}
	e[name] = err.Error()
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// Midnight normalizes t to the start of its calendar day in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrDateRequired
	}
	d, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, ErrDateFormat
	}
	return d, nil
}

func DateNotInPast(d, now time.Time) error {
	loc := now.Location()
	if Midnight(d, loc).Before(Midnight(now, loc)) {
		return ErrDateInPast
	}
	return nil
}

func DateAfter(d, ref time.Time) error {
	loc := ref.Location()
	if !Midnight(d, loc).After(Midnight(ref, loc)) {
		return ErrDateNotAfter
	}
	return nil
}

func PartySize(n, max int) error {
	if max <= 0 {
		max = MaxPartySize
	}
	if n < 1 || n > max {
		return ErrPartySizeRange
	}
	return nil
}

// NormalizeCardNumber strips every whitespace rune.
func NormalizeCardNumber(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

func CardNumber(raw string) error {
	digits := NormalizeCardNumber(raw)
	if !allDigits(digits) {
		return ErrCardNumberDigits
	}
	if len(digits) < minCardDigits || len(digits) > maxCardDigits {
		return ErrCardNumberLength
	}
	return nil
}

// FormatCardNumber groups the digits by four for display.
func FormatCardNumber(raw string) string {
	digits := NormalizeCardNumber(raw)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func MaskCardNumber(raw string) string {
	digits := NormalizeCardNumber(raw)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("•", len(digits)-4) + digits[len(digits)-4:]
}

// Expiry treats the current month as already expired.
func Expiry(raw string, now time.Time) error {
	raw = strings.TrimSpace(raw)
	mm, yy, ok := strings.Cut(raw, "/")
	if !ok || len(mm) != 2 || len(yy) != 2 || !allDigits(mm) || !allDigits(yy) {
		return ErrExpiryFormat
	}
	month, _ := strconv.Atoi(mm)
	year, _ := strconv.Atoi(yy)
	if month < 1 || month > 12 {
		return ErrExpiryMonth
	}
	curYear := now.Year() % 100
	curMonth := int(now.Month())
	if year < curYear || (year == curYear && month <= curMonth) {
		return ErrExpiryPast
	}
	return nil
}

func CVV(raw string) error {
	if len(raw) < 3 || len(raw) > 4 || !allDigits(raw) {
		return ErrCVVFormat
	}
	return nil
}

func HolderName(raw string) error {
	letters := 0
	for _, r := range raw {
		switch {
		case r == ' ':
		case unicode.IsLetter(r) && unicode.Is(unicode.Latin, r):
			letters++
		default:
			return ErrHolderNameChars
		}
	}
	if letters < minHolderLetters {
		return ErrHolderNameLength
	}
	return nil
}

func SearchTerm(raw string, max int) error {
	if max <= 0 {
		max = DefaultTermMax
	}
	if len([]rune(strings.TrimSpace(raw))) > max {
		return ErrSearchTermTooLong
	}
	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
