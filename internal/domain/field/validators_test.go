//go:build unit

package field_test

import (
	"strings"
	"testing"
	"time"

	"resort-checkout/internal/domain/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loc = time.FixedZone("ART", -3*60*60)

type testCase struct {
	name  string
	input string
	errIs error
}

func runCases(t *testing.T, check func(string) error, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := check(tc.input)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.errIs)
			assert.True(t, field.IsViolation(err))
		})
	}
}

func TestDates(t *testing.T) {
	now := time.Date(2025, 6, 30, 23, 30, 0, 0, loc)

	t.Run("parse", func(t *testing.T) {
		d, err := field.ParseDate("2025-07-01", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, loc), d)

		_, err = field.ParseDate("", loc)
		assert.ErrorIs(t, err, field.ErrDateRequired)

		_, err = field.ParseDate("01/07/2025", loc)
		assert.ErrorIs(t, err, field.ErrDateFormat)
	})

	t.Run("today late at night is not in the past", func(t *testing.T) {
		today := time.Date(2025, 6, 30, 0, 0, 0, 0, loc)
		assert.NoError(t, field.DateNotInPast(today, now))
	})

	t.Run("yesterday is in the past", func(t *testing.T) {
		yesterday := time.Date(2025, 6, 29, 0, 0, 0, 0, loc)
		assert.ErrorIs(t, field.DateNotInPast(yesterday, now), field.ErrDateInPast)
	})

	t.Run("date after compares calendar days", func(t *testing.T) {
		checkIn := time.Date(2025, 7, 1, 0, 0, 0, 0, loc)
		assert.NoError(t, field.DateAfter(checkIn.AddDate(0, 0, 1), checkIn))
		assert.ErrorIs(t, field.DateAfter(checkIn, checkIn), field.ErrDateNotAfter)
		assert.ErrorIs(t, field.DateAfter(checkIn.Add(20*time.Hour), checkIn), field.ErrDateNotAfter)
		assert.ErrorIs(t, field.DateAfter(checkIn.AddDate(0, 0, -1), checkIn), field.ErrDateNotAfter)
	})
}

func TestPartySize(t *testing.T) {
	assert.ErrorIs(t, field.PartySize(0, field.MaxPartySize), field.ErrPartySizeRange)
	assert.NoError(t, field.PartySize(1, field.MaxPartySize))
	assert.NoError(t, field.PartySize(10, field.MaxPartySize))
	assert.ErrorIs(t, field.PartySize(11, field.MaxPartySize), field.ErrPartySizeRange)
	assert.ErrorIs(t, field.PartySize(-3, 0), field.ErrPartySizeRange)
}

func TestCardNumber(t *testing.T) {
	runCases(t, field.CardNumber, []testCase{
		{name: "12 digits", input: strings.Repeat("4", 12), errIs: field.ErrCardNumberLength},
		{name: "13 digits boundary", input: strings.Repeat("4", 13)},
		{name: "16 digits with spaces", input: "4111 1111 1111 1111"},
		{name: "19 digits boundary", input: strings.Repeat("5", 19)},
		{name: "20 digits", input: strings.Repeat("5", 20), errIs: field.ErrCardNumberLength},
		{name: "letters", input: "4111 1111 1111 111a", errIs: field.ErrCardNumberDigits},
		{name: "dashes", input: "4111-1111-1111-1111", errIs: field.ErrCardNumberDigits},
		{name: "empty", input: "   ", errIs: field.ErrCardNumberDigits},
	})

	t.Run("format and mask", func(t *testing.T) {
		assert.Equal(t, "4111 1111 1111 1111", field.FormatCardNumber("4111111111111111"))
		assert.Equal(t, "4111 1111 1111 111", field.FormatCardNumber(" 4111 111111111 11"))
		assert.Equal(t, "••••••••••••1111", field.MaskCardNumber("4111 1111 1111 1111"))
		assert.Equal(t, "123", field.MaskCardNumber("123"))
	})
}

func TestExpiry(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, loc)
	check := func(s string) error { return field.Expiry(s, now) }

	runCases(t, check, []testCase{
		{name: "same month is expired", input: "07/25", errIs: field.ErrExpiryPast},
		{name: "next month is valid", input: "08/25"},
		{name: "previous month", input: "06/25", errIs: field.ErrExpiryPast},
		{name: "later year earlier month", input: "01/26"},
		{name: "previous year", input: "12/24", errIs: field.ErrExpiryPast},
		{name: "month zero", input: "00/26", errIs: field.ErrExpiryMonth},
		{name: "month thirteen", input: "13/26", errIs: field.ErrExpiryMonth},
		{name: "missing slash", input: "0826", errIs: field.ErrExpiryFormat},
		{name: "single digit month", input: "8/26", errIs: field.ErrExpiryFormat},
		{name: "four digit year", input: "08/2026", errIs: field.ErrExpiryFormat},
	})

	t.Run("december rolls into next year", func(t *testing.T) {
		dec := time.Date(2025, 12, 1, 0, 0, 0, 0, loc)
		assert.ErrorIs(t, field.Expiry("12/25", dec), field.ErrExpiryPast)
		assert.NoError(t, field.Expiry("01/26", dec))
	})
}

func TestCVV(t *testing.T) {
	runCases(t, field.CVV, []testCase{
		{name: "two digits", input: "12", errIs: field.ErrCVVFormat},
		{name: "three digits", input: "123"},
		{name: "four digits", input: "1234"},
		{name: "five digits", input: "12345", errIs: field.ErrCVVFormat},
		{name: "letters", input: "12a", errIs: field.ErrCVVFormat},
	})
}

func TestHolderName(t *testing.T) {
	runCases(t, field.HolderName, []testCase{
		{name: "plain name", input: "Juan Perez"},
		{name: "accented letters", input: "María Núñez Güemes"},
		{name: "two letters", input: "Al"},
		{name: "one letter", input: "A", errIs: field.ErrHolderNameLength},
		{name: "only spaces", input: "   ", errIs: field.ErrHolderNameLength},
		{name: "digits", input: "Juan 2", errIs: field.ErrHolderNameChars},
		{name: "punctuation", input: "O'Brien", errIs: field.ErrHolderNameChars},
		{name: "non latin script", input: "Иван", errIs: field.ErrHolderNameChars},
	})
}

func TestSearchTerm(t *testing.T) {
	assert.NoError(t, field.SearchTerm(strings.Repeat("a", 100), 0))
	assert.ErrorIs(t, field.SearchTerm(strings.Repeat("a", 101), 0), field.ErrSearchTermTooLong)
	assert.NoError(t, field.SearchTerm("  "+strings.Repeat("a", 10)+"  ", 10))
	assert.ErrorIs(t, field.SearchTerm(strings.Repeat("ñ", 11), 10), field.ErrSearchTermTooLong)
}

func TestErrors(t *testing.T) {
	errs := field.Errors{}
	errs.Add("cvv", nil)
	assert.True(t, errs.Empty())

	errs.Add("cvv", field.ErrCVVFormat)
	assert.False(t, errs.Empty())
	assert.Equal(t, field.ErrCVVFormat.Reason, errs["cvv"])
}
