//go:build unit

package pricing_test

import (
	"encoding/json"
	"testing"
	"time"

	"resort-checkout/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cabin struct {
	capacity int
	total    pricing.Money
}

func (c cabin) CabinCapacity() int        { return c.capacity }
func (c cabin) CabinTotal() pricing.Money { return c.total }

type service struct {
	price pricing.Money
}

func (s service) PricePerPersonPerNight() pricing.Money { return s.price }

func TestNights(t *testing.T) {
	buenosAires := time.FixedZone("ART", -3*60*60)

	t.Run("plain day difference", func(t *testing.T) {
		in := time.Date(2025, 7, 1, 0, 0, 0, 0, buenosAires)
		out := time.Date(2025, 7, 4, 0, 0, 0, 0, buenosAires)
		assert.Equal(t, 3, pricing.Nights(in, out))
	})

	t.Run("across a daylight saving change", func(t *testing.T) {
		madrid, err := time.LoadLocation("Europe/Madrid")
		require.NoError(t, err)
		in := time.Date(2025, 3, 29, 0, 0, 0, 0, madrid)
		out := time.Date(2025, 4, 1, 0, 0, 0, 0, madrid)
		assert.Equal(t, 3, pricing.Nights(in, out))
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		in := time.Date(2025, 7, 1, 22, 0, 0, 0, buenosAires)
		out := time.Date(2025, 7, 2, 1, 0, 0, 0, buenosAires)
		assert.Equal(t, 1, pricing.Nights(in, out))
	})

	t.Run("reversed range is zero", func(t *testing.T) {
		in := time.Date(2025, 7, 4, 0, 0, 0, 0, buenosAires)
		out := time.Date(2025, 7, 1, 0, 0, 0, 0, buenosAires)
		assert.Equal(t, 0, pricing.Nights(in, out))
	})
}

func TestCapacitySumIsMonotonic(t *testing.T) {
	cabins := []cabin{{capacity: 2}, {capacity: 4}, {capacity: 6}, {capacity: 1}}

	prev := 0
	for i := 1; i <= len(cabins); i++ {
		sum := pricing.CapacitySum(cabins[:i])
		assert.GreaterOrEqual(t, sum, prev)
		prev = sum
	}
	for i := len(cabins) - 1; i >= 0; i-- {
		sum := pricing.CapacitySum(cabins[:i])
		assert.LessOrEqual(t, sum, prev)
		prev = sum
	}
	assert.Equal(t, 0, pricing.CapacitySum([]cabin{}))
}

func TestDepositAndBalance(t *testing.T) {
	for cents := int64(0); cents <= 10_000; cents++ {
		total := pricing.NewMoney(cents)
		deposit := pricing.Deposit(total)
		balance := pricing.Balance(total)
		require.Equal(t, total, deposit.Add(balance), "total %s", total)
		require.False(t, balance.IsNegative())
	}

	assert.Equal(t, pricing.NewMoney(1), pricing.Deposit(pricing.NewMoney(2)))
	assert.Equal(t, pricing.NewMoney(0), pricing.Deposit(pricing.NewMoney(1)))
	assert.Equal(t, pricing.NewMoney(25), pricing.Deposit(pricing.NewMoney(101)))
	assert.Equal(t, pricing.NewMoney(26), pricing.Deposit(pricing.NewMoney(103)))
}

func TestCheckoutScenario(t *testing.T) {
	in := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	nights := pricing.Nights(in, out)
	partySize := 3
	require.Equal(t, 3, nights)

	cabins := []cabin{{capacity: 4, total: pricing.MoneyFromUnits(210000)}}
	services := []service{{price: pricing.MoneyFromUnits(5000)}}

	cabinsSubtotal := pricing.CabinsSubtotal(cabins)
	servicesSubtotal := pricing.ServicesSubtotal(services, nights, partySize)
	b := pricing.NewBreakdown(cabinsSubtotal, servicesSubtotal)

	assert.Equal(t, pricing.MoneyFromUnits(210000), b.CabinsSubtotal)
	assert.Equal(t, pricing.MoneyFromUnits(45000), b.ServicesSubtotal)
	assert.Equal(t, pricing.MoneyFromUnits(255000), b.Total)
	assert.Equal(t, pricing.MoneyFromUnits(63750), b.Deposit)
	assert.Equal(t, pricing.MoneyFromUnits(191250), b.Balance)
}

func TestMoney(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		cases := map[string]int64{
			"210000":    21000000,
			"210000.5":  21000050,
			"210000.55": 21000055,
			"-3.10":     -310,
			"0.07":      7,
		}
		for in, want := range cases {
			m, err := pricing.ParseMoney(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, m.Cents(), in)
		}

		for _, in := range []string{"", "abc", "1.234", "1.+3", ".5", "1e3"} {
			_, err := pricing.ParseMoney(in)
			assert.ErrorIs(t, err, pricing.ErrInvalidAmount, in)
		}
	})

	t.Run("json accepts numbers and strings", func(t *testing.T) {
		var v struct {
			A pricing.Money `json:"a"`
			B pricing.Money `json:"b"`
			C pricing.Money `json:"c"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a":210000,"b":"5000.50","c":1.005e2}`), &v))
		assert.Equal(t, int64(21000000), v.A.Cents())
		assert.Equal(t, int64(500050), v.B.Cents())
		assert.Equal(t, int64(10050), v.C.Cents())

		out, err := json.Marshal(v)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":210000.00,"b":5000.50,"c":100.50}`, string(out))
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "63750.00", pricing.MoneyFromUnits(63750).String())
		assert.Equal(t, "-0.05", pricing.NewMoney(-5).String())
	})
}
