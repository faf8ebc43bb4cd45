// Package pricing aggregates the totals of a checkout cart. Cabin totals come
// from the availability lookup already priced for the stay; only services are
// multiplied out here.
package pricing

import (
	"math"
	"time"
)

const DepositPercent = 25

type CabinLine interface {
	CabinCapacity() int
	CabinTotal() Money
}

type ServiceLine interface {
	PricePerPersonPerNight() Money
}

type Breakdown struct {
	CabinsSubtotal   Money `json:"cabins_subtotal"`
	ServicesSubtotal Money `json:"services_subtotal"`
	Total            Money `json:"total"`
	Deposit          Money `json:"deposit"`
	Balance          Money `json:"balance"`
}

// Nights counts calendar nights between two dates. Both ends are reduced to
// their calendar date in UTC so daylight-saving shifts cannot add or drop a day.
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	days := math.Ceil(out.Sub(in).Hours() / 24)
	if days < 0 {
		return 0
	}
	return int(days)
}

func CapacitySum[C CabinLine](cabins []C) int {
	sum := 0
	for _, c := range cabins {
		sum += c.CabinCapacity()
	}
	return sum
}

func CabinsSubtotal[C CabinLine](cabins []C) Money {
	var total Money
	for _, c := range cabins {
		total = total.Add(c.CabinTotal())
	}
	return total
}

func ServicesSubtotal[S ServiceLine](services []S, nights, partySize int) Money {
	var total Money
	for _, s := range services {
		total = total.Add(s.PricePerPersonPerNight().Mul(int64(nights) * int64(partySize)))
	}
	return total
}

// Deposit is DepositPercent of total, rounded half-up to the cent.
func Deposit(total Money) Money {
	c := total.Cents()
	if c <= 0 {
		return Money{}
	}
	return NewMoney((c*DepositPercent + 50) / 100)
}

// Balance is always the remainder so deposit + balance == total.
func Balance(total Money) Money {
	return total.Sub(Deposit(total))
}

func NewBreakdown(cabins, services Money) Breakdown {
	total := cabins.Add(services)
	deposit := Deposit(total)
	return Breakdown{
		CabinsSubtotal:   cabins,
		ServicesSubtotal: services,
		Total:            total,
		Deposit:          deposit,
		Balance:          total.Sub(deposit),
	}
}
