//go:build unit || e2e

package builder

import (
	"time"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/domain/pricing"
)

// Fixed reference instant used across checkout tests: 2025-07-01 09:00 ART.
var (
	ART = time.FixedZone("ART", -3*60*60)
	Now = time.Date(2025, 7, 1, 9, 0, 0, 0, ART)
)

func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, ART)
}

type CandidateBuilder struct {
	c checkout.CabinCandidate
}

func NewCandidateBuilder() *CandidateBuilder {
	return &CandidateBuilder{c: checkout.CabinCandidate{
		ID:            1,
		TypeName:      "Lakeside",
		ZoneName:      "North",
		Code:          "N-01",
		Capacity:      4,
		PricePerNight: pricing.MoneyFromUnits(35000),
		Nights:        3,
		TotalPrice:    pricing.MoneyFromUnits(105000),
	}}
}

func (b *CandidateBuilder) WithID(id int64) *CandidateBuilder {
	b.c.ID = id
	return b
}

func (b *CandidateBuilder) WithCode(code string) *CandidateBuilder {
	b.c.Code = code
	return b
}

func (b *CandidateBuilder) WithCapacity(n int) *CandidateBuilder {
	b.c.Capacity = n
	return b
}

func (b *CandidateBuilder) WithTotal(units int64) *CandidateBuilder {
	b.c.TotalPrice = pricing.MoneyFromUnits(units)
	return b
}

func (b *CandidateBuilder) Build() checkout.CabinCandidate {
	return b.c
}

// Candidates builds one candidate per capacity, with ids 1..n and a total of
// 105000 each.
func Candidates(capacities ...int) []checkout.CabinCandidate {
	out := make([]checkout.CabinCandidate, len(capacities))
	for i, c := range capacities {
		out[i] = NewCandidateBuilder().WithID(int64(i + 1)).WithCapacity(c).Build()
	}
	return out
}

type StayBuilder struct {
	r checkout.StayRequest
}

func NewStayBuilder() *StayBuilder {
	return &StayBuilder{r: checkout.StayRequest{
		CheckIn:   Date(2025, 7, 10),
		CheckOut:  Date(2025, 7, 13),
		PartySize: 3,
	}}
}

func (b *StayBuilder) WithDates(in, out time.Time) *StayBuilder {
	b.r.CheckIn = in
	b.r.CheckOut = out
	return b
}

func (b *StayBuilder) WithPartySize(n int) *StayBuilder {
	b.r.PartySize = n
	return b
}

func (b *StayBuilder) Build() checkout.StayRequest {
	return b.r
}

func NewService(id int64, name string, units int64) checkout.ServiceOption {
	return checkout.ServiceOption{ID: id, Name: name, UnitPrice: pricing.MoneyFromUnits(units)}
}

func ValidPayment() checkout.PaymentDraft {
	return checkout.NewPaymentDraft(checkout.PaymentInput{
		CardNumber: "4111 1111 1111 1111",
		HolderName: "María Pérez",
		Expiry:     "12/27",
		CVV:        "123",
	})
}

// CartBuilder assembles the 210000 / 45000 checkout: two cabins for three
// nights, one 5000 service for a party of three.
type CartBuilder struct {
	cart checkout.Cart
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{cart: checkout.Cart{
		Stay: NewStayBuilder().Build(),
		Cabins: []checkout.CabinCandidate{
			NewCandidateBuilder().WithID(1).WithCapacity(2).Build(),
			NewCandidateBuilder().WithID(2).WithCode("N-02").WithCapacity(2).Build(),
		},
		Services: []checkout.ServiceOption{NewService(7, "Breakfast", 5000)},
	}}
}

func (b *CartBuilder) WithPayment(d checkout.PaymentDraft) *CartBuilder {
	b.cart.Payment = d
	return b
}

func (b *CartBuilder) WithoutServices() *CartBuilder {
	b.cart.Services = nil
	return b
}

func (b *CartBuilder) Build() checkout.Cart {
	return b.cart
}
