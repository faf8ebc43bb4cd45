package checkout

import (
	"time"

	"resort-checkout/internal/domain/pricing"

	"github.com/jinzhu/copier"
)

// Cart accumulates the pipeline state from search through payment.
type Cart struct {
	Stay     StayRequest
	Cabins   []CabinCandidate
	Services []ServiceOption
	Payment  PaymentDraft
}

func (c Cart) CabinIDs() []int64 {
	ids := make([]int64, len(c.Cabins))
	for i, cabin := range c.Cabins {
		ids[i] = cabin.ID
	}
	return ids
}

func (c Cart) ServiceIDs() []int64 {
	ids := make([]int64, len(c.Services))
	for i, s := range c.Services {
		ids[i] = s.ID
	}
	return ids
}

func (c Cart) Breakdown() pricing.Breakdown {
	return pricing.NewBreakdown(
		pricing.CabinsSubtotal(c.Cabins),
		pricing.ServicesSubtotal(c.Services, c.Stay.Nights(), c.Stay.PartySize),
	)
}

var cloneOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: time.Time{},
			Fn:      func(src any) (any, error) { return src, nil },
		},
		{
			SrcType: pricing.Money{},
			DstType: pricing.Money{},
			Fn:      func(src any) (any, error) { return src, nil },
		},
	},
}

// Clone returns a deep copy so the next stage never shares slices with the previous one.
func (c Cart) Clone() Cart {
	var out Cart
	if err := copier.CopyWithOption(&out, &c, cloneOption); err != nil {
		// unreachable: source and destination share a type
		panic(err)
	}
	return out
}
