package mailbox

import (
	"encoding/json"
	"time"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/domain/pricing"
	"resort-checkout/internal/pkg/errs"
)

// CurrentVersion is bumped whenever the parked cart layout changes.
const CurrentVersion = 1

var (
	ErrUnsupportedVersion = errs.New("unsupported pending reservation version")
	ErrMalformedEnvelope  = errs.New("malformed pending reservation envelope")
)

type envelope struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	Cart    cartV1    `json:"cart"`
}

type cartV1 struct {
	CheckIn   time.Time   `json:"check_in"`
	CheckOut  time.Time   `json:"check_out"`
	PartySize int         `json:"party_size"`
	Cabins    []cabinV1   `json:"cabins"`
	Services  []serviceV1 `json:"services"`
	Payment   paymentV1   `json:"payment"`
}

type cabinV1 struct {
	ID            int64         `json:"id"`
	TypeName      string        `json:"type_name"`
	ZoneName      string        `json:"zone_name"`
	Code          string        `json:"code"`
	Capacity      int           `json:"capacity"`
	PricePerNight pricing.Money `json:"price_per_night"`
	Nights        int           `json:"nights"`
	TotalPrice    pricing.Money `json:"total_price"`
}

type serviceV1 struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	UnitPrice pricing.Money `json:"unit_price"`
}

type paymentV1 struct {
	CardNumber string `json:"card_number"`
	HolderName string `json:"holder_name"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// Encode serializes the full cart, payment draft included, under the current
// schema version.
func Encode(cart checkout.Cart, savedAt time.Time) ([]byte, error) {
	env := envelope{
		Version: CurrentVersion,
		SavedAt: savedAt.UTC(),
		Cart: cartV1{
			CheckIn:   cart.Stay.CheckIn,
			CheckOut:  cart.Stay.CheckOut,
			PartySize: cart.Stay.PartySize,
			Cabins:    make([]cabinV1, len(cart.Cabins)),
			Services:  make([]serviceV1, len(cart.Services)),
			Payment:   paymentV1(cart.Payment),
		},
	}
	for i, c := range cart.Cabins {
		env.Cart.Cabins[i] = cabinV1(c)
	}
	for i, s := range cart.Services {
		env.Cart.Services[i] = serviceV1(s)
	}
	b, err := json.Marshal(env)
	if err != nil {
		return nil, errs.Wrap(err, "encode pending reservation")
	}
	return b, nil
}

// Decode rejects envelopes written under any other version instead of
// guessing at their layout.
func Decode(data []byte) (checkout.Cart, time.Time, error) {
	var head struct {
		Version *int `json:"version"`
	}
	if err := json.Unmarshal(data, &head); err != nil || head.Version == nil {
		return checkout.Cart{}, time.Time{}, ErrMalformedEnvelope
	}
	if *head.Version != CurrentVersion {
		return checkout.Cart{}, time.Time{}, errs.Wrapf(ErrUnsupportedVersion, "version %d", *head.Version)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return checkout.Cart{}, time.Time{}, errs.Mark(errs.Wrap(err, "decode pending reservation"), ErrMalformedEnvelope)
	}

	cart := checkout.Cart{
		Stay: checkout.StayRequest{
			CheckIn:   env.Cart.CheckIn,
			CheckOut:  env.Cart.CheckOut,
			PartySize: env.Cart.PartySize,
		},
		Cabins:   make([]checkout.CabinCandidate, len(env.Cart.Cabins)),
		Services: make([]checkout.ServiceOption, len(env.Cart.Services)),
		Payment:  checkout.PaymentDraft(env.Cart.Payment),
	}
	for i, c := range env.Cart.Cabins {
		cart.Cabins[i] = checkout.CabinCandidate(c)
	}
	for i, s := range env.Cart.Services {
		cart.Services[i] = checkout.ServiceOption(s)
	}
	return cart, env.SavedAt, nil
}
