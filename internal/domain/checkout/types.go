package checkout

import (
	"strings"
	"time"

	"resort-checkout/internal/domain/field"
	"resort-checkout/internal/domain/pricing"
	"resort-checkout/internal/pkg/errs"
)

var (
	ErrCapacityGuard     = errs.New("selection would exceed the capacity guard")
	ErrEmptySelection    = errs.New("must select at least one cabin")
	ErrCapacityShortfall = errs.New("selected capacity below party size")
	ErrUnknownCabin      = errs.New("cabin is not among the available candidates")
	ErrUnknownService    = errs.New("service is not in the catalog")
	ErrInvalidStay       = errs.New("invalid stay request")
	ErrInvalidPayment    = errs.New("invalid payment details")
)

const DefaultCapacitySlack = 5

// StayInput is the stay form exactly as typed.
type StayInput struct {
	CheckIn   string
	CheckOut  string
	PartySize int
}

type StayRequest struct {
	CheckIn   time.Time
	CheckOut  time.Time
	PartySize int
}

// NewStayRequest validates the form against today in now's location.
func NewStayRequest(in StayInput, now time.Time, maxParty int) (StayRequest, field.Errors) {
	fe := field.Errors{}
	loc := now.Location()

	checkIn, err := field.ParseDate(in.CheckIn, loc)
	if err == nil {
		err = field.DateNotInPast(checkIn, now)
	}
	fe.Add("check_in", err)

	checkOut, err := field.ParseDate(in.CheckOut, loc)
	if err == nil && fe["check_in"] == "" {
		err = field.DateAfter(checkOut, checkIn)
	}
	fe.Add("check_out", err)

	fe.Add("party_size", field.PartySize(in.PartySize, maxParty))

	if !fe.Empty() {
		return StayRequest{}, fe
	}
	return StayRequest{CheckIn: checkIn, CheckOut: checkOut, PartySize: in.PartySize}, nil
}

func (r StayRequest) Nights() int {
	return pricing.Nights(r.CheckIn, r.CheckOut)
}

// Input renders the request back into form values.
func (r StayRequest) Input() StayInput {
	return StayInput{
		CheckIn:   r.CheckIn.Format(field.DateLayout),
		CheckOut:  r.CheckOut.Format(field.DateLayout),
		PartySize: r.PartySize,
	}
}

type CabinCandidate struct {
	ID            int64
	TypeName      string
	ZoneName      string
	Code          string
	Capacity      int
	PricePerNight pricing.Money
	Nights        int
	TotalPrice    pricing.Money
}

func (c CabinCandidate) CabinCapacity() int        { return c.Capacity }
func (c CabinCandidate) CabinTotal() pricing.Money { return c.TotalPrice }

type ServiceOption struct {
	ID        int64
	Name      string
	UnitPrice pricing.Money
}

func (s ServiceOption) PricePerPersonPerNight() pricing.Money { return s.UnitPrice }

// FilterServices keeps the options whose name contains term, case-insensitively.
func FilterServices(options []ServiceOption, term string) []ServiceOption {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return options
	}
	out := make([]ServiceOption, 0, len(options))
	for _, o := range options {
		if strings.Contains(strings.ToLower(o.Name), term) {
			out = append(out, o)
		}
	}
	return out
}

// Receipt is what the booking API returned for a created reservation.
type Receipt struct {
	ReservationID int64
	Status        string
	CreatedAt     time.Time
}
