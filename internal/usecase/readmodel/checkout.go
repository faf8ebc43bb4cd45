package readmodel

import (
	"time"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/domain/field"
	"resort-checkout/internal/domain/pricing"

	"github.com/google/uuid"
)

// CheckoutRM is the externally visible projection of a checkout session. The
// card number only ever appears masked and the CVV never appears.
type CheckoutRM struct {
	ID         uuid.UUID         `json:"id"`
	Stage      string            `json:"stage"`
	Generation uint64            `json:"generation"`
	InFlight   []string          `json:"in_flight"`
	Search     *SearchRM         `json:"search,omitempty"`
	Cabins     *CabinSelectionRM `json:"cabins,omitempty"`
	Services   *ServiceStageRM   `json:"services,omitempty"`
	Payment    *PaymentRM        `json:"payment,omitempty"`
	Receipt    *ReceiptRM        `json:"receipt,omitempty"`
	Breakdown  *BreakdownRM      `json:"breakdown,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type StayRM struct {
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	PartySize int    `json:"party_size"`
	Nights    int    `json:"nights"`
}

type SearchRM struct {
	CheckIn     string            `json:"check_in"`
	CheckOut    string            `json:"check_out"`
	PartySize   int               `json:"party_size"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	Error       string            `json:"error,omitempty"`
}

type CabinRM struct {
	ID            int64         `json:"id"`
	TypeName      string        `json:"type_name"`
	ZoneName      string        `json:"zone_name"`
	Code          string        `json:"code"`
	Capacity      int           `json:"capacity"`
	PricePerNight pricing.Money `json:"price_per_night"`
	Nights        int           `json:"nights"`
	TotalPrice    pricing.Money `json:"total_price"`
	Selected      bool          `json:"selected"`
}

type CabinSelectionRM struct {
	Stay          StayRM        `json:"stay"`
	Candidates    []CabinRM     `json:"candidates"`
	SelectedIDs   []int64       `json:"selected_ids"`
	CapacitySum   int           `json:"capacity_sum"`
	CapacityLimit int           `json:"capacity_limit"`
	CanProceed    bool          `json:"can_proceed"`
	Subtotal      pricing.Money `json:"subtotal"`
}

type ServiceRM struct {
	ID                     int64         `json:"id"`
	Name                   string        `json:"name"`
	PricePerPersonPerNight pricing.Money `json:"price_per_person_per_night"`
	Selected               bool          `json:"selected"`
}

type ServiceStageRM struct {
	Stay               StayRM      `json:"stay"`
	Cabins             []CabinRM   `json:"cabins"`
	Catalog            []ServiceRM `json:"catalog"`
	CatalogLoaded      bool        `json:"catalog_loaded"`
	CatalogUnavailable bool        `json:"catalog_unavailable"`
	SelectedIDs        []int64     `json:"selected_ids"`
}

// ServiceCatalogRM is one filtered page of the services catalog.
type ServiceCatalogRM struct {
	Term               string      `json:"term"`
	Services           []ServiceRM `json:"services"`
	CatalogUnavailable bool        `json:"catalog_unavailable"`
}

type CardRM struct {
	MaskedNumber string `json:"masked_number"`
	HolderName   string `json:"holder_name"`
	Expiry       string `json:"expiry"`
	CVVEntered   bool   `json:"cvv_entered"`
}

type PaymentRM struct {
	Stay        StayRM            `json:"stay"`
	Cabins      []CabinRM         `json:"cabins"`
	Services    []ServiceRM       `json:"services"`
	Status      string            `json:"status"`
	Card        CardRM            `json:"card"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	Error       string            `json:"error,omitempty"`
}

type ReceiptRM struct {
	ReservationID int64     `json:"reservation_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type BreakdownRM struct {
	CabinsSubtotal   pricing.Money `json:"cabins_subtotal"`
	ServicesSubtotal pricing.Money `json:"services_subtotal"`
	Total            pricing.Money `json:"total"`
	Deposit          pricing.Money `json:"deposit"`
	Balance          pricing.Money `json:"balance"`
}

var requestKinds = []checkout.RequestKind{
	checkout.RequestAvailability,
	checkout.RequestCatalog,
	checkout.RequestSubmit,
}

// FromSession projects the session. The caller must hold the session lock.
func FromSession(s *checkout.Session) *CheckoutRM {
	rm := &CheckoutRM{
		ID:         s.ID,
		Stage:      s.Stage().String(),
		Generation: s.Generation(),
		InFlight:   []string{},
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	for _, k := range requestKinds {
		if s.InFlight(k) {
			rm.InFlight = append(rm.InFlight, string(k))
		}
	}

	switch st := s.State().(type) {
	case *checkout.SearchStage:
		rm.Search = &SearchRM{
			CheckIn:     st.Input.CheckIn,
			CheckOut:    st.Input.CheckOut,
			PartySize:   st.Input.PartySize,
			FieldErrors: fieldErrors(st.FieldErrors),
			Error:       st.Error,
		}
	case *checkout.CabinStage:
		rm.Cabins = &CabinSelectionRM{
			Stay:          stayRM(st.Request),
			Candidates:    cabinRMs(st.Candidates, st.IsSelected),
			SelectedIDs:   append([]int64{}, st.Selected...),
			CapacitySum:   st.CapacitySum(),
			CapacityLimit: st.Request.PartySize + st.Slack,
			CanProceed:    len(st.Selected) > 0 && st.CapacitySum() >= st.Request.PartySize,
			Subtotal:      st.Subtotal(),
		}
		rm.Breakdown = breakdownRM(pricing.NewBreakdown(st.Subtotal(), pricing.Money{}))
	case *checkout.ServiceStage:
		selected := func(id int64) bool { return containsID(st.Selected, id) }
		rm.Services = &ServiceStageRM{
			Stay:               stayRM(st.Cart.Stay),
			Cabins:             cabinRMs(st.Cart.Cabins, nil),
			Catalog:            ServiceRMs(st.Catalog, selected),
			CatalogLoaded:      st.CatalogLoaded,
			CatalogUnavailable: st.CatalogUnavailable,
			SelectedIDs:        append([]int64{}, st.Selected...),
		}
		rm.Breakdown = breakdownRM(st.Breakdown())
	case *checkout.PaymentStage:
		rm.Payment = paymentRM(st)
		rm.Breakdown = breakdownRM(st.Cart.Breakdown())
	case *checkout.AwaitingAuthStage:
		rm.Breakdown = breakdownRM(st.Cart.Breakdown())
	case *checkout.ConfirmedStage:
		rm.Receipt = &ReceiptRM{
			ReservationID: st.Receipt.ReservationID,
			Status:        st.Receipt.Status,
			CreatedAt:     st.Receipt.CreatedAt,
		}
		rm.Breakdown = breakdownRM(st.Cart.Breakdown())
	}
	return rm
}

func paymentRM(st *checkout.PaymentStage) *PaymentRM {
	d := st.Cart.Payment
	return &PaymentRM{
		Stay:     stayRM(st.Cart.Stay),
		Cabins:   cabinRMs(st.Cart.Cabins, nil),
		Services: ServiceRMs(st.Cart.Services, nil),
		Status:   string(st.Status),
		Card: CardRM{
			MaskedNumber: d.MaskedNumber(),
			HolderName:   d.HolderName,
			Expiry:       d.Expiry,
			CVVEntered:   d.CVV != "",
		},
		FieldErrors: fieldErrors(st.FieldErrors),
		Error:       st.Error,
	}
}

func stayRM(r checkout.StayRequest) StayRM {
	in := r.Input()
	return StayRM{
		CheckIn:   in.CheckIn,
		CheckOut:  in.CheckOut,
		PartySize: in.PartySize,
		Nights:    r.Nights(),
	}
}

func cabinRMs(cabins []checkout.CabinCandidate, selected func(int64) bool) []CabinRM {
	out := make([]CabinRM, len(cabins))
	for i, c := range cabins {
		out[i] = CabinRM{
			ID:            c.ID,
			TypeName:      c.TypeName,
			ZoneName:      c.ZoneName,
			Code:          c.Code,
			Capacity:      c.Capacity,
			PricePerNight: c.PricePerNight,
			Nights:        c.Nights,
			TotalPrice:    c.TotalPrice,
			Selected:      selected == nil || selected(c.ID),
		}
	}
	return out
}

// ServiceRMs projects services; a nil selected func marks every entry selected.
func ServiceRMs(services []checkout.ServiceOption, selected func(int64) bool) []ServiceRM {
	out := make([]ServiceRM, len(services))
	for i, s := range services {
		out[i] = ServiceRM{
			ID:                     s.ID,
			Name:                   s.Name,
			PricePerPersonPerNight: s.UnitPrice,
			Selected:               selected == nil || selected(s.ID),
		}
	}
	return out
}

func breakdownRM(b pricing.Breakdown) *BreakdownRM {
	return &BreakdownRM{
		CabinsSubtotal:   b.CabinsSubtotal,
		ServicesSubtotal: b.ServicesSubtotal,
		Total:            b.Total,
		Deposit:          b.Deposit,
		Balance:          b.Balance,
	}
}

func fieldErrors(fe field.Errors) map[string]string {
	if fe.Empty() {
		return nil
	}
	out := make(map[string]string, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
