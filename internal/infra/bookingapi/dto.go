package bookingapi

import (
	"encoding/json"
	"time"

	"resort-checkout/internal/domain/checkout"
	"resort-checkout/internal/domain/field"
	"resort-checkout/internal/domain/pricing"
)

type availabilityRequest struct {
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	CantPersonas int    `json:"cant_personas"`
}

type reservationRequest struct {
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	CantPersonas int     `json:"cant_personas"`
	CabanasIDs   []int64 `json:"cabanas_ids"`
	ServiciosIDs []int64 `json:"servicios_ids"`
}

type envelope struct {
	Data json.RawMessage      `json:"data"`
	Meta *availabilityRequest `json:"meta,omitempty"`
}

type candidateDTO struct {
	ID          int64         `json:"id"`
	Tipo        string        `json:"tipo"`
	Zona        string        `json:"zona"`
	Codigo      string        `json:"codigo"`
	Capacidad   int           `json:"capacidad"`
	PrecioNoche pricing.Money `json:"precio_noche"`
	Noches      int           `json:"noches"`
	PrecioTotal pricing.Money `json:"precio_total"`
}

type serviceDTO struct {
	ID     int64         `json:"id"`
	Nombre string        `json:"nombre"`
	Precio pricing.Money `json:"precio"`
}

type reservationDTO struct {
	ID        int64  `json:"id"`
	Estado    string `json:"estado"`
	CreatedAt string `json:"created_at"`
}

type errorBody struct {
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// remote field names mapped onto the form field names used by the checkout
var fieldNames = map[string]string{
	"check_in":      "check_in",
	"check_out":     "check_out",
	"cant_personas": "party_size",
	"cabanas_ids":   "cabins",
	"servicios_ids": "services",
}

func toAvailabilityRequest(r checkout.StayRequest) availabilityRequest {
	return availabilityRequest{
		CheckIn:      r.CheckIn.Format(field.DateLayout),
		CheckOut:     r.CheckOut.Format(field.DateLayout),
		CantPersonas: r.PartySize,
	}
}

func toReservationRequest(cart checkout.Cart) reservationRequest {
	stay := toAvailabilityRequest(cart.Stay)
	return reservationRequest{
		CheckIn:      stay.CheckIn,
		CheckOut:     stay.CheckOut,
		CantPersonas: stay.CantPersonas,
		CabanasIDs:   cart.CabinIDs(),
		ServiciosIDs: cart.ServiceIDs(),
	}
}

func (d candidateDTO) toDomain() checkout.CabinCandidate {
	return checkout.CabinCandidate{
		ID:            d.ID,
		TypeName:      d.Tipo,
		ZoneName:      d.Zona,
		Code:          d.Codigo,
		Capacity:      d.Capacidad,
		PricePerNight: d.PrecioNoche,
		Nights:        d.Noches,
		TotalPrice:    d.PrecioTotal,
	}
}

func (d serviceDTO) toDomain() checkout.ServiceOption {
	return checkout.ServiceOption{ID: d.ID, Name: d.Nombre, UnitPrice: d.Precio}
}

func (d reservationDTO) toDomain() checkout.Receipt {
	r := checkout.Receipt{ReservationID: d.ID, Status: d.Estado}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, d.CreatedAt); err == nil {
			r.CreatedAt = t
			break
		}
	}
	return r
}
