package request

import (
	"resort-checkout/internal/domain/checkout"
)

// SearchRequest is only bound for shape; the stay rules live in the domain so
// the form can report every field at once.
type SearchRequest struct {
	CheckIn   string `json:"check_in" binding:"max=10"`
	CheckOut  string `json:"check_out" binding:"max=10"`
	PartySize int    `json:"party_size" binding:"min=0,max=1000"`
}

func (r *SearchRequest) ToInput() checkout.StayInput {
	return checkout.StayInput{
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		PartySize: r.PartySize,
	}
}

// PaymentRequest carries the whole draft; partial drafts are accepted and
// validated on confirm.
type PaymentRequest struct {
	CardNumber string `json:"card_number" binding:"max=32"`
	HolderName string `json:"holder_name" binding:"max=120"`
	Expiry     string `json:"expiry" binding:"max=7"`
	CVV        string `json:"cvv" binding:"max=4"`
}

func (r *PaymentRequest) ToInput() checkout.PaymentInput {
	return checkout.PaymentInput{
		CardNumber: r.CardNumber,
		HolderName: r.HolderName,
		Expiry:     r.Expiry,
		CVV:        r.CVV,
	}
}

type ServiceListQuery struct {
	Q string `form:"q"`
}
