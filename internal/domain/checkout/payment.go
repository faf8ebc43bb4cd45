package checkout

import (
	"strings"
	"time"

	"resort-checkout/internal/domain/field"
)

type PaymentInput struct {
	CardNumber string
	HolderName string
	Expiry     string
	CVV        string
}

// PaymentDraft keeps the card number as bare digits; spacing is display only.
type PaymentDraft struct {
	CardNumber string
	HolderName string
	Expiry     string
	CVV        string
}

func NewPaymentDraft(in PaymentInput) PaymentDraft {
	return PaymentDraft{
		CardNumber: field.NormalizeCardNumber(in.CardNumber),
		HolderName: strings.TrimSpace(in.HolderName),
		Expiry:     strings.TrimSpace(in.Expiry),
		CVV:        strings.TrimSpace(in.CVV),
	}
}

func (d PaymentDraft) Validate(now time.Time) field.Errors {
	fe := field.Errors{}
	fe.Add("card_number", field.CardNumber(d.CardNumber))
	fe.Add("holder_name", field.HolderName(d.HolderName))
	fe.Add("expiry", field.Expiry(d.Expiry, now))
	fe.Add("cvv", field.CVV(d.CVV))
	return fe
}

func (d PaymentDraft) Valid(now time.Time) bool {
	return d.Validate(now).Empty()
}

func (d PaymentDraft) DisplayNumber() string {
	return field.FormatCardNumber(d.CardNumber)
}

func (d PaymentDraft) MaskedNumber() string {
	return field.MaskCardNumber(d.CardNumber)
}

func (d PaymentDraft) IsZero() bool {
	return d == PaymentDraft{}
}
