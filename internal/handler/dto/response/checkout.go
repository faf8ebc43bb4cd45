package response

import (
	"resort-checkout/internal/usecase/readmodel"
)

// CheckoutResponse is the session view returned by every checkout endpoint.
type CheckoutResponse struct {
	ID         string                      `json:"id"`
	Stage      string                      `json:"stage"`
	Generation uint64                      `json:"generation"`
	InFlight   []string                    `json:"in_flight"`
	Search     *readmodel.SearchRM         `json:"search,omitempty"`
	Cabins     *readmodel.CabinSelectionRM `json:"cabins,omitempty"`
	Services   *readmodel.ServiceStageRM   `json:"services,omitempty"`
	Payment    *readmodel.PaymentRM        `json:"payment,omitempty"`
	Receipt    *ReceiptResponse            `json:"receipt,omitempty"`
	Breakdown  *readmodel.BreakdownRM      `json:"breakdown,omitempty"`
	CreatedAt  int64                       `json:"created_at"`
	UpdatedAt  int64                       `json:"updated_at"`
}

type ReceiptResponse struct {
	ReservationID int64  `json:"reservation_id"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"created_at,omitempty"`
}

func FromCheckoutRM(rm *readmodel.CheckoutRM) *CheckoutResponse {
	resp := &CheckoutResponse{
		ID:         rm.ID.String(),
		Stage:      rm.Stage,
		Generation: rm.Generation,
		InFlight:   rm.InFlight,
		Search:     rm.Search,
		Cabins:     rm.Cabins,
		Services:   rm.Services,
		Payment:    rm.Payment,
		Breakdown:  rm.Breakdown,
		CreatedAt:  rm.CreatedAt.Unix(),
		UpdatedAt:  rm.UpdatedAt.Unix(),
	}
	if rm.Receipt != nil {
		resp.Receipt = &ReceiptResponse{
			ReservationID: rm.Receipt.ReservationID,
			Status:        rm.Receipt.Status,
		}
		if !rm.Receipt.CreatedAt.IsZero() {
			resp.Receipt.CreatedAt = rm.Receipt.CreatedAt.Unix()
		}
	}
	return resp
}

type ServiceCatalogResponse struct {
	Term               string                `json:"term"`
	Services           []readmodel.ServiceRM `json:"services"`
	CatalogUnavailable bool                  `json:"catalog_unavailable"`
}

func FromServiceCatalogRM(rm *readmodel.ServiceCatalogRM) *ServiceCatalogResponse {
	services := rm.Services
	if services == nil {
		services = []readmodel.ServiceRM{}
	}
	return &ServiceCatalogResponse{
		Term:               rm.Term,
		Services:           services,
		CatalogUnavailable: rm.CatalogUnavailable,
	}
}
