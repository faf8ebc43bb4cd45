package checkout

import (
	"slices"
	"time"

	"resort-checkout/internal/domain/field"
	"resort-checkout/internal/domain/pricing"
)

type Stage string

const (
	StageSearch       Stage = "search"
	StageCabins       Stage = "cabins"
	StageServices     Stage = "services"
	StagePayment      Stage = "payment"
	StageAwaitingAuth Stage = "awaiting_auth"
	StageConfirmed    Stage = "confirmed"
)

var stageOrder = map[Stage]int{
	StageSearch:       1,
	StageCabins:       2,
	StageServices:     3,
	StagePayment:      4,
	StageAwaitingAuth: 5,
	StageConfirmed:    6,
}

func (s Stage) String() string {
	return string(s)
}

// Before reports whether s comes earlier in the pipeline than other.
func (s Stage) Before(other Stage) bool {
	return stageOrder[s] < stageOrder[other]
}

// State is the data owned by the active stage. The concrete type is the
// stage discriminator; only the types in this file implement it.
type State interface {
	Stage() Stage
	sealed()
}

// ---------------------------------------------------------------------------
// Stage 1: availability query
// ---------------------------------------------------------------------------

type SearchStage struct {
	Input       StayInput
	FieldErrors field.Errors
	Error       string
}

func (*SearchStage) Stage() Stage { return StageSearch }
func (*SearchStage) sealed()      {}

func (s *SearchStage) Fail(fe field.Errors, general string) {
	s.FieldErrors = fe
	s.Error = general
}

// Results moves to cabin selection with the request the server echoed.
func (s *SearchStage) Results(req StayRequest, candidates []CabinCandidate, slack int) *CabinStage {
	return NewCabinStage(req, candidates, slack)
}

// ---------------------------------------------------------------------------
// Stage 2: cabin selection
// ---------------------------------------------------------------------------

type CabinStage struct {
	Request    StayRequest
	Candidates []CabinCandidate
	Selected   []int64
	Slack      int
}

func NewCabinStage(req StayRequest, candidates []CabinCandidate, slack int) *CabinStage {
	if slack < 0 {
		slack = DefaultCapacitySlack
	}
	return &CabinStage{
		Request:    req,
		Candidates: candidates,
		Selected:   []int64{},
		Slack:      slack,
	}
}

func (*CabinStage) Stage() Stage { return StageCabins }
func (*CabinStage) sealed()      {}

func (s *CabinStage) candidate(id int64) (CabinCandidate, bool) {
	for _, c := range s.Candidates {
		if c.ID == id {
			return c, true
		}
	}
	return CabinCandidate{}, false
}

func (s *CabinStage) IsSelected(id int64) bool {
	return slices.Contains(s.Selected, id)
}

// Toggle removes id when selected, otherwise adds it unless the capacity
// guard (party size + slack) would be exceeded. A rejected toggle leaves the
// selection untouched.
func (s *CabinStage) Toggle(id int64) error {
	if idx := slices.Index(s.Selected, id); idx >= 0 {
		s.Selected = slices.Delete(s.Selected, idx, idx+1)
		return nil
	}
	c, ok := s.candidate(id)
	if !ok {
		return ErrUnknownCabin
	}
	if s.CapacitySum()+c.Capacity > s.Request.PartySize+s.Slack {
		return ErrCapacityGuard
	}
	s.Selected = append(s.Selected, id)
	return nil
}

func (s *CabinStage) SelectedCabins() []CabinCandidate {
	out := make([]CabinCandidate, 0, len(s.Selected))
	for _, id := range s.Selected {
		if c, ok := s.candidate(id); ok {
			out = append(out, c)
		}
	}
	return out
}

func (s *CabinStage) CapacitySum() int {
	return pricing.CapacitySum(s.SelectedCabins())
}

func (s *CabinStage) Subtotal() pricing.Money {
	return pricing.CabinsSubtotal(s.SelectedCabins())
}

func (s *CabinStage) Proceed() (*ServiceStage, error) {
	if len(s.Selected) == 0 {
		return nil, ErrEmptySelection
	}
	if s.CapacitySum() < s.Request.PartySize {
		return nil, ErrCapacityShortfall
	}
	cart := Cart{Stay: s.Request, Cabins: s.SelectedCabins()}
	return &ServiceStage{
		Cart:       cart.Clone(),
		Candidates: slices.Clone(s.Candidates),
		Slack:      s.Slack,
		Selected:   []int64{},
	}, nil
}

func (s *CabinStage) Back() *SearchStage {
	return &SearchStage{Input: s.Request.Input()}
}

// ---------------------------------------------------------------------------
// Stage 3: optional services
// ---------------------------------------------------------------------------

type ServiceStage struct {
	Cart               Cart
	Candidates         []CabinCandidate
	Slack              int
	Catalog            []ServiceOption
	CatalogLoaded      bool
	CatalogUnavailable bool
	Selected           []int64
}

func (*ServiceStage) Stage() Stage { return StageServices }
func (*ServiceStage) sealed()      {}

func (s *ServiceStage) SetCatalog(options []ServiceOption) {
	s.Catalog = options
	s.CatalogLoaded = true
	s.CatalogUnavailable = false
}

// CatalogFailed keeps the stage usable; the user can continue without services.
func (s *ServiceStage) CatalogFailed() {
	s.CatalogUnavailable = true
}

func (s *ServiceStage) option(id int64) (ServiceOption, bool) {
	for _, o := range s.Catalog {
		if o.ID == id {
			return o, true
		}
	}
	return ServiceOption{}, false
}

func (s *ServiceStage) Toggle(id int64) error {
	if idx := slices.Index(s.Selected, id); idx >= 0 {
		s.Selected = slices.Delete(s.Selected, idx, idx+1)
		return nil
	}
	if _, ok := s.option(id); !ok {
		return ErrUnknownService
	}
	s.Selected = append(s.Selected, id)
	return nil
}

func (s *ServiceStage) SelectedServices() []ServiceOption {
	out := make([]ServiceOption, 0, len(s.Selected))
	for _, id := range s.Selected {
		if o, ok := s.option(id); ok {
			out = append(out, o)
		}
	}
	return out
}

func (s *ServiceStage) ServicesSubtotal() pricing.Money {
	return pricing.ServicesSubtotal(s.SelectedServices(), s.Cart.Stay.Nights(), s.Cart.Stay.PartySize)
}

func (s *ServiceStage) Breakdown() pricing.Breakdown {
	return s.consolidated().Breakdown()
}

func (s *ServiceStage) consolidated() Cart {
	cart := s.Cart.Clone()
	cart.Services = s.SelectedServices()
	return cart
}

func (s *ServiceStage) Proceed() *PaymentStage {
	return &PaymentStage{
		Cart:       s.consolidated(),
		Candidates: slices.Clone(s.Candidates),
		Slack:      s.Slack,
		Catalog:    slices.Clone(s.Catalog),
		Status:     PaymentEditing,
	}
}

func (s *ServiceStage) Back() *CabinStage {
	return &CabinStage{
		Request:    s.Cart.Stay,
		Candidates: slices.Clone(s.Candidates),
		Selected:   s.Cart.CabinIDs(),
		Slack:      s.Slack,
	}
}

// ---------------------------------------------------------------------------
// Stage 4: payment
// ---------------------------------------------------------------------------

type PaymentStatus string

const (
	PaymentEditing    PaymentStatus = "editing"
	PaymentSubmitting PaymentStatus = "submitting"
)

type PaymentStage struct {
	Cart        Cart
	Candidates  []CabinCandidate
	Slack       int
	Catalog     []ServiceOption
	Status      PaymentStatus
	FieldErrors field.Errors
	Error       string
}

func (*PaymentStage) Stage() Stage { return StagePayment }
func (*PaymentStage) sealed()      {}

// Edit replaces the draft. Earlier errors stay visible until the next confirm.
func (s *PaymentStage) Edit(d PaymentDraft) {
	s.Cart.Payment = d
}

// Validate runs on confirm. On failure the stage stays in editing with every
// entered value kept.
func (s *PaymentStage) Validate(now time.Time) error {
	fe := s.Cart.Payment.Validate(now)
	if !fe.Empty() {
		s.Status = PaymentEditing
		s.FieldErrors = fe
		s.Error = "please review the highlighted payment fields"
		return ErrInvalidPayment
	}
	s.FieldErrors = nil
	s.Error = ""
	return nil
}

func (s *PaymentStage) Submitting() {
	s.Status = PaymentSubmitting
	s.Error = ""
}

// Rejected returns to editing with the server's message.
func (s *PaymentStage) Rejected(msg string) {
	s.Status = PaymentEditing
	s.Error = msg
}

func (s *PaymentStage) Park() *AwaitingAuthStage {
	return &AwaitingAuthStage{Cart: s.Cart.Clone(), Slack: s.Slack}
}

func (s *PaymentStage) Confirmed(r Receipt) *ConfirmedStage {
	return &ConfirmedStage{Cart: s.Cart.Clone(), Receipt: r}
}

func (s *PaymentStage) Back() *ServiceStage {
	cart := s.Cart.Clone()
	selected := cart.ServiceIDs()
	cart.Services = nil
	cart.Payment = PaymentDraft{}
	return &ServiceStage{
		Cart:          cart,
		Candidates:    slices.Clone(s.Candidates),
		Slack:         s.Slack,
		Catalog:       slices.Clone(s.Catalog),
		CatalogLoaded: len(s.Catalog) > 0,
		Selected:      selected,
	}
}

// ---------------------------------------------------------------------------
// Terminal and detour stages
// ---------------------------------------------------------------------------

// AwaitingAuthStage holds a validated cart parked until the user signs in.
type AwaitingAuthStage struct {
	Cart  Cart
	Slack int
}

func (*AwaitingAuthStage) Stage() Stage { return StageAwaitingAuth }
func (*AwaitingAuthStage) sealed()      {}

// Resumed re-enters payment in submitting state with the rehydrated cart.
func (s *AwaitingAuthStage) Resumed() *PaymentStage {
	return Rehydrate(s.Cart, s.Slack)
}

// Rehydrate builds a submitting payment stage from a cart restored after an
// authentication detour. A negative slack falls back to the default.
func Rehydrate(cart Cart, slack int) *PaymentStage {
	if slack < 0 {
		slack = DefaultCapacitySlack
	}
	return &PaymentStage{
		Cart:       cart.Clone(),
		Candidates: slices.Clone(cart.Cabins),
		Slack:      slack,
		Catalog:    slices.Clone(cart.Services),
		Status:     PaymentSubmitting,
	}
}

type ConfirmedStage struct {
	Cart    Cart
	Receipt Receipt
}

func (*ConfirmedStage) Stage() Stage { return StageConfirmed }
func (*ConfirmedStage) sealed()      {}
