package api

import (
	"net/http"
	"strconv"

	reqdto "resort-checkout/internal/handler/dto/request"
	resdto "resort-checkout/internal/handler/dto/response"
	"resort-checkout/internal/handler/httperr"
	"resort-checkout/internal/handler/middleware"
	"resort-checkout/internal/pkg/errs"
	"resort-checkout/internal/usecase/commands"
	"resort-checkout/internal/usecase/queries"
	"resort-checkout/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	q    queries.CheckoutQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

func checkoutID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid checkout id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func itemID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), "Invalid "+param, nil)
		return 0, false
	}
	return id, true
}

func (h *CheckoutHandler) respond(c *gin.Context, id uuid.UUID, status int, view *readmodel.CheckoutRM, err error) {
	if err != nil {
		abortWithCheckoutError(c, id, err)
		return
	}
	middleware.SetCheckoutView(c, view)
	c.JSON(status, resdto.FromCheckoutRM(view))
}

// @Summary Start checkout
// @Description Open a checkout session at the availability search stage
// @Tags checkouts
// @Produce json
// @Success 201 {object} resdto.CheckoutResponse
// @Router /api/checkouts [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	view, err := h.cmds.Start(c.Request.Context(), middleware.GetClientID(c))
	if err != nil {
		abortWithCheckoutError(c, uuid.Nil, err)
		return
	}
	middleware.SetCheckoutView(c, view)
	c.Header("Location", checkoutLocation(view.ID))
	c.JSON(http.StatusCreated, resdto.FromCheckoutRM(view))
}

// @Summary Get checkout
// @Description Current stage, stage data, price breakdown and pending requests
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/checkouts/{id} [get]
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	h.respond(c, id, http.StatusOK, view, err)
}

// @Summary Search availability
// @Description Validate the stay and look up available cabins
// @Tags checkouts
// @Accept json
// @Produce json
// @Param id path string true "Checkout ID"
// @Param request body reqdto.SearchRequest true "Stay"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 303 "Checkout is at another stage"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/checkouts/{id}/search [post]
func (h *CheckoutHandler) Search(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}
	var req reqdto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Search(c.Request.Context(), id, req.ToInput())
	h.respond(c, id, http.StatusOK, view, err)
}

// @Summary New search
// @Description Discard the checkout progress and return to the search stage
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/checkouts/{id}/new-search [post]
func (h *CheckoutHandler) NewSearch(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}
	view, err := h.cmds.NewSearch(c.Request.Context(), id)
	h.respond(c, id, http.StatusOK, view, err)
}

// @Summary Go back
// @Description Return to the previous stage keeping its inputs
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 303 "Checkout is at another stage"
// @Failure 409 {object} httperr.Response
// @Router /api/checkouts/{id}/back [post]
func (h *CheckoutHandler) Back(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}
	view, err := h.cmds.Back(c.Request.Context(), id)
	h.respond(c, id, http.StatusOK, view, err)
}

// @Summary Toggle cabin
// @Description Select or deselect one of the available cabins
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID"
// @Param cabinId path int true "Cabin ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 303 "Checkout is at another stage"
// @Failure 422 {object} httperr.Response
// @Router /api/checkouts/{id}/cabins/{cabinId} [put]
func (h *CheckoutHandler) ToggleCabin(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}
	cabinID, ok := itemID(c, "cabinId")
	if !ok {
		return
	}
	view, err := h.cmds.ToggleCabin(c.Request.Context(), id, cabinID)
	h.respond(c, id, http.StatusOK, view, err)
}

// @Summary Confirm cabins
// @Description Move the cabin selection into the cart
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 303 "Checkout is at another stage"
// @Failure 422 {object} httperr.Response
// @Router /api/checkouts/{id}/cabins/proceed [post]
func (h *CheckoutHandler) ProceedCabins(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}
	view, err := h.cmds.ProceedCabins(c.Request.Context(), id)
	h.respond(c, id, http.StatusOK, view, err)
}

// @Summary List services
// @Description Optional services catalog filtered by name
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID"
// @Param q query string false "Name filter"
// @Success 200 {object} resdto.ServiceCatalogResponse
// @Failure 303 "Checkout is at another stage"
// @Failure 422 {object} httperr.Response
// @Router /api/checkouts/{id}/services [get]
func (h *CheckoutHandler) ListServices(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}
	var query reqdto.ServiceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page, err := h.q.ListServices(c.Request.Context(), id, query.Q)
	if err != nil {
		abortWithCheckoutError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceCatalogRM(page))
}

// @Summary Toggle service
// @Description Add or remove an optional service
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID"
// @Param serviceId path int true "Service ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 303 "Checkout is at another stage"
// @Failure 422 {object} httperr.Response
// @Router /api/checkouts/{id}/services/{serviceId} [put]
func (h *CheckoutHandler) ToggleService(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}
	serviceID, ok := itemID(c, "serviceId")
	if !ok {
		return
	}
	view, err := h.cmds.ToggleService(c.Request.Context(), id, serviceID)
	h.respond(c, id, http.StatusOK, view, err)
}

// @Summary Confirm services
// @Description Consolidate the cart and move on to payment
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 303 "Checkout is at another stage"
// @Router /api/checkouts/{id}/services/proceed [post]
func (h *CheckoutHandler) ProceedServices(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}
	view, err := h.cmds.ProceedServices(c.Request.Context(), id)
	h.respond(c, id, http.StatusOK, view, err)
}

// @Summary Edit payment
// @Description Replace the payment draft; validation happens on confirm
// @Tags checkouts
// @Accept json
// @Produce json
// @Param id path string true "Checkout ID"
// @Param request body reqdto.PaymentRequest true "Payment draft"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 303 "Checkout is at another stage"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/checkouts/{id}/payment [put]
func (h *CheckoutHandler) UpdatePayment(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}
	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdatePayment(c.Request.Context(), id, req.ToInput())
	h.respond(c, id, http.StatusOK, view, err)
}

// @Summary Confirm reservation
// @Description Submit the reservation. Guests get 202 and the cart is kept until they sign in and resume.
// @Tags checkouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Success 202 {object} resdto.CheckoutResponse
// @Failure 303 "Checkout is at another stage"
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/checkouts/{id}/confirm [post]
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}
	principal, _ := middleware.GetPrincipal(c)
	view, err := h.cmds.Confirm(c.Request.Context(), id, principal)
	status := http.StatusOK
	if principal == nil {
		status = http.StatusAccepted
	}
	h.respond(c, id, status, view, err)
}

// @Summary Resume reservation
// @Description Submit the reservation parked for this browser before sign-in
// @Tags checkouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkouts/resume [post]
func (h *CheckoutHandler) Resume(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	view, err := h.cmds.Resume(c.Request.Context(), middleware.GetClientID(c), *principal)
	if err != nil {
		abortWithCheckoutError(c, uuid.Nil, err)
		return
	}
	middleware.SetCheckoutView(c, view)
	c.Header("Location", checkoutLocation(view.ID))
	c.JSON(http.StatusOK, resdto.FromCheckoutRM(view))
}
