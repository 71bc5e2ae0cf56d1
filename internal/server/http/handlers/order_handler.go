package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/domain/model"
	"github.com/anandaputra/tokoku/internal/server/http/dto"
	"github.com/anandaputra/tokoku/internal/usecase"
)

// OrderHandler manages checkout and order reads.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/orders.
func (h *OrderHandler) Checkout(c *gin.Context) {
	principal := CurrentPrincipal(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	in, err := toCheckoutInput(req)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.Checkout(c.Request.Context(), principal.UserID, in)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart), errors.Is(err, domainErrors.ErrValidation):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CheckoutResponse{
		Order:   toOrderResponse(*result.Order),
		Payment: toIssuedPaymentResponse(result.Invoice),
	}
	if result.InvoiceErr != nil {
		response.InvoiceError = result.InvoiceErr.Error()
	}

	c.JSON(http.StatusCreated, response)
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	principal := CurrentPrincipal(c)

	orders, err := h.facade.Orders(c.Request.Context(), principal.UserID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	principal := CurrentPrincipal(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	order, err := h.facade.Order(c.Request.Context(), orderID, principal.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func toCheckoutInput(req dto.CheckoutRequest) (usecase.CheckoutInput, error) {
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return usecase.CheckoutInput{}, err
	}

	items := make([]usecase.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return usecase.CheckoutInput{}, err
		}
		items = append(items, usecase.CartItem{
			ProductID: productID,
			Qty:       item.Qty,
			Notes:     item.Notes,
		})
	}

	in := usecase.CheckoutInput{
		StoreID:  storeID,
		Items:    items,
		Shipping: model.ShippingMethod(req.Shipping),
		Payment:  model.PaymentMethod(req.PaymentMethod),
		Notes:    req.Notes,
	}
	if req.Address != nil {
		in.Address = &model.Address{
			Name:    req.Address.Name,
			Phone:   req.Address.Phone,
			Address: req.Address.Address,
		}
	}
	return in, nil
}
