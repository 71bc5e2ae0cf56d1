package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/server/http/dto"
	"github.com/anandaputra/tokoku/internal/usecase"
)

// AdminHandler manages staff-only order operations.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Simulate handles POST /api/admin/simulate.
func (h *AdminHandler) Simulate(c *gin.Context) {
	principal := CurrentPrincipal(c)

	var req dto.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.Simulate(c.Request.Context(), principal.Role, orderID, usecase.SimulateAction(req.Action))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrSimulationDisabled), errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrValidation):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.SimulateResponse{
		Message: result.Message,
		Order:   toOrderResponse(*result.Order),
		Payment: toPaymentResponse(result.Payment, false),
	})
}

// AdvanceOrder handles PATCH /api/admin/orders/:id/status.
func (h *AdminHandler) AdvanceOrder(c *gin.Context) {
	principal := CurrentPrincipal(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var req dto.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.AdvanceOrder(c.Request.Context(), principal.Role, orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrValidation), errors.Is(err, domainErrors.ErrInvalidTransition):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}
