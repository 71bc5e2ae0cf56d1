package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/server/http/dto"
)

// PaymentHandler manages invoice issuing and status polling.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// CreateInvoice handles POST /api/orders/:id/invoice.
func (h *PaymentHandler) CreateInvoice(c *gin.Context) {
	principal := CurrentPrincipal(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	issued, err := h.facade.CreateInvoice(c.Request.Context(), orderID, principal.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrExternalService):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	status := http.StatusCreated
	if issued.Reused {
		status = http.StatusOK
	}
	c.JSON(status, toIssuedPaymentResponse(issued))
}

// Status handles GET /api/orders/:id/payment.
func (h *PaymentHandler) Status(c *gin.Context) {
	principal := CurrentPrincipal(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	view, err := h.facade.PaymentStatus(c.Request.Context(), orderID, principal.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentStatusResponse{
		Order:   toOrderResponse(*view.Order),
		Payment: toPaymentResponse(view.Payment, false),
	})
}
