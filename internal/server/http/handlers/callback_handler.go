package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/server/http/dto"
	"github.com/anandaputra/tokoku/internal/usecase"
)

// CallbackHandler receives payment notifications from the processor. It is
// the only unauthenticated mutating endpoint; the signature is the auth.
type CallbackHandler struct {
	facade PaymentFacade
}

// NewCallbackHandler constructs CallbackHandler.
func NewCallbackHandler(facade PaymentFacade) *CallbackHandler {
	return &CallbackHandler{facade: facade}
}

// Handle processes POST /api/payments/callback. The processor posts
// form-encoded bodies; JSON is accepted for manual testing.
func (h *CallbackHandler) Handle(c *gin.Context) {
	var req dto.CallbackRequest
	if strings.Contains(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	} else {
		if err := c.ShouldBind(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	outcome, err := h.facade.HandleCallback(c.Request.Context(), usecase.CallbackData{
		MerchantCode:    req.MerchantCode,
		MerchantOrderID: req.MerchantOrderID,
		Reference:       req.Reference,
		Amount:          req.Amount,
		Signature:       req.Signature,
		ResultCode:      req.ResultCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidSignature):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.CallbackResponse{Status: string(outcome)})
}
