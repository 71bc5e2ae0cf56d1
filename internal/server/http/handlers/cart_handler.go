package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/server/http/dto"
	"github.com/anandaputra/tokoku/internal/usecase"
)

// CartHandler manages the stored cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	principal := CurrentPrincipal(c)

	cart, err := h.facade.Cart(c.Request.Context(), principal.UserID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.CartItemRequest, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, dto.CartItemRequest{
			ProductID: item.ProductID.String(),
			Qty:       item.Qty,
			Notes:     item.Notes,
		})
	}

	response := dto.CartResponse{Items: items}
	if cart.StoreID != uuid.Nil {
		response.StoreID = cart.StoreID.String()
	}
	c.JSON(http.StatusOK, response)
}

// Put handles PUT /api/cart.
func (h *CartHandler) Put(c *gin.Context) {
	principal := CurrentPrincipal(c)

	var req dto.CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart := usecase.StoredCart{Items: make([]usecase.CartItem, 0, len(req.Items))}
	if req.StoreID != "" {
		storeID, err := uuid.Parse(req.StoreID)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		cart.StoreID = storeID
	}
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		cart.Items = append(cart.Items, usecase.CartItem{
			ProductID: productID,
			Qty:       item.Qty,
			Notes:     item.Notes,
		})
	}

	if err := h.facade.SaveCart(c.Request.Context(), principal.UserID, cart); err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	}
	c.Status(http.StatusNoContent)
}
