package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/domain/model"
)

// ValidateShippingAddress checks the courier address snapshot is complete.
func ValidateShippingAddress(a *model.Address) error {
	if a == nil {
		return fmt.Errorf("%w: shipping address is required for courier delivery", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: recipient name is required", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(a.Phone) == "" {
		return fmt.Errorf("%w: recipient phone is required", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(a.Address) == "" {
		return fmt.Errorf("%w: address line is required", domainErrors.ErrValidation)
	}
	return nil
}

// ValidateCart rejects empty carts and non-positive quantities.
func ValidateCart(items []CartItem) error {
	if len(items) == 0 {
		return domainErrors.ErrEmptyCart
	}
	for _, item := range items {
		if item.Qty <= 0 {
			return fmt.Errorf("%w: quantity must be positive for product %s", domainErrors.ErrValidation, item.ProductID)
		}
	}
	return nil
}

func validShippingMethod(m model.ShippingMethod) bool {
	return m == model.ShippingCourier || m == model.ShippingPickup
}

func validPaymentMethod(m model.PaymentMethod) bool {
	return m == model.PaymentMethodCOD || m == model.PaymentMethodQRIS
}
