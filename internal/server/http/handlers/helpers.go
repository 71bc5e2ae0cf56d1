package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/anandaputra/tokoku/internal/domain/model"
	pkgAuth "github.com/anandaputra/tokoku/internal/pkg/auth"
	"github.com/anandaputra/tokoku/internal/server/http/dto"
	"github.com/anandaputra/tokoku/internal/server/http/middleware"
	"github.com/anandaputra/tokoku/internal/usecase"
)

// CurrentPrincipal extracts the authenticated principal from context.
func CurrentPrincipal(c *gin.Context) pkgAuth.Principal {
	val, ok := c.Get(middleware.PrincipalContextKey)
	if !ok {
		return pkgAuth.Principal{}
	}
	principal, _ := val.(pkgAuth.Principal)
	return principal
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Price:     item.Price,
			Qty:       item.Qty,
			Notes:     item.Notes,
			Subtotal:  item.Subtotal,
		})
	}

	var address *dto.AddressRequest
	if order.Address != nil {
		address = &dto.AddressRequest{
			Name:    order.Address.Name,
			Phone:   order.Address.Phone,
			Address: order.Address.Address,
		}
	}

	return dto.OrderResponse{
		ID:            order.ID.String(),
		OrderCode:     order.OrderCode,
		StoreID:       order.StoreID.String(),
		Items:         items,
		Subtotal:      order.Subtotal,
		ShippingFee:   order.ShippingFee,
		Total:         order.Total,
		Shipping:      string(order.Shipping),
		PaymentMethod: string(order.PaymentMethod),
		PaymentStatus: string(order.PaymentState),
		Status:        string(order.Status),
		Address:       address,
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt,
	}
}

func toPaymentResponse(payment *model.Payment, reused bool) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:         payment.ID.String(),
		OrderID:    payment.OrderID.String(),
		Provider:   payment.Provider,
		Reference:  payment.Reference,
		PaymentURL: payment.QRISURL,
		QRString:   payment.QRString,
		Amount:     payment.Amount,
		Status:     string(payment.Status),
		Reused:     reused,
		ExpiredAt:  payment.ExpiredAt,
	}
}

func toIssuedPaymentResponse(issued *usecase.IssuedInvoice) *dto.PaymentResponse {
	if issued == nil {
		return nil
	}
	return toPaymentResponse(issued.Payment, issued.Reused)
}
