package model

import "testing"

func TestCanonicalOrderStatus(t *testing.T) {
	tests := []struct {
		in   string
		want OrderStatus
		ok   bool
	}{
		{"NEW", OrderStatusNew, true},
		{"CONFIRMED", OrderStatusConfirmed, true},
		{"PROCESSING", OrderStatusProcessing, true},
		{"OUT_FOR_DELIVERY", OrderStatusOutForDelivery, true},
		{"READY_FOR_PICKUP", OrderStatusReadyForPickup, true},
		{"COMPLETED", OrderStatusCompleted, true},
		{"CANCELED", OrderStatusCanceled, true},
		{"PAID", OrderStatusConfirmed, true},
		{"CANCELLED", OrderStatusCanceled, true},
		{"SHIPPED", "", false},
		{"", "", false},
		{"new", "", false},
	}

	for _, tc := range tests {
		got, ok := CanonicalOrderStatus(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("CanonicalOrderStatus(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCanTransitionOrder(t *testing.T) {
	tests := []struct {
		name     string
		current  OrderStatus
		next     OrderStatus
		shipping ShippingMethod
		want     bool
	}{
		{"new to confirmed", OrderStatusNew, OrderStatusConfirmed, ShippingCourier, true},
		{"new to canceled", OrderStatusNew, OrderStatusCanceled, ShippingCourier, true},
		{"new skips to completed", OrderStatusNew, OrderStatusCompleted, ShippingCourier, false},
		{"new skips to processing", OrderStatusNew, OrderStatusProcessing, ShippingCourier, false},
		{"confirmed to processing", OrderStatusConfirmed, OrderStatusProcessing, ShippingCourier, true},
		{"processing to delivery for courier", OrderStatusProcessing, OrderStatusOutForDelivery, ShippingCourier, true},
		{"processing to pickup for courier", OrderStatusProcessing, OrderStatusReadyForPickup, ShippingCourier, false},
		{"processing to pickup for pickup", OrderStatusProcessing, OrderStatusReadyForPickup, ShippingPickup, true},
		{"processing to delivery for pickup", OrderStatusProcessing, OrderStatusOutForDelivery, ShippingPickup, false},
		{"delivery to completed", OrderStatusOutForDelivery, OrderStatusCompleted, ShippingCourier, true},
		{"pickup to completed", OrderStatusReadyForPickup, OrderStatusCompleted, ShippingPickup, true},
		{"completed is terminal", OrderStatusCompleted, OrderStatusCanceled, ShippingCourier, false},
		{"canceled is terminal", OrderStatusCanceled, OrderStatusNew, ShippingCourier, false},
		{"backwards is illegal", OrderStatusProcessing, OrderStatusConfirmed, ShippingCourier, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransitionOrder(tc.current, tc.next, tc.shipping); got != tc.want {
				t.Errorf("CanTransitionOrder(%v, %v, %v) = %v; want %v", tc.current, tc.next, tc.shipping, got, tc.want)
			}
		})
	}
}

func TestNextOrderStatusesAlwaysAllowCancel(t *testing.T) {
	active := []OrderStatus{
		OrderStatusNew, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusOutForDelivery, OrderStatusReadyForPickup,
	}
	for _, status := range active {
		if !CanTransitionOrder(status, OrderStatusCanceled, ShippingCourier) {
			t.Errorf("expected %v to allow cancellation", status)
		}
	}
}
