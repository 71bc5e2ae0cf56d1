package cache

import "time"

const (
	// Session cart per customer: cart:{user_id} -> cart JSON.
	keyCart = "cart:%s"

	// Poller short-circuit: paystatus:{order_id} -> status response JSON.
	keyPaymentStatus = "paystatus:%s"
)

var (
	// Carts survive a browsing session but not forever.
	ttlCart = 7 * 24 * time.Hour

	// Short enough that a stale entry cannot outlive one polling tick.
	ttlPaymentStatus = 3 * time.Second
)
