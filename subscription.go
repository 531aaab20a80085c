package rxlite

// Subscription is the caller's handle on one live subscription.
type Subscription interface {
	// Unsubscribe cancels delivery and releases the producer's resources.
	// It is idempotent.
	Unsubscribe()
	// IsUnsubscribed returns true once the subscription has terminated,
	// whether by Unsubscribe or by a terminal Error/Complete.
	IsUnsubscribed() bool
}
