package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Stores() StoreRepository
	Products() ProductRepository
	Orders() OrderRepository
	Payments() PaymentRepository
}
