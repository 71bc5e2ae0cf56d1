package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/domain/model"
	"github.com/anandaputra/tokoku/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage layer depends on.
// Tests substitute a mock through this seam.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type storeRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type paymentRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Stores() repository.StoreRepository {
	return &storeRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'CUSTOMER',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS stores (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            name TEXT NOT NULL,
            slug TEXT UNIQUE NOT NULL,
            shipping_fee_flat BIGINT NOT NULL DEFAULT 10000,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            store_id UUID NOT NULL REFERENCES stores(id),
            name TEXT NOT NULL,
            price BIGINT NOT NULL,
            stock INTEGER NOT NULL DEFAULT 0,
            sold_count INTEGER NOT NULL DEFAULT 0,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            store_id UUID NOT NULL REFERENCES stores(id),
            customer_id UUID NOT NULL REFERENCES users(id),
            order_code TEXT UNIQUE NOT NULL,
            items JSONB NOT NULL,
            subtotal BIGINT NOT NULL,
            shipping_fee BIGINT NOT NULL,
            total BIGINT NOT NULL,
            shipping_method TEXT NOT NULL,
            payment_method TEXT NOT NULL,
            payment_status TEXT NOT NULL DEFAULT 'UNPAID',
            order_status TEXT NOT NULL DEFAULT 'NEW',
            sold_counted BOOLEAN NOT NULL DEFAULT FALSE,
            customer_address JSONB,
            notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            order_id UUID NOT NULL REFERENCES orders(id),
            store_id UUID NOT NULL REFERENCES stores(id),
            provider TEXT NOT NULL,
            reference TEXT NOT NULL DEFAULT '',
            invoice_id TEXT NOT NULL DEFAULT '',
            qr_string TEXT NOT NULL DEFAULT '',
            qris_url TEXT NOT NULL DEFAULT '',
            amount BIGINT NOT NULL,
            status TEXT NOT NULL DEFAULT 'PENDING',
            expired_at TIMESTAMPTZ NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE SEQUENCE IF NOT EXISTS order_code_seq`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_payments_pending ON payments(order_id) WHERE status = 'PENDING'`,
		`CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_external ON payments(reference, invoice_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- StoreRepository implementation ---

func (r *storeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Store, error) {
	const query = `SELECT id, name, slug, shipping_fee_flat, is_active, created_at FROM stores WHERE id=$1`
	var s model.Store
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Slug, &s.ShippingFeeFlat, &s.IsActive, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) GetForStore(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]model.Product, error) {
	const query = `SELECT id, store_id, name, price, stock, sold_count, is_active, created_at
                   FROM products WHERE store_id=$1 AND is_active AND id = ANY($2::uuid[])`
	rows, err := r.storage.pool.Query(ctx, query, storeID, uuidStrings(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uuid.UUID]model.Product, len(ids))
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.StoreID, &p.Name, &p.Price, &p.Stock, &p.SoldCount, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		result[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) DecrementStock(ctx context.Context, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	ids, qtys := itemArrays(items)
	const query = `UPDATE products p
                   SET stock = GREATEST(p.stock - x.qty, 0)
                   FROM (SELECT unnest($1::uuid[]) AS id, unnest($2::int[]) AS qty) x
                   WHERE p.id = x.id`
	_, err := r.storage.pool.Exec(ctx, query, ids, qtys)
	return err
}

// --- OrderRepository implementation ---

const orderColumns = `id, store_id, customer_id, order_code, items, subtotal, shipping_fee, total,
                      shipping_method, payment_method, payment_status, order_status, sold_counted,
                      customer_address, notes, created_at`

func (r *orderRepository) Create(ctx context.Context, o repository.NewOrder) (*model.Order, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}

	var addressJSON []byte
	if o.Address != nil {
		if addressJSON, err = json.Marshal(o.Address); err != nil {
			return nil, err
		}
	}

	// The order code comes from a sequence so concurrent checkouts can never
	// collide.
	const query = `INSERT INTO orders (store_id, customer_id, order_code, items, subtotal, shipping_fee,
                       total, shipping_method, payment_method, customer_address, notes)
                   VALUES ($1, $2,
                       'ORD-' || to_char(now(), 'YYYYMMDD') || '-' || lpad(nextval('order_code_seq')::text, 4, '0'),
                       $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING id, order_code, created_at`

	order := model.Order{
		StoreID:       o.StoreID,
		CustomerID:    o.CustomerID,
		Items:         o.Items,
		Subtotal:      o.Subtotal,
		ShippingFee:   o.ShippingFee,
		Total:         o.Total,
		Shipping:      o.Shipping,
		PaymentMethod: o.PaymentMethod,
		PaymentState:  model.PaymentStateUnpaid,
		Status:        model.OrderStatusNew,
		Address:       o.Address,
		Notes:         o.Notes,
	}
	err = r.storage.pool.QueryRow(ctx, query,
		o.StoreID, o.CustomerID, itemsJSON, o.Subtotal, o.ShippingFee, o.Total,
		o.Shipping, o.PaymentMethod, addressJSON, o.Notes,
	).Scan(&order.ID, &order.OrderCode, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return r.scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) GetOwned(ctx context.Context, id, customerID uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND customer_id=$2`
	return r.scanOrder(r.storage.pool.QueryRow(ctx, query, id, customerID))
}

func (r *orderRepository) scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o           model.Order
		itemsJSON   []byte
		addressJSON []byte
	)
	err := row.Scan(&o.ID, &o.StoreID, &o.CustomerID, &o.OrderCode, &itemsJSON, &o.Subtotal,
		&o.ShippingFee, &o.Total, &o.Shipping, &o.PaymentMethod, &o.PaymentState, &o.Status,
		&o.SoldCounted, &addressJSON, &o.Notes, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	if len(addressJSON) > 0 {
		o.Address = &model.Address{}
		if err := json.Unmarshal(addressJSON, o.Address); err != nil {
			return nil, fmt.Errorf("decode order address: %w", err)
		}
	}
	return &o, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) SetPaymentState(ctx context.Context, id uuid.UUID, state model.PaymentState, status model.OrderStatus) error {
	if status != "" {
		const query = `UPDATE orders SET payment_status=$1, order_status=$2 WHERE id=$3`
		_, err := r.storage.pool.Exec(ctx, query, state, status, id)
		return err
	}
	const query = `UPDATE orders SET payment_status=$1 WHERE id=$2`
	_, err := r.storage.pool.Exec(ctx, query, state, id)
	return err
}

func (r *orderRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	const query = `UPDATE orders SET order_status=$1 WHERE id=$2`
	_, err := r.storage.pool.Exec(ctx, query, status, id)
	return err
}

func (r *orderRepository) RecordSale(ctx context.Context, id uuid.UUID) (bool, error) {
	var counted bool
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// The conditional flip decides exactly one winner; the increments
		// ride in the same transaction so a partial failure rolls both back.
		tag, err := tx.Exec(ctx, `UPDATE orders SET sold_counted=TRUE WHERE id=$1 AND sold_counted=FALSE`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		var itemsJSON []byte
		if err := tx.QueryRow(ctx, `SELECT items FROM orders WHERE id=$1`, id).Scan(&itemsJSON); err != nil {
			return err
		}
		var items []model.OrderItem
		if err := json.Unmarshal(itemsJSON, &items); err != nil {
			return fmt.Errorf("decode order items: %w", err)
		}

		if len(items) > 0 {
			ids, qtys := itemArrays(items)
			const query = `UPDATE products p
                           SET sold_count = p.sold_count + x.qty
                           FROM (SELECT unnest($1::uuid[]) AS id, unnest($2::int[]) AS qty) x
                           WHERE p.id = x.id`
			if _, err := tx.Exec(ctx, query, ids, qtys); err != nil {
				return err
			}
		}

		counted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return counted, nil
}

// --- PaymentRepository implementation ---

const paymentColumns = `id, order_id, store_id, provider, reference, invoice_id, qr_string, qris_url,
                        amount, status, expired_at, created_at`

func (r *paymentRepository) Create(ctx context.Context, p repository.NewPayment) (*model.Payment, bool, error) {
	// The partial unique index keeps at most one PENDING row per order; a
	// concurrent loser observes the conflict instead of inserting a duplicate.
	const query = `INSERT INTO payments (order_id, store_id, provider, reference, invoice_id, qr_string,
                       qris_url, amount, expired_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   ON CONFLICT (order_id) WHERE status = 'PENDING' DO NOTHING
                   RETURNING id, created_at`

	payment := model.Payment{
		OrderID:   p.OrderID,
		StoreID:   p.StoreID,
		Provider:  p.Provider,
		Reference: p.Reference,
		InvoiceID: p.InvoiceID,
		QRString:  p.QRString,
		QRISURL:   p.QRISURL,
		Amount:    p.Amount,
		Status:    model.PaymentStatusPending,
		ExpiredAt: p.ExpiredAt,
	}
	err := r.storage.pool.QueryRow(ctx, query,
		p.OrderID, p.StoreID, p.Provider, p.Reference, p.InvoiceID, p.QRString, p.QRISURL, p.Amount, p.ExpiredAt,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			existing, err := r.getPending(ctx, p.OrderID)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return &payment, true, nil
}

func (r *paymentRepository) getPending(ctx context.Context, orderID uuid.UUID) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
              WHERE order_id=$1 AND status='PENDING'
              ORDER BY created_at DESC LIMIT 1`
	return r.scanPayment(r.storage.pool.QueryRow(ctx, query, orderID))
}

func (r *paymentRepository) GetActive(ctx context.Context, orderID uuid.UUID, now time.Time) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
              WHERE order_id=$1 AND status='PENDING' AND expired_at > $2
              ORDER BY created_at DESC LIMIT 1`
	return r.scanPayment(r.storage.pool.QueryRow(ctx, query, orderID, now))
}

func (r *paymentRepository) GetLatest(ctx context.Context, orderID uuid.UUID) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
              WHERE order_id=$1 ORDER BY created_at DESC LIMIT 1`
	return r.scanPayment(r.storage.pool.QueryRow(ctx, query, orderID))
}

func (r *paymentRepository) FindByExternalRef(ctx context.Context, reference, invoiceID string) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
              WHERE reference=$1 OR invoice_id=$2
              ORDER BY created_at DESC LIMIT 1`
	return r.scanPayment(r.storage.pool.QueryRow(ctx, query, reference, invoiceID))
}

func (r *paymentRepository) scanPayment(row pgx.Row) (*model.Payment, error) {
	var p model.Payment
	err := row.Scan(&p.ID, &p.OrderID, &p.StoreID, &p.Provider, &p.Reference, &p.InvoiceID,
		&p.QRString, &p.QRISURL, &p.Amount, &p.Status, &p.ExpiredAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) Settle(ctx context.Context, paymentID, orderID uuid.UUID, status model.PaymentStatus, state model.PaymentState, orderStatus model.OrderStatus) (bool, error) {
	var settled bool
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// SUCCESS is terminal; the condition makes the transition idempotent
		// under duplicate callback delivery. The order update rides in the
		// same transaction so the pair commits or rolls back together.
		tag, err := tx.Exec(ctx,
			`UPDATE payments SET status=$1 WHERE id=$2 AND status <> 'SUCCESS' AND status <> $1`,
			status, paymentID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		if orderStatus != "" {
			_, err = tx.Exec(ctx, `UPDATE orders SET payment_status=$1, order_status=$2 WHERE id=$3`, state, orderStatus, orderID)
		} else {
			_, err = tx.Exec(ctx, `UPDATE orders SET payment_status=$1 WHERE id=$2`, state, orderID)
		}
		if err != nil {
			return err
		}

		settled = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return settled, nil
}

func (r *paymentRepository) Reset(ctx context.Context, id uuid.UUID, expiredAt time.Time) error {
	const query = `UPDATE payments SET status='PENDING', expired_at=$1 WHERE id=$2`
	_, err := r.storage.pool.Exec(ctx, query, expiredAt, id)
	return err
}

func (r *paymentRepository) ExpireOverdue(ctx context.Context, orderID uuid.UUID, now time.Time) (int64, error) {
	const query = `UPDATE payments SET status='EXPIRED'
                   WHERE order_id=$1 AND status='PENDING' AND expired_at <= $2`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *paymentRepository) SelectOverdueBatch(ctx context.Context, now time.Time, limit int) ([]model.Payment, error) {
	selectQuery := `SELECT ` + paymentColumns + ` FROM payments
                    WHERE status='PENDING' AND expired_at <= $1
                    ORDER BY expired_at
                    LIMIT $2
                    FOR UPDATE SKIP LOCKED`

	var payments []model.Payment
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, now, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			p, err := r.scanPayment(rows)
			if err != nil {
				return err
			}
			payments = append(payments, *p)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		for i := range payments {
			if _, err := tx.Exec(ctx, `UPDATE payments SET status='EXPIRED' WHERE id=$1`, payments[i].ID); err != nil {
				return err
			}
			payments[i].Status = model.PaymentStatusExpired
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func itemArrays(items []model.OrderItem) ([]string, []int32) {
	ids := make([]string, 0, len(items))
	qtys := make([]int32, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID.String())
		qtys = append(qtys, int32(item.Qty))
	}
	return ids, qtys
}
