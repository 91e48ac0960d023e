package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/icconsult/customer-service/internal/domain"
)

// ErrCustomerNotFound is returned when no record matches the id.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines persistence access for customer records.
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	// Update persists the mutable fields of customer atomically.
	Update(ctx context.Context, customer *domain.Customer) error
}

// DB is the subset of *pgxpool.Pool used by the Postgres repository.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type customerRepository struct {
	db DB
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(db DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const query = `
        SELECT id, given_name, family_name, email, created_at, updated_at
        FROM customers WHERE id=$1`

	var customer domain.Customer
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.GivenName,
		&customer.FamilyName,
		&customer.Email,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	const query = `
        UPDATE customers SET given_name=$1, family_name=$2, email=$3, updated_at=NOW()
        WHERE id=$4
        RETURNING updated_at`

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			customer.GivenName,
			customer.FamilyName,
			customer.Email,
			customer.ID,
		).Scan(&customer.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCustomerNotFound
		}
		return err
	})
}
