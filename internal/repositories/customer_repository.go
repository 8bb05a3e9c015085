package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"toolrental-backend/internal/models"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO customers (name, zipcode, city, address, email, id_number, comment)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		customer.Name, customer.Zipcode, customer.City, customer.Address,
		customer.Email, customer.IDNumber, customer.Comment,
	).Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Get(ctx context.Context, id int) (*models.Customer, error) {
	var c models.Customer
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, zipcode, city, address, email, id_number, COALESCE(comment, '')
		 FROM customers WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Zipcode, &c.City, &c.Address, &c.Email, &c.IDNumber, &c.Comment)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, zipcode, city, address, email, id_number, COALESCE(comment, '')
		 FROM customers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Zipcode, &c.City, &c.Address,
			&c.Email, &c.IDNumber, &c.Comment); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

// Search matches name, email, city or address, case-insensitively
func (r *CustomerRepository) Search(ctx context.Context, term string) ([]*models.Customer, error) {
	pattern := "%" + term + "%"
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, zipcode, city, address, email, id_number, COALESCE(comment, '')
		 FROM customers
		 WHERE name ILIKE $1 OR email ILIKE $1 OR city ILIKE $1 OR address ILIKE $1
		 ORDER BY name`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Zipcode, &c.City, &c.Address,
			&c.Email, &c.IDNumber, &c.Comment); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE customers
		 SET name = $1, zipcode = $2, city = $3, address = $4, email = $5, id_number = $6, comment = $7
		 WHERE id = $8`,
		customer.Name, customer.Zipcode, customer.City, customer.Address,
		customer.Email, customer.IDNumber, customer.Comment, customer.ID)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %d not found", customer.ID)
	}
	return nil
}

// HasRentals reports whether any rental references the customer
func (r *CustomerRepository) HasRentals(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM rentals WHERE customer_id = $1)", id).Scan(&exists)
	return exists, err
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %d not found", id)
	}
	return nil
}
