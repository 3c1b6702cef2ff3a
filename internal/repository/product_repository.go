// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for product CRUD. Every query that
// touches a single product is scoped to the owning user: a product that
// exists but belongs to someone else is indistinguishable from a missing
// one, which is what keeps the per-user catalog model airtight.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to compare against sentinel values

	"github.com/iliyamo/product-catalog/internal/model"
)

const productColumns = "id, name, price, brand, description, measurement, image, date_created, date_modified, created_by"

// ProductRepo encapsulates all database queries related to products.  It
// depends on a sql.DB connection which should be configured elsewhere.
type ProductRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewProductRepo constructs a ProductRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.  There is no initialization logic beyond assigning the field.
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create inserts a new product into the database.  On success the product's
// ID field will be populated with the auto‑generated value.  After the
// insert, a SELECT is executed to populate the DateCreated and DateModified
// fields so that callers receive a fully populated record.
func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	const qInsert = `INSERT INTO products
	                 (name, price, brand, description, measurement, image, created_by)
	                 VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		p.Name, p.Price, p.Brand, p.Description, p.Measurement, p.Image, p.CreatedBy)
	if err != nil {
		return err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	// Follow-up SELECT to populate default timestamp fields set by the DB.
	const qSelect = "SELECT date_created, date_modified FROM products WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, p.ID).Scan(&p.DateCreated, &p.DateModified)
}

// GetByIDAndOwner fetches a product by id but only if it belongs to the
// specified owner.  If the product doesn't exist or is owned by someone
// else, ErrProductNotFound is returned.
func (r *ProductRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Product, error) {
	const q = "SELECT " + productColumns + " FROM products WHERE id = ? AND created_by = ?"
	var p model.Product
	err := r.db.QueryRowContext(ctx, q, id, ownerID).Scan(
		&p.ID, &p.Name, &p.Price, &p.Brand, &p.Description,
		&p.Measurement, &p.Image, &p.DateCreated, &p.DateModified, &p.CreatedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListByOwner returns all products created by a specific user ordered by id,
// which matches insertion order and keeps repeated listings stable.
func (r *ProductRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]*model.Product, error) {
	const q = "SELECT " + productColumns + " FROM products WHERE created_by = ? ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Product
	for rows.Next() {
		p := new(model.Product)
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.Brand, &p.Description,
			&p.Measurement, &p.Image, &p.DateCreated, &p.DateModified, &p.CreatedBy); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateName overwrites the product name and bumps date_modified, provided
// the product belongs to the given owner.  It returns ErrProductNotFound
// when no row is affected (not found / not owned).
func (r *ProductRepo) UpdateName(ctx context.Context, id, ownerID uint64, name string) error {
	const q = `UPDATE products
	           SET name = ?, date_modified = CURRENT_TIMESTAMP
	           WHERE id = ? AND created_by = ?`
	res, err := r.db.ExecContext(ctx, q, name, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DeleteByIDAndOwner removes a product if it belongs to the specified owner.
// ErrProductNotFound is returned when nothing was deleted.
func (r *ProductRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	const q = "DELETE FROM products WHERE id = ? AND created_by = ?"
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}
	return nil
}
