package model

import "time"

// Product represents a row in the `products` table. Every product
// belongs to exactly one user via CreatedBy; handlers only ever
// surface products whose CreatedBy matches the authenticated user.
// All descriptive fields are opaque strings as far as the API is
// concerned. The JSON tags define the wire names returned to
// clients, so repositories can hand the struct straight to c.JSON.
//
// Fields:
//  ID           – primary key identifier, assigned by the database.
//  Name         – product name.
//  Price        – price as an opaque string (no numeric semantics).
//  Brand        – brand name.
//  Description  – free-form description.
//  Measurement  – unit or size description.
//  Image        – image URL.
//  DateCreated  – set once when the row is inserted.
//  DateModified – bumped on every mutation.
//  CreatedBy    – owning user's id (users.id).
type Product struct {
	ID           uint64    `json:"id"`            // products.id
	Name         string    `json:"name"`          // products.name
	Price        string    `json:"price"`         // products.price
	Brand        string    `json:"brand"`         // products.brand
	Description  string    `json:"description"`   // products.description
	Measurement  string    `json:"measurement"`   // products.measurement
	Image        string    `json:"image"`         // products.image
	DateCreated  time.Time `json:"date_created"`  // products.date_created
	DateModified time.Time `json:"date_modified"` // products.date_modified
	CreatedBy    uint64    `json:"created_by"`    // products.created_by
}
