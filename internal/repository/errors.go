// Package repository defines error values that are reused across
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting error text. For example, ErrEmailExists signals that a
// registration hit the unique email index, while ErrProductNotFound
// covers both a missing row and a row owned by a different user so
// that single-item lookups never leak another user's catalog.
package repository

import "errors"

// ErrEmailExists is returned when an INSERT into users violates the
// unique email constraint. Handlers translate this into the 202
// "already exists" response of the registration contract.
var ErrEmailExists = errors.New("email already exists")

// ErrProductNotFound is returned when a product lookup scoped to the
// requesting owner matches no row. Handlers translate this into an
// HTTP 404 response.
var ErrProductNotFound = errors.New("product not found")
