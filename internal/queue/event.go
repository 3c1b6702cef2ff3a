// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/iliyamo/product-catalog/internal/model"
)

// Actions carried by a ProductEvent. Deletions publish only the product id
// and owner since the row is already gone.
const (
	ActionCreated = "product.created"
	ActionUpdated = "product.updated"
	ActionDeleted = "product.deleted"
)

// ProductEvent is published whenever a product is created, renamed or
// deleted. It contains enough information for downstream consumers to log,
// index, or trigger analytics without querying the primary database.
type ProductEvent struct {
	Action     string `json:"action"`
	ProductID  uint64 `json:"product_id"`
	Name       string `json:"name,omitempty"`
	Price      string `json:"price,omitempty"`
	Brand      string `json:"brand,omitempty"`
	CreatedBy  uint64 `json:"created_by"`
	OccurredAt string `json:"occurred_at"`
}

// NewProductEvent builds an event from a product snapshot.
func NewProductEvent(action string, p *model.Product) ProductEvent {
	return ProductEvent{
		Action:     action,
		ProductID:  p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Brand:      p.Brand,
		CreatedBy:  p.CreatedBy,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}
