package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/arimendoza/coffeehaus-backend/pkg/types"
)

// Cart is the per-owner cart document. One row per owner email; the line items
// live in a single jsonb column so the whole cart is replaced atomically on
// every write (last-writer-wins, no cross-row coordination).
type Cart struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerEmail string          `gorm:"column:owner_email;type:text;not null;uniqueIndex"`
	Items      types.LineItems `gorm:"column:items;type:jsonb;serializer:json;not null"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
