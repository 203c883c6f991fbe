// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/platform"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The platform is stored as a denormalized snapshot so historical orders keep
// the branding they were ingested with even if the registry changes.
type OrderDTO struct {
	ID           string     `gorm:"type:varchar(64);primaryKey"`
	Customer     string     `gorm:"type:varchar(255);not null"`
	PlatformKey  string     `gorm:"type:varchar(32);not null"`
	PlatformName string     `gorm:"type:varchar(64);not null"`
	ColorTag     string     `gorm:"type:varchar(32);not null"`
	Total        float64    `gorm:"not null"`
	Status       int        `gorm:"not null;index"`
	CourierID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time  `gorm:"not null;index"`

	// Raw holds the untouched webhook payload for audit; NULL for manual orders.
	Raw *string `gorm:"type:jsonb"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. Lines are immutable after intake;
// SortIndex preserves the payload's original line order.
type OrderItemDTO struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	OrderID   string  `gorm:"type:varchar(64);not null;index"`
	SortIndex int     `gorm:"not null"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Price     float64 `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var raw *string
	if payload := o.Raw(); payload != nil {
		s := string(payload)
		raw = &s
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   o.ID().String(),
			SortIndex: i,
			Name:      item.Name(),
			Price:     item.Price(),
		})
	}

	return OrderDTO{
		ID:           o.ID().String(),
		Customer:     o.Customer(),
		PlatformKey:  o.Platform().Key(),
		PlatformName: o.Platform().DisplayName(),
		ColorTag:     o.Platform().ColorTag(),
		Total:        o.Total(),
		Status:       int(o.Status()),
		CourierID:    courierID,
		CreatedAt:    o.CreatedAt(),
		Raw:          raw,
		Items:        items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and courier assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	p, err := platform.NewPlatform(dto.PlatformKey, dto.PlatformName, dto.ColorTag)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.NewItem(item.Name, item.Price))
	}

	var raw json.RawMessage
	if dto.Raw != nil {
		raw = json.RawMessage(*dto.Raw)
	}

	return order.RestoreOrder(
		id,
		dto.Customer,
		p,
		items,
		dto.Total,
		order.Status(dto.Status),
		courierID,
		dto.CreatedAt,
		raw,
	)
}
