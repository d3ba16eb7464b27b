package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type User struct {
	ID        int64     `json:"id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	UpdatedAt time.Time `json:"updatedAt" validate:"required"`
}

func (u User) EntityID() int64 { return u.ID }

type Category struct {
	ID        int64     `json:"id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	UpdatedAt time.Time `json:"updatedAt" validate:"required"`
}

func (c Category) EntityID() int64 { return c.ID }

type Brand struct {
	ID        int64     `json:"id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	UpdatedAt time.Time `json:"updatedAt" validate:"required"`
}

func (b Brand) EntityID() int64 { return b.ID }

// Product is the catalog entity. Price and DiscountPrice arrive either
// as JSON numbers or as numeric strings; decimal.Decimal accepts both.
// Category and Brand are embedded by value on list responses and may be
// absent; order snapshots carry the ids instead.
type Product struct {
	ID            int64            `json:"id" validate:"required"`
	Name          string           `json:"name" validate:"required"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty"`
	Stock         int              `json:"stock,omitempty"`
	IsActive      bool             `json:"isActive,omitempty"`
	IsFeatured    bool             `json:"isFeatured,omitempty"`
	CategoryID    int64            `json:"category_id,omitempty"`
	BrandID       int64            `json:"brand_id,omitempty"`
	Category      *Category        `json:"category,omitempty"`
	Brand         *Brand           `json:"brand,omitempty"`
	Images        []string         `json:"images,omitempty"`
	CreatedAt     time.Time        `json:"createdAt" validate:"required"`
	UpdatedAt     time.Time        `json:"updatedAt" validate:"required"`
}

func (p Product) EntityID() int64 { return p.ID }

// Order embeds its user and items as read-only denormalized snapshots
// from the server. Date is kept as the raw wire string; see
// report.OrderDate for parsing.
type Order struct {
	ID           int64           `json:"id" validate:"required"`
	Date         string          `json:"date" validate:"required"`
	PaymentImage string          `json:"payment_image,omitempty"`
	Total        decimal.Decimal `json:"total"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Status       OrderStatus     `json:"status" validate:"required,oneof=pending processing confirmed shipped delivered cancelled"`
	UserID       int64           `json:"user_id" validate:"required"`
	User         User            `json:"user"`
	Items        []OrderItem     `json:"orderItems" validate:"dive"`
	CreatedAt    time.Time       `json:"createdAt" validate:"required"`
	UpdatedAt    time.Time       `json:"updatedAt" validate:"required"`
}

func (o Order) EntityID() int64 { return o.ID }

type OrderItem struct {
	ID        int64           `json:"id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Product   Product         `json:"product"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
