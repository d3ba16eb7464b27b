// Package forms holds the input side of each feature screen: form
// values with the same field constraints the server schemas enforce,
// validated locally before any network call is made.
package forms

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/safar/go-shop-admin/internal/api"
	"github.com/safar/go-shop-admin/internal/models"
)

const (
	maxImages    = 10
	maxImageSize = 5 * 1024 * 1024
)

var imageExtPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)$`)

var (
	ErrTooManyImages    = errors.New("Maximum 10 images allowed")
	ErrInvalidImageType = errors.New("Invalid file type. Only jpg, jpeg, png, gif, webp allowed")
	ErrImageTooLarge    = errors.New("File too large. Maximum 5MB allowed")
)

type UserForm struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Reset fills the form from the target row in edit mode, or with empty
// defaults in create mode.
func (f *UserForm) Reset(u *models.User) {
	if u == nil {
		*f = UserForm{}
		return
	}
	*f = UserForm{Name: u.Name, Email: u.Email}
}

func (f *UserForm) Validate() error { return models.Validate(f) }

type CategoryForm struct {
	Name string `json:"name" validate:"required"`
}

func (f *CategoryForm) Reset(c *models.Category) {
	if c == nil {
		*f = CategoryForm{}
		return
	}
	*f = CategoryForm{Name: c.Name}
}

func (f *CategoryForm) Validate() error { return models.Validate(f) }

type BrandForm struct {
	Name string `json:"name" validate:"required"`
}

func (f *BrandForm) Reset(b *models.Brand) {
	if b == nil {
		*f = BrandForm{}
		return
	}
	*f = BrandForm{Name: b.Name}
}

func (f *BrandForm) Validate() error { return models.Validate(f) }

type ProductForm struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price" validate:"gte=0"`
	DiscountPrice *float64 `json:"discountPrice,omitempty" validate:"omitempty,gte=0"`
	Stock         *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	IsActive      bool     `json:"isActive"`
	IsFeatured    bool     `json:"isFeatured"`
	CategoryID    *int64   `json:"category_id,omitempty"`
	BrandID       *int64   `json:"brand_id,omitempty"`

	images []api.FilePart
}

func (f *ProductForm) Reset(p *models.Product) {
	if p == nil {
		*f = ProductForm{IsActive: true}
		return
	}

	form := ProductForm{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		IsActive:    p.IsActive,
		IsFeatured:  p.IsFeatured,
	}
	if p.DiscountPrice != nil {
		v := p.DiscountPrice.InexactFloat64()
		form.DiscountPrice = &v
	}
	if p.Stock > 0 {
		stock := p.Stock
		form.Stock = &stock
	}
	if p.Category != nil {
		form.CategoryID = &p.Category.ID
	} else if p.CategoryID != 0 {
		form.CategoryID = &p.CategoryID
	}
	if p.Brand != nil {
		form.BrandID = &p.Brand.ID
	} else if p.BrandID != 0 {
		form.BrandID = &p.BrandID
	}
	*f = form
}

func (f *ProductForm) Validate() error { return models.Validate(f) }

// AddImage attaches one binary part after checking type, size, and the
// per-form attachment limit.
func (f *ProductForm) AddImage(filename string, content []byte) error {
	if len(f.images) >= maxImages {
		return ErrTooManyImages
	}
	if !imageExtPattern.MatchString(filename) {
		return ErrInvalidImageType
	}
	if len(content) > maxImageSize {
		return ErrImageTooLarge
	}
	f.images = append(f.images, api.FilePart{
		Field:    "images",
		Filename: filename,
		Content:  content,
	})
	return nil
}

func (f *ProductForm) Images() []api.FilePart { return f.images }

func (f *ProductForm) ClearImages() { f.images = nil }

// Fields projects the scalar values into string-coerced multipart
// parts, skipping unset optional fields.
func (f *ProductForm) Fields() map[string]string {
	fields := map[string]string{
		"name":       f.Name,
		"price":      strconv.FormatFloat(f.Price, 'f', -1, 64),
		"isActive":   strconv.FormatBool(f.IsActive),
		"isFeatured": strconv.FormatBool(f.IsFeatured),
	}
	if f.Description != "" {
		fields["description"] = f.Description
	}
	if f.DiscountPrice != nil {
		fields["discountPrice"] = strconv.FormatFloat(*f.DiscountPrice, 'f', -1, 64)
	}
	if f.Stock != nil {
		fields["stock"] = strconv.Itoa(*f.Stock)
	}
	if f.CategoryID != nil {
		fields["category_id"] = strconv.FormatInt(*f.CategoryID, 10)
	}
	if f.BrandID != nil {
		fields["brand_id"] = strconv.FormatInt(*f.BrandID, 10)
	}
	return fields
}

type StockForm struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

func (f *StockForm) Reset(p *models.Product) {
	if p == nil {
		*f = StockForm{}
		return
	}
	*f = StockForm{Quantity: p.Stock}
}

func (f *StockForm) Validate() error { return models.Validate(f) }

type StatusForm struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=pending processing confirmed shipped delivered cancelled"`
}

func (f *StatusForm) Validate() error { return models.Validate(f) }

// FieldErrors flattens a validation failure into per-field messages
// for inline display. Non-validation errors map to a single form-level
// message.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "email":
		return fmt.Sprintf("%s is invalid.", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s.", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s is invalid.", fe.Field())
}
