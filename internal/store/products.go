package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/safar/go-shop-admin/internal/api"
	"github.com/safar/go-shop-admin/internal/forms"
	"github.com/safar/go-shop-admin/internal/models"
	"github.com/safar/go-shop-admin/internal/sync"
)

// Products binds the product catalog to the transport client. Product
// mutations carry image attachments, so creates are always multipart
// and updates switch to multipart when new images are attached.
type Products struct {
	client   *api.Client
	ctrl     *sync.Controller[models.Product]
	notifier sync.Notifier
}

func NewProducts(client *api.Client, notifier sync.Notifier) *Products {
	if notifier == nil {
		notifier = sync.NopNotifier{}
	}
	return &Products{
		client:   client,
		ctrl:     sync.NewController[models.Product](notifier, models.Validate),
		notifier: notifier,
	}
}

func (s *Products) Items() []models.Product { return s.ctrl.Items() }

func (s *Products) State() sync.State { return s.ctrl.State() }

func (s *Products) Find(id int64) (models.Product, bool) { return s.ctrl.Find(id) }

func (s *Products) Load(ctx context.Context) error {
	return s.ctrl.Load(ctx, func(ctx context.Context) ([]models.Product, error) {
		raw, err := s.client.Call(ctx, "get", "products", nil)
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		return decodeProductList(raw)
	})
}

func (s *Products) Create(ctx context.Context, form *forms.ProductForm) (*models.Product, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	product, err := s.ctrl.Create(ctx, func(ctx context.Context) (models.Product, error) {
		raw, err := s.client.CallMultipart(ctx, "post", "products", form.Fields(), form.Images())
		if err != nil {
			return models.Product{}, fmt.Errorf("create product: %w", err)
		}
		return models.Decode[models.Product](raw)
	})
	if err != nil {
		return nil, err
	}

	form.ClearImages()
	s.notifier.Success("Successfully Created")
	return &product, nil
}

func (s *Products) Update(ctx context.Context, id int64, form *forms.ProductForm) (*models.Product, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.ctrl.Find(id); !ok {
		return nil, api.ErrProductNotFound
	}

	product, err := s.ctrl.Update(ctx, id, func(ctx context.Context) (json.RawMessage, error) {
		path := fmt.Sprintf("products/%d", id)

		// JSON when the update carries no new images, multipart
		// otherwise. Merge semantics are identical either way.
		if len(form.Images()) == 0 {
			raw, err := s.client.Call(ctx, "patch", path, form)
			if err != nil {
				return nil, fmt.Errorf("update product: %w", err)
			}
			return raw, nil
		}

		raw, err := s.client.CallMultipart(ctx, "patch", path, form.Fields(), form.Images())
		if err != nil {
			return nil, fmt.Errorf("update product: %w", err)
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}

	form.ClearImages()
	s.notifier.Success("Successfully Updated")
	return &product, nil
}

func (s *Products) Delete(ctx context.Context, id int64) error {
	if _, ok := s.ctrl.Find(id); !ok {
		return api.ErrProductNotFound
	}

	err := s.ctrl.Delete(ctx, id, func(ctx context.Context) error {
		if _, err := s.client.Call(ctx, "delete", fmt.Sprintf("products/%d", id), nil); err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Success("Successfully Deleted")
	return nil
}

// UpdateStock patches only the stock sub-resource; the response merges
// over the prior element like any other update.
func (s *Products) UpdateStock(ctx context.Context, id int64, form *forms.StockForm) (*models.Product, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.ctrl.Find(id); !ok {
		return nil, api.ErrProductNotFound
	}

	product, err := s.ctrl.Update(ctx, id, func(ctx context.Context) (json.RawMessage, error) {
		raw, err := s.client.Call(ctx, "patch", fmt.Sprintf("products/%d/stock", id), form)
		if err != nil {
			return nil, fmt.Errorf("update stock: %w", err)
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Success("Stock Updated Successfully")
	return &product, nil
}

// DeleteImage removes one image from a product's image array by index.
// The server confirms without returning the entity, so the element is
// reconciled locally.
func (s *Products) DeleteImage(ctx context.Context, id int64, index int) error {
	if _, ok := s.ctrl.Find(id); !ok {
		return api.ErrProductNotFound
	}

	if _, err := s.client.Call(ctx, "delete", fmt.Sprintf("products/%d/image/%d", id, index), nil); err != nil {
		s.notifier.Error(api.Reason(err))
		return fmt.Errorf("delete product image: %w", err)
	}

	s.ctrl.Reconcile(id, func(p models.Product) models.Product {
		if index >= 0 && index < len(p.Images) {
			p.Images = slices.Delete(slices.Clone(p.Images), index, index+1)
		}
		return p
	})

	s.notifier.Success("Image Removed")
	return nil
}
