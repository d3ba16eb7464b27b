package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/safar/go-shop-admin/internal/api"
	"github.com/safar/go-shop-admin/internal/forms"
	"github.com/safar/go-shop-admin/internal/models"
	"github.com/safar/go-shop-admin/internal/sync"
)

type Brands struct {
	client   *api.Client
	ctrl     *sync.Controller[models.Brand]
	notifier sync.Notifier
}

func NewBrands(client *api.Client, notifier sync.Notifier) *Brands {
	if notifier == nil {
		notifier = sync.NopNotifier{}
	}
	return &Brands{
		client:   client,
		ctrl:     sync.NewController[models.Brand](notifier, models.Validate),
		notifier: notifier,
	}
}

func (s *Brands) Items() []models.Brand { return s.ctrl.Items() }

func (s *Brands) State() sync.State { return s.ctrl.State() }

func (s *Brands) Load(ctx context.Context) error {
	return s.ctrl.Load(ctx, func(ctx context.Context) ([]models.Brand, error) {
		raw, err := s.client.Call(ctx, "get", "brands", nil)
		if err != nil {
			return nil, fmt.Errorf("list brands: %w", err)
		}
		return models.DecodeList[models.Brand](raw)
	})
}

func (s *Brands) Create(ctx context.Context, form *forms.BrandForm) (*models.Brand, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	brand, err := s.ctrl.Create(ctx, func(ctx context.Context) (models.Brand, error) {
		raw, err := s.client.Call(ctx, "post", "brands", form)
		if err != nil {
			return models.Brand{}, fmt.Errorf("create brand: %w", err)
		}
		return models.Decode[models.Brand](raw)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Success("Successfully Created")
	return &brand, nil
}

func (s *Brands) Update(ctx context.Context, id int64, form *forms.BrandForm) (*models.Brand, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.ctrl.Find(id); !ok {
		return nil, api.ErrBrandNotFound
	}

	brand, err := s.ctrl.Update(ctx, id, func(ctx context.Context) (json.RawMessage, error) {
		raw, err := s.client.Call(ctx, "patch", fmt.Sprintf("brands/%d", id), form)
		if err != nil {
			return nil, fmt.Errorf("update brand: %w", err)
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Success("Successfully Updated")
	return &brand, nil
}

func (s *Brands) Delete(ctx context.Context, id int64) error {
	if _, ok := s.ctrl.Find(id); !ok {
		return api.ErrBrandNotFound
	}

	err := s.ctrl.Delete(ctx, id, func(ctx context.Context) error {
		if _, err := s.client.Call(ctx, "delete", fmt.Sprintf("brands/%d", id), nil); err != nil {
			return fmt.Errorf("delete brand: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Success("Successfully Deleted")
	return nil
}
