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

type Categories struct {
	client   *api.Client
	ctrl     *sync.Controller[models.Category]
	notifier sync.Notifier
}

func NewCategories(client *api.Client, notifier sync.Notifier) *Categories {
	if notifier == nil {
		notifier = sync.NopNotifier{}
	}
	return &Categories{
		client:   client,
		ctrl:     sync.NewController[models.Category](notifier, models.Validate),
		notifier: notifier,
	}
}

func (s *Categories) Items() []models.Category { return s.ctrl.Items() }

func (s *Categories) State() sync.State { return s.ctrl.State() }

func (s *Categories) Load(ctx context.Context) error {
	return s.ctrl.Load(ctx, func(ctx context.Context) ([]models.Category, error) {
		raw, err := s.client.Call(ctx, "get", "categories", nil)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		return models.DecodeList[models.Category](raw)
	})
}

func (s *Categories) Create(ctx context.Context, form *forms.CategoryForm) (*models.Category, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	category, err := s.ctrl.Create(ctx, func(ctx context.Context) (models.Category, error) {
		raw, err := s.client.Call(ctx, "post", "categories", form)
		if err != nil {
			return models.Category{}, fmt.Errorf("create category: %w", err)
		}
		return models.Decode[models.Category](raw)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Success("Successfully Created")
	return &category, nil
}

func (s *Categories) Update(ctx context.Context, id int64, form *forms.CategoryForm) (*models.Category, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.ctrl.Find(id); !ok {
		return nil, api.ErrCategoryNotFound
	}

	category, err := s.ctrl.Update(ctx, id, func(ctx context.Context) (json.RawMessage, error) {
		raw, err := s.client.Call(ctx, "patch", fmt.Sprintf("categories/%d", id), form)
		if err != nil {
			return nil, fmt.Errorf("update category: %w", err)
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Success("Successfully Updated")
	return &category, nil
}

func (s *Categories) Delete(ctx context.Context, id int64) error {
	if _, ok := s.ctrl.Find(id); !ok {
		return api.ErrCategoryNotFound
	}

	err := s.ctrl.Delete(ctx, id, func(ctx context.Context) error {
		if _, err := s.client.Call(ctx, "delete", fmt.Sprintf("categories/%d", id), nil); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Success("Successfully Deleted")
	return nil
}
