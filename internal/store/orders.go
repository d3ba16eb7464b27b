package store

import (
	"context"
	"fmt"

	"github.com/safar/go-shop-admin/internal/api"
	"github.com/safar/go-shop-admin/internal/forms"
	"github.com/safar/go-shop-admin/internal/models"
	"github.com/safar/go-shop-admin/internal/sync"
)

type Orders struct {
	client   *api.Client
	ctrl     *sync.Controller[models.Order]
	notifier sync.Notifier
}

func NewOrders(client *api.Client, notifier sync.Notifier) *Orders {
	if notifier == nil {
		notifier = sync.NopNotifier{}
	}
	return &Orders{
		client:   client,
		ctrl:     sync.NewController[models.Order](notifier, models.Validate),
		notifier: notifier,
	}
}

func (s *Orders) Items() []models.Order { return s.ctrl.Items() }

func (s *Orders) State() sync.State { return s.ctrl.State() }

func (s *Orders) Find(id int64) (models.Order, bool) { return s.ctrl.Find(id) }

func (s *Orders) Load(ctx context.Context) error {
	return s.ctrl.Load(ctx, func(ctx context.Context) ([]models.Order, error) {
		raw, err := s.client.Call(ctx, "get", "orders", nil)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		return models.DecodeList[models.Order](raw)
	})
}

// UpdateStatus patches the status sub-resource. The server confirms
// without returning the order, so the element is reconciled locally.
func (s *Orders) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	form := forms.StatusForm{Status: status}
	if err := form.Validate(); err != nil {
		return err
	}
	if _, ok := s.ctrl.Find(id); !ok {
		return api.ErrOrderNotFound
	}

	if _, err := s.client.Call(ctx, "patch", fmt.Sprintf("orders/%d/status", id), form); err != nil {
		s.notifier.Error("Failed to update status")
		return fmt.Errorf("update order status: %w", err)
	}

	s.ctrl.Reconcile(id, func(o models.Order) models.Order {
		o.Status = status
		return o
	})

	s.notifier.Success("Status updated successfully")
	return nil
}
