package store

import (
	"context"
	"fmt"

	"github.com/safar/go-shop-admin/internal/api"
	"github.com/safar/go-shop-admin/internal/models"
	"github.com/safar/go-shop-admin/internal/sync"
)

// Sales is the read-only view over confirmed orders. The API has no
// sales endpoint; the order collection is fetched and filtered to
// status confirmed before entering the canonical collection.
type Sales struct {
	client   *api.Client
	ctrl     *sync.Controller[models.Order]
	notifier sync.Notifier
}

func NewSales(client *api.Client, notifier sync.Notifier) *Sales {
	if notifier == nil {
		notifier = sync.NopNotifier{}
	}
	return &Sales{
		client:   client,
		ctrl:     sync.NewController[models.Order](notifier, models.Validate),
		notifier: notifier,
	}
}

func (s *Sales) Items() []models.Order { return s.ctrl.Items() }

func (s *Sales) State() sync.State { return s.ctrl.State() }

func (s *Sales) Find(id int64) (models.Order, bool) { return s.ctrl.Find(id) }

func (s *Sales) Load(ctx context.Context) error {
	return s.ctrl.Load(ctx, func(ctx context.Context) ([]models.Order, error) {
		raw, err := s.client.Call(ctx, "get", "orders", nil)
		if err != nil {
			return nil, fmt.Errorf("list sales: %w", err)
		}

		orders, err := models.DecodeList[models.Order](raw)
		if err != nil {
			return nil, err
		}

		confirmed := make([]models.Order, 0, len(orders))
		for _, order := range orders {
			if order.Status == models.OrderStatusConfirmed {
				confirmed = append(confirmed, order)
			}
		}
		return confirmed, nil
	})
}
