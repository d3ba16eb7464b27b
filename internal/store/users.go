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

// Users binds the user collection to the transport client.
type Users struct {
	client   *api.Client
	ctrl     *sync.Controller[models.User]
	notifier sync.Notifier
}

func NewUsers(client *api.Client, notifier sync.Notifier) *Users {
	if notifier == nil {
		notifier = sync.NopNotifier{}
	}
	return &Users{
		client:   client,
		ctrl:     sync.NewController[models.User](notifier, models.Validate),
		notifier: notifier,
	}
}

func (s *Users) Items() []models.User { return s.ctrl.Items() }

func (s *Users) State() sync.State { return s.ctrl.State() }

func (s *Users) Load(ctx context.Context) error {
	return s.ctrl.Load(ctx, func(ctx context.Context) ([]models.User, error) {
		raw, err := s.client.Call(ctx, "get", "users", nil)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		return models.DecodeList[models.User](raw)
	})
}

func (s *Users) Create(ctx context.Context, form *forms.UserForm) (*models.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	user, err := s.ctrl.Create(ctx, func(ctx context.Context) (models.User, error) {
		raw, err := s.client.Call(ctx, "post", "users", form)
		if err != nil {
			return models.User{}, fmt.Errorf("create user: %w", err)
		}
		return models.Decode[models.User](raw)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Success("Successfully Created")
	return &user, nil
}

func (s *Users) Update(ctx context.Context, id int64, form *forms.UserForm) (*models.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.ctrl.Find(id); !ok {
		return nil, api.ErrUserNotFound
	}

	user, err := s.ctrl.Update(ctx, id, func(ctx context.Context) (json.RawMessage, error) {
		raw, err := s.client.Call(ctx, "patch", fmt.Sprintf("users/%d", id), form)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Success("Successfully Updated")
	return &user, nil
}

// Me fetches the authenticated profile. It has no effect on the
// canonical collection.
func (s *Users) Me(ctx context.Context) (*models.User, error) {
	raw, err := s.client.Call(ctx, "get", "users/me", nil)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, api.ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	user, err := models.Decode[models.User](raw)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
