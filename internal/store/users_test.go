package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/safar/go-shop-admin/internal/api"
	"github.com/safar/go-shop-admin/internal/forms"
)

const userFixture = `{
	"id": 7,
	"name": "Aye Chan",
	"email": "aye@example.com",
	"roles": ["admin"],
	"createdAt": "2025-01-01T00:00:00Z",
	"updatedAt": "2025-01-01T00:00:00Z"
}`

func TestUsersCreateAppendsServerUser(t *testing.T) {
	rec := &recorder{}
	client := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, userFixture)
	})

	users := NewUsers(client, rec)
	created, err := users.Create(context.Background(), &forms.UserForm{
		Name:  "Aye Chan",
		Email: "aye@example.com",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected server id 7, got %d", created.ID)
	}
	if got := len(users.Items()); got != 1 {
		t.Errorf("expected user appended, collection has %d", got)
	}
	if got := rec.lastSuccess(t); got != "Successfully Created" {
		t.Errorf("unexpected success message %q", got)
	}
}

func TestUsersUpdateMergesOverPrior(t *testing.T) {
	rec := &recorder{}
	client := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			fmt.Fprintf(w, `[%s]`, userFixture)
		case r.Method == http.MethodPatch && r.URL.Path == "/users/7":
			fmt.Fprint(w, `{"id":7,"name":"Aye Chan Oo"}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	users := NewUsers(client, rec)
	if err := users.Load(context.Background()); err != nil {
		t.Fatalf("load users: %v", err)
	}

	updated, err := users.Update(context.Background(), 7, &forms.UserForm{
		Name:  "Aye Chan Oo",
		Email: "aye@example.com",
	})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.Name != "Aye Chan Oo" {
		t.Errorf("expected merged name, got %q", updated.Name)
	}
	if updated.Email != "aye@example.com" {
		t.Errorf("expected email preserved through merge, got %q", updated.Email)
	}
	if len(updated.Roles) != 1 {
		t.Errorf("expected roles preserved through merge, got %v", updated.Roles)
	}
}

func TestUsersUpdateUnknownIDReturnsNotFound(t *testing.T) {
	hits := 0
	rec := &recorder{}
	client := testBackend(t, func(w http.ResponseWriter, r *http.Request) { hits++ })

	users := NewUsers(client, rec)
	_, err := users.Update(context.Background(), 99, &forms.UserForm{
		Name:  "Aye",
		Email: "aye@example.com",
	})
	if !errors.Is(err, api.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if hits != 0 {
		t.Errorf("expected no network call, server saw %d", hits)
	}
	if len(rec.successes) != 0 {
		t.Errorf("expected no success notification, got %v", rec.successes)
	}
}

func TestUsersCreateRejectsBadEmailBeforeNetwork(t *testing.T) {
	hits := 0
	client := testBackend(t, func(w http.ResponseWriter, r *http.Request) { hits++ })

	users := NewUsers(client, nil)
	_, err := users.Create(context.Background(), &forms.UserForm{Name: "x", Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if hits != 0 {
		t.Errorf("expected no network call, server saw %d", hits)
	}
}

func TestUsersMe(t *testing.T) {
	client := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/me" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, userFixture)
	})

	users := NewUsers(client, nil)
	me, err := users.Me(context.Background())
	if err != nil {
		t.Fatalf("fetch profile: %v", err)
	}
	if me.Email != "aye@example.com" {
		t.Errorf("unexpected profile %+v", me)
	}
}

func TestUsersMeNotFound(t *testing.T) {
	client := testBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"no such user"}`)
	})

	users := NewUsers(client, nil)
	if _, err := users.Me(context.Background()); !errors.Is(err, api.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
