package store

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/safar/go-shop-admin/internal/api"
	"github.com/safar/go-shop-admin/internal/config"
)

type recorder struct {
	successes []string
	errors    []string
}

func (r *recorder) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) Error(msg string)   { r.errors = append(r.errors, msg) }

func (r *recorder) lastSuccess(t *testing.T) string {
	t.Helper()
	if len(r.successes) == 0 {
		t.Fatal("expected a success notification, got none")
	}
	return r.successes[len(r.successes)-1]
}

func (r *recorder) lastError(t *testing.T) string {
	t.Helper()
	if len(r.errors) == 0 {
		t.Fatal("expected an error notification, got none")
	}
	return r.errors[len(r.errors)-1]
}

func testBackend(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.NewClient(&config.API{BaseURL: server.URL, Timeout: 5 * time.Second})
}

const productFixture = `{
	"id": 1,
	"name": "Air Max",
	"description": "Running shoe",
	"price": "120.00",
	"stock": 5,
	"isActive": true,
	"images": ["a.jpg", "b.jpg"],
	"createdAt": "2025-01-02T10:00:00Z",
	"updatedAt": "2025-01-02T10:00:00Z"
}`

const orderFixture = `{
	"id": 1,
	"date": "2025-03-01T09:30:00Z",
	"total": "250.00",
	"phone": "0912345678",
	"address": "Yangon",
	"status": "pending",
	"user_id": 7,
	"user": {
		"id": 7,
		"name": "Aye Chan",
		"email": "aye@example.com",
		"createdAt": "2025-01-01T00:00:00Z",
		"updatedAt": "2025-01-01T00:00:00Z"
	},
	"orderItems": [],
	"createdAt": "2025-03-01T09:30:00Z",
	"updatedAt": "2025-03-01T09:30:00Z"
}`
