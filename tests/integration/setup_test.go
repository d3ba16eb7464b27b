package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/safar/go-shop-admin/internal/api"
	"github.com/safar/go-shop-admin/internal/config"
)

// backend is an in-memory rendition of the admin API, enough of it to
// drive the client and stores end to end: bearer auth, the wrapped
// product envelope, multipart product creation, and the status and
// stock sub-resources.
type backend struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]map[string]interface{}
	orders   map[int64]map[string]interface{}
	token    string
}

func newBackend() *backend {
	return &backend{
		nextID:   1,
		products: make(map[int64]map[string]interface{}),
		orders:   make(map[int64]map[string]interface{}),
		token:    "test-token",
	}
}

func (b *backend) addOrder(status string, total string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.orders[id] = map[string]interface{}{
		"id":      id,
		"date":    "2025-03-01T09:30:00Z",
		"total":   total,
		"status":  status,
		"user_id": 1,
		"user": map[string]interface{}{
			"id":        1,
			"name":      "Aye Chan",
			"email":     "aye@example.com",
			"createdAt": "2025-01-01T00:00:00Z",
			"updatedAt": "2025-01-01T00:00:00Z",
		},
		"orderItems": []interface{}{},
		"createdAt":  "2025-03-01T09:30:00Z",
		"updatedAt":  "2025-03-01T09:30:00Z",
	}
	return id
}

func (b *backend) authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+b.token
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func unauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
}

func (b *backend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Password != "secret" {
			unauthorized(w)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"accessToken": b.token})
	})

	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			unauthorized(w)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":        1,
			"name":      "Aye Chan",
			"email":     "aye@example.com",
			"createdAt": "2025-01-01T00:00:00Z",
			"updatedAt": "2025-01-01T00:00:00Z",
		})
	})

	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			unauthorized(w)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		list := make([]map[string]interface{}, 0, len(b.products))
		for _, p := range b.products {
			list = append(list, p)
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"products": list, "total": len(list)})
	})

	mux.HandleFunc("POST /products", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			unauthorized(w)
			return
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "multipart required"})
			return
		}
		if err := r.ParseMultipartForm(8 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		id := b.nextID
		b.nextID++

		price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
		images := make([]string, 0)
		for _, f := range r.MultipartForm.File["images"] {
			images = append(images, "/uploads/"+f.Filename)
		}
		product := map[string]interface{}{
			"id":        id,
			"name":      r.FormValue("name"),
			"price":     price,
			"isActive":  r.FormValue("isActive") == "true",
			"images":    images,
			"createdAt": time.Now().UTC().Format(time.RFC3339),
			"updatedAt": time.Now().UTC().Format(time.RFC3339),
		}
		if v := r.FormValue("stock"); v != "" {
			stock, _ := strconv.Atoi(v)
			product["stock"] = stock
		}
		b.products[id] = product
		writeJSON(w, http.StatusCreated, product)
	})

	mux.HandleFunc("PATCH /products/{id}/stock", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			unauthorized(w)
			return
		}
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		var body struct {
			Quantity int `json:"quantity"`
		}
		json.NewDecoder(r.Body).Decode(&body)

		b.mu.Lock()
		defer b.mu.Unlock()
		product, ok := b.products[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "product not found"})
			return
		}
		product["stock"] = body.Quantity
		writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "stock": body.Quantity})
	})

	mux.HandleFunc("DELETE /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			unauthorized(w)
			return
		}
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.products[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "product not found"})
			return
		}
		delete(b.products, id)
		writeJSON(w, http.StatusOK, map[string]string{})
	})

	mux.HandleFunc("GET /orders", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			unauthorized(w)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		list := make([]map[string]interface{}, 0, len(b.orders))
		for _, o := range b.orders {
			list = append(list, o)
		}
		writeJSON(w, http.StatusOK, list)
	})

	mux.HandleFunc("PATCH /orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			unauthorized(w)
			return
		}
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		var body struct {
			Status string `json:"status"`
		}
		json.NewDecoder(r.Body).Decode(&body)

		b.mu.Lock()
		defer b.mu.Unlock()
		order, ok := b.orders[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "order not found"})
			return
		}
		order["status"] = body.Status
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	return mux
}

// setupBackend starts the fake API and returns a client that is not
// yet authenticated.
func setupBackend(t *testing.T) (*backend, *api.Client) {
	t.Helper()
	b := newBackend()
	server := httptest.NewServer(b.handler())
	t.Cleanup(server.Close)

	client := api.NewClient(&config.API{BaseURL: server.URL, Timeout: 10 * time.Second})
	return b, client
}

// login walks the real authentication path: POST credentials, read the
// access token, attach it to the client.
func login(t *testing.T, client *api.Client) {
	t.Helper()
	raw, err := client.Call(t.Context(), "post", "auth/login", map[string]string{
		"email":    "aye@example.com",
		"password": "secret",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("login response carried no access token")
	}
	client.SetToken(resp.AccessToken)
}
