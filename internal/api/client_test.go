package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(Config{
		BaseURL:       server.URL,
		TokenProvider: StaticToken("test-token"),
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, server
}

func TestFetchCartUnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/cart" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":11,"quantity":2,"product":{"id":1,"name":"Keripik","price":"15000.00","stock":10,"seller_id":7,"seller":{"id":7,"shop_name":"Warung Bu Sari"}}}]}`))
	}))

	entries, err := client.FetchCart(context.Background())
	if err != nil {
		t.Fatalf("FetchCart failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.ID != 11 || entry.Quantity != 2 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Product.Price != "15000.00" {
		t.Fatalf("price must stay a string on the wire, got %q", entry.Product.Price)
	}
	if entry.Product.Seller == nil || entry.Product.Seller.ShopName != "Warung Bu Sari" {
		t.Fatalf("unexpected seller: %+v", entry.Product.Seller)
	}
}

func TestAddToCartDifferentSellerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"cart holds items from another seller","error_type":"different_seller","request_id":"req-1"}`))
	}))

	err := client.AddToCart(context.Background(), 2, 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsDifferentSeller(err) {
		t.Fatalf("expected different seller error, got %v", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "cart holds items from another seller" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestErrorWithoutJSONBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))

	err := client.ClearCart(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if IsDifferentSeller(err) {
		t.Fatal("plain failure must not classify as different seller")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", apiErr.StatusCode)
	}
}

func TestIssueToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/token" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"token":"issued-token"}}`))
	}))

	token, err := client.IssueToken(context.Background(), 1)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if token != "issued-token" {
		t.Fatalf("unexpected token %q", token)
	}
}
