package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ami-friedman/budget-compass/internal/models"
)

func TestClientAttachesHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]models.Category{})
	}))
	defer server.Close()

	client := New(server.URL, WithTokenSource(StaticToken("tok-123")))
	if _, err := client.Categories(context.Background()); err != nil {
		t.Fatalf("categories: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected bearer token attached, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("expected X-Request-ID set")
	}
}

func TestClientOmitsEmptyToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer server.Close()

	client := New(server.URL, WithTokenSource(StaticToken("")))
	if _, err := client.Login(context.Background(), "ami@example.com"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClientDecodesErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantUnauth  bool
	}{
		{
			name:        "fastapi detail",
			status:      http.StatusUnprocessableEntity,
			body:        `{"detail": "amount must be positive"}`,
			wantMessage: "amount must be positive",
		},
		{
			name:        "message envelope",
			status:      http.StatusBadRequest,
			body:        `{"message": "bad month"}`,
			wantMessage: "bad month",
		},
		{
			name:        "empty body falls back to status text",
			status:      http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
		{
			name:        "401 matches ErrUnauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"detail": "token expired"}`,
			wantMessage: "token expired",
			wantUnauth:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			}))
			defer server.Close()

			client := New(server.URL)
			_, err := client.Categories(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, apiErr.Status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, apiErr.Message)
			}
			if got := errors.Is(err, ErrUnauthorized); got != tt.wantUnauth {
				t.Errorf("errors.Is(err, ErrUnauthorized) = %v, want %v", got, tt.wantUnauth)
			}
		})
	}
}

func TestTransactionFilterQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.Transaction{})
	}))
	defer server.Close()

	client := New(server.URL)
	filter := TransactionFilter{BudgetID: 3, AccountType: models.AccountSavings}
	if _, err := client.Transactions(context.Background(), filter); err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if gotQuery != "account_type=savings&budget_id=3" {
		t.Errorf("unexpected query %q", gotQuery)
	}

	if _, err := client.Transactions(context.Background(), TransactionFilter{}); err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("expected empty query for zero filter, got %q", gotQuery)
	}
}
