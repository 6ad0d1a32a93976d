package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rouletteup/admin-console/internal/models"
)

func TestSignIn(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    bool
		wantField  string
		wantResult models.Session
	}{
		{
			name:       "success returns session with submitted nickname",
			status:     http.StatusOK,
			body:       `{"code":200,"message":"ok","data":{"id":7}}`,
			wantResult: models.Session{ID: 7, Nickname: "ab"},
		},
		{
			name:      "field-level rejection surfaces nickname error",
			status:    http.StatusBadRequest,
			body:      `{"code":"A001","message":"validation failed","errors":{"nickname":"nickname not found"}}`,
			wantErr:   true,
			wantField: "nickname not found",
		},
		{
			name:    "non-envelope failure falls back to status text",
			status:  http.StatusBadGateway,
			body:    `upstream exploded`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/api/v1/admin/auth/sign-in" {
					t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
				}
				if got := r.Header.Get("X-Request-Id"); got == "" {
					t.Error("missing X-Request-Id header")
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := New(srv.URL)
			got, err := client.SignIn(context.Background(), "ab")

			if tt.wantErr {
				if err == nil {
					t.Fatal("SignIn() error = nil, want error")
				}
				if tt.wantField != "" {
					var apiErr *Error
					if !errors.As(err, &apiErr) {
						t.Fatalf("error = %v, want *api.Error", err)
					}
					if apiErr.FieldError("nickname") != tt.wantField {
						t.Errorf("FieldError(nickname) = %q, want %q",
							apiErr.FieldError("nickname"), tt.wantField)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("SignIn() error = %v", err)
			}
			if got != tt.wantResult {
				t.Errorf("SignIn() = %+v, want %+v", got, tt.wantResult)
			}
		})
	}
}

func TestPaginatedRequestCarriesPageAndSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/admin/roulettes" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("size") != "12" {
			t.Errorf("query = %s, want page=2&size=12", r.URL.RawQuery)
		}
		w.Write([]byte(`{"code":200,"message":"ok","data":{
			"content":[{"id":1,"rouletteDate":"2026-02-08","totalBudget":100000,"usedBudget":40000,"participantCount":12,"deletedAt":null}],
			"page":{"size":12,"number":2,"totalElements":25,"totalPages":3}}}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	page, err := client.RouletteHistory(context.Background(), 2, 12)
	if err != nil {
		t.Fatalf("RouletteHistory() error = %v", err)
	}
	if len(page.Content) != 1 || page.Content[0].ID != 1 {
		t.Errorf("content = %+v", page.Content)
	}
	if page.Page.Number != 2 || page.Page.TotalPages != 3 {
		t.Errorf("page info = %+v", page.Page)
	}
}

func TestMutationWithEmptyDataSucceeds(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"code":200,"message":"ok","data":null}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	err := client.UpdateFutureBudget(context.Background(), "2026-02-15", 50000)
	if err != nil {
		t.Fatalf("UpdateFutureBudget() error = %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/api/v1/admin/roulettes/future/budget" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotBody != `{"settingDate":"2026-02-15","newTotalBudget":50000}` {
		t.Errorf("body = %s", gotBody)
	}
}

func TestDeleteProductDispatchesDelete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"code":200,"message":"ok","data":null}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	if err := client.DeleteProduct(context.Background(), 42); err != nil {
		t.Fatalf("DeleteProduct() error = %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/v1/admin/products/42" {
		t.Errorf("request = %s %s, want DELETE /api/v1/admin/products/42", gotMethod, gotPath)
	}
}

func TestMalformedSuccessBodyIsGenericError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.TodayRoulette(context.Background())
	if err == nil {
		t.Fatal("TodayRoulette() error = nil, want decode failure")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Errorf("decode failure classified as *api.Error: %v", err)
	}
}
