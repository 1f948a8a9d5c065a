package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestZohoTokenExchanger_Exchange(t *testing.T) {
	t.Run("refresh grant", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/oauth/v2/token" {
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			if err := r.ParseForm(); err != nil {
				t.Fatalf("parse form: %v", err)
			}
			if r.PostForm.Get("grant_type") != "refresh_token" ||
				r.PostForm.Get("refresh_token") != "rt" ||
				r.PostForm.Get("client_id") != "cid" ||
				r.PostForm.Get("client_secret") != "secret" {
				t.Fatalf("unexpected form: %v", r.PostForm)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`))
		}))
		defer srv.Close()

		e := NewZohoTokenExchanger(srv.URL, "cid", "secret", "rt", time.Second)
		tok, err := e.Exchange(context.Background())
		if err != nil || tok != "at-1" {
			t.Fatalf("expected at-1, got %q err=%v", tok, err)
		}
	})

	t.Run("provider error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_code"}`))
		}))
		defer srv.Close()

		e := NewZohoTokenExchanger(srv.URL, "cid", "secret", "rt", time.Second)
		if _, err := e.Exchange(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing access token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"error":"invalid_code"}`))
		}))
		defer srv.Close()

		e := NewZohoTokenExchanger(srv.URL, "cid", "secret", "rt", time.Second)
		if _, err := e.Exchange(context.Background()); err == nil {
			t.Fatalf("expected error for body without access_token")
		}
	})

	t.Run("not configured", func(t *testing.T) {
		e := NewZohoTokenExchanger("http://unused", "", "", "", 0)
		if _, err := e.Exchange(context.Background()); !errors.Is(err, ErrIdentityNotConfigured) {
			t.Fatalf("expected ErrIdentityNotConfigured, got %v", err)
		}
	})
}
