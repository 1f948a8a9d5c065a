package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"vendor_registration/internal/domain/entities"
)

func TestObjectName(t *testing.T) {
	cases := map[string]string{
		"cert.pdf":            "rec-1/cert.pdf",
		"../../etc/passwd":    "rec-1/passwd",
		`C:\docs\licence.pdf`: "rec-1/licence.pdf",
		"":                    "rec-1/document",
	}
	for in, want := range cases {
		if got := ObjectName("rec-1", in); got != want {
			t.Fatalf("ObjectName(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestMinioDocumentArchive_Archive(t *testing.T) {
	var (
		mu    sync.Mutex
		puts  []string
		ctype string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			mu.Lock()
			puts = append(puts, r.URL.Path)
			ctype = r.Header.Get("Content-Type")
			mu.Unlock()
		}
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, err := NewMinioDocumentArchive(MinioConfig{
		Endpoint:  strings.TrimPrefix(srv.URL, "http://"),
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "vendor-documents",
		Region:    "us-east-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := entities.Document{Name: "cert.pdf", MimeType: "application/pdf", Content: []byte("%PDF")}
	if err := a.Archive(context.Background(), "rec-1", doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(puts) != 1 || puts[0] != "/vendor-documents/rec-1/cert.pdf" {
		t.Fatalf("unexpected puts: %v", puts)
	}
	if ctype != "application/pdf" {
		t.Fatalf("unexpected content type %q", ctype)
	}
}
