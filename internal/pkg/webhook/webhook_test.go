package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPClientPost(t *testing.T) {
	type payload struct {
		Text string `json:"text"`
	}

	var gotContentType string
	var gotBody payload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(2 * time.Second)
	if err := client.Post(context.Background(), srv.URL, payload{Text: "hello"}); err != nil {
		t.Fatalf("post: %v", err)
	}

	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type: %q", gotContentType)
	}
	if gotBody.Text != "hello" {
		t.Fatalf("unexpected body: %+v", gotBody)
	}
}

func TestHTTPClientPostNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream choked"))
	}))
	defer srv.Close()

	client := NewHTTPClient(2 * time.Second)
	err := client.Post(context.Background(), srv.URL, map[string]string{"text": "hello"})

	var derr *DeliveryError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DeliveryError, got %T: %v", err, err)
	}
	if derr.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected status: %d", derr.StatusCode)
	}
	if derr.Body != "upstream choked" {
		t.Fatalf("unexpected body excerpt: %q", derr.Body)
	}
}

func TestHTTPClientPostUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewHTTPClient(time.Second)
	if err := client.Post(context.Background(), srv.URL, map[string]string{}); err == nil {
		t.Fatal("expected transport error")
	}
}
