package tripsplit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWhisperClientTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("request is not multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("model = %q, want whisper-1", got)
		}
		if got := r.FormValue("language"); got != "en" {
			t.Errorf("language = %q, want en", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("no file part: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "bill.webm" {
			t.Errorf("filename = %q, want bill.webm", hdr.Filename)
		}
		json.NewEncoder(w).Encode(map[string]string{"text": "Bob paid 8500 rupees for dinner"})
	}))
	defer srv.Close()

	c := NewWhisperClient("sk-test")
	c.URL = srv.URL
	text, err := c.Transcribe(context.Background(), strings.NewReader("fake audio"), "bill.webm")
	if err != nil {
		t.Fatalf("Transcribe() failed: %v", err)
	}
	if text != "Bob paid 8500 rupees for dinner" {
		t.Errorf("Transcribe() = %q", text)
	}
}

func TestWhisperClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewWhisperClient("bad")
	c.URL = srv.URL
	_, err := c.Transcribe(context.Background(), strings.NewReader("x"), "bill.webm")
	if err == nil {
		t.Fatal("Transcribe() succeeded against a 401 endpoint")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error %q does not carry the status", err)
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("error %q does not carry the service message", err)
	}
}
