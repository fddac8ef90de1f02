package translation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newCodicServer(t *testing.T, handler http.HandlerFunc) *CodicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewCodicProvider(ClientConfig{Endpoints: map[Name]string{Codic: server.URL}})
}

func TestCodicTranslate(t *testing.T) {
	provider := newCodicServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != codicTranslatePath {
			t.Errorf("path = %s, want %s", r.URL.Path, codicTranslatePath)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer T1" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer T1")
		}
		query := r.URL.Query()
		if query.Get("text") != "こんにちは\nさようなら" {
			t.Errorf("text = %q", query.Get("text"))
		}
		if query.Get("casing") != "lower underscore" {
			t.Errorf("casing = %q, want %q", query.Get("casing"), "lower underscore")
		}
		if query.Get("project_id") != "42" {
			t.Errorf("project_id = %q", query.Get("project_id"))
		}
		if query.Has("acronym_style") {
			t.Error("acronym_style sent although not configured")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"successful":true,"text":"こんにちは","translated_text":"hello","words":[]},
			{"successful":true,"text":"さようなら","translated_text":"goodbye","words":[]}]`))
	})

	got, err := provider.Translate(context.Background(), "こんにちは\nさようなら", Options{
		"token":     "T1",
		"projectId": "42",
		"casing":    "lower_underscore",
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "hello\ngoodbye" {
		t.Errorf("Translate() = %q, want %q", got, "hello\ngoodbye")
	}
}

func TestCodicTranslateVendorError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{
			name:   "single error",
			status: http.StatusUnauthorized,
			body:   `{"errors":[{"code":401,"message":"Unauthorized","context":null}]}`,
			want:   "401: Unauthorized",
		},
		{
			name:   "multiple errors",
			status: http.StatusBadRequest,
			body:   `{"errors":[{"code":400,"message":"Bad text"},{"code":422,"message":"Too many lines"}]}`,
			want:   "400: Bad text / 422: Too many lines",
		},
		{
			name:   "unstructured body",
			status: http.StatusBadGateway,
			body:   `upstream down`,
			want:   "502: upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newCodicServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := provider.Translate(context.Background(), "hi", Options{"token": "bad"})
			var trErr *TranslationError
			if !errors.As(err, &trErr) {
				t.Fatalf("Translate() error = %v, want *TranslationError", err)
			}
			if trErr.Error() != tt.want {
				t.Errorf("Translate() error = %q, want %q", trErr.Error(), tt.want)
			}
			if trErr.Provider != Codic {
				t.Errorf("Provider = %s, want codic", trErr.Provider)
			}
		})
	}
}

func TestCodicTranslateMissingToken(t *testing.T) {
	t.Setenv(codicTokenEnv, "")
	called := false
	provider := newCodicServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := provider.Translate(context.Background(), "hi", Options{})
	if err == nil {
		t.Fatal("Translate() expected error without token")
	}
	if !strings.Contains(err.Error(), "token is required") {
		t.Errorf("Translate() error = %v", err)
	}
	if called {
		t.Error("Translate() performed a request without token")
	}
}

func TestCodicTranslateTokenFromEnvironment(t *testing.T) {
	t.Setenv(codicTokenEnv, "ENV")
	provider := newCodicServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer ENV" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`[{"translated_text":"ok"}]`))
	})

	got, err := provider.Translate(context.Background(), "hi", Options{})
	if err != nil || got != "ok" {
		t.Errorf("Translate() = %q, %v", got, err)
	}
}

func TestCodicTranslateTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	provider := NewCodicProvider(ClientConfig{Endpoints: map[Name]string{Codic: server.URL}})

	_, err := provider.Translate(context.Background(), "hi", Options{"token": "T"})
	var trErr *TranslationError
	if !errors.As(err, &trErr) {
		t.Fatalf("Translate() error = %v, want *TranslationError", err)
	}
	if !strings.HasPrefix(trErr.Error(), "codic: request failed") {
		t.Errorf("Translate() error = %q", trErr.Error())
	}
	if trErr.Unwrap() == nil {
		t.Error("transport error is not wrapped")
	}
}
