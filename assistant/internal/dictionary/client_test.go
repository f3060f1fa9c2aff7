package dictionary

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const serenePayload = `[
  {
    "word": "serene",
    "meanings": [
      {
        "partOfSpeech": "adjective",
        "definitions": [
          {"definition": "Calm and peaceful.", "example": "He remained serene in the midst of chaos."}
        ]
      }
    ]
  }
]`

func TestLookup_FirstDefinitionAndExample(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/entries/en/serene" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(serenePayload))
	}))
	defer srv.Close()

	entry, err := NewClient(srv.URL).Lookup("serene")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if entry.Definition != "Calm and peaceful." {
		t.Fatalf("definition mismatch: %q", entry.Definition)
	}
	if entry.Example != "He remained serene in the midst of chaos." {
		t.Fatalf("example mismatch: %q", entry.Example)
	}
}

func TestLookup_ExampleFallback(t *testing.T) {
	payload := `[{"word":"arcane","meanings":[{"definitions":[{"definition":"Understood by few."}]}]}]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	entry, err := NewClient(srv.URL).Lookup("arcane")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if entry.Example == "" {
		t.Fatal("expected fallback example text")
	}
}

func TestLookup_UnknownWord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Lookup("zzzz")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookup_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewClient(srv.URL).Lookup("serene")
	if err == nil {
		t.Fatal("expected transport error")
	}
}
