package deck

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseBaseURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "http://127.0.0.1:7363"},
		{"127.0.0.1:9000", "http://127.0.0.1:9000"},
		{"  deck.local:8080  ", "http://deck.local:8080"},
		{"https://deck.example.com", "https://deck.example.com"},
		{"http://10.0.0.5:7363/api/deck?x=1", "http://10.0.0.5:7363"},
	}
	for _, tc := range cases {
		u, err := parseBaseURL(tc.in)
		if err != nil {
			t.Fatalf("parseBaseURL(%q): %v", tc.in, err)
		}
		if u.String() != tc.want {
			t.Fatalf("parseBaseURL(%q) = %q, want %q", tc.in, u.String(), tc.want)
		}
	}
}

func TestFetchDeck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/deck" {
			t.Errorf("path = %q, want /api/deck", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "marquee/") {
			t.Errorf("User-Agent = %q, want marquee prefix", r.Header.Get("User-Agent"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"slides": []map[string]any{
				{"title": "Welcome", "subtitle": "hi"},
				{"title": "Second"},
			},
			"breakpoints": map[string]any{
				"narrow": map[string]any{"maxWidth": 60, "settings": map[string]any{"speedMs": 200}},
			},
		})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	resp, err := client.FetchDeck(context.Background())
	if err != nil {
		t.Fatalf("FetchDeck: %v", err)
	}
	if len(resp.Slides) != 2 {
		t.Fatalf("len(Slides) = %d, want 2", len(resp.Slides))
	}
	if resp.Slides[0].Title != "Welcome" {
		t.Fatalf("Title = %q, want Welcome", resp.Slides[0].Title)
	}
	bp, ok := resp.Breakpoints["narrow"]
	if !ok {
		t.Fatalf("breakpoint narrow missing")
	}
	if bp.Name != "narrow" {
		t.Fatalf("Breakpoint.Name = %q, want narrow (filled from map key)", bp.Name)
	}
	if bp.Settings.SpeedMs == nil || *bp.Settings.SpeedMs != 200 {
		t.Fatalf("breakpoint speedMs = %v, want 200", bp.Settings.SpeedMs)
	}
}

func TestFetchDeck_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.FetchDeck(context.Background()); err == nil {
		t.Fatalf("FetchDeck error = nil, want status error")
	}
}

func TestFetchDeck_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.FetchDeck(context.Background()); err == nil {
		t.Fatalf("FetchDeck error = nil, want decode error")
	}
}

func TestFetchDeck_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.FetchDeck(ctx); err == nil {
		t.Fatalf("FetchDeck error = nil, want context error")
	}
}
