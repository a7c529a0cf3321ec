package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// newTestServer returns an httptest server answering the two Finnhub
// endpoints with the given bodies, recording the last request query.
func newTestServer(t *testing.T, profileBody, quoteBody string, status int) (*httptest.Server, map[string]string) {
	t.Helper()
	lastQuery := make(map[string]string)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastQuery["symbol"] = r.URL.Query().Get("symbol")
		lastQuery["token"] = r.URL.Query().Get("token")
		w.WriteHeader(status)
		switch r.URL.Path {
		case "/stock/profile2":
			w.Write([]byte(profileBody))
		case "/quote":
			w.Write([]byte(quoteBody))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, lastQuery
}

func TestCompanyProfile(t *testing.T) {
	srv, lastQuery := newTestServer(t,
		`{"name":"Microsoft Corp","ticker":"MSFT","country":"US"}`,
		`{}`, http.StatusOK)
	c := NewClient(srv.URL, "tok123", time.Second)

	profile, err := c.CompanyProfile(context.Background(), "MSFT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile == nil {
		t.Fatal("expected a profile")
	}
	if profile.Name != "Microsoft Corp" {
		t.Errorf("got name %q, want Microsoft Corp", profile.Name)
	}
	if profile.Ticker != "MSFT" {
		t.Errorf("got ticker %q, want MSFT", profile.Ticker)
	}
	if lastQuery["symbol"] != "MSFT" {
		t.Errorf("symbol query param = %q, want MSFT", lastQuery["symbol"])
	}
	if lastQuery["token"] != "tok123" {
		t.Errorf("token query param = %q, want tok123", lastQuery["token"])
	}
}

func TestCompanyProfile_UnknownSymbol(t *testing.T) {
	// Finnhub answers an empty object for unknown symbols.
	srv, _ := newTestServer(t, `{}`, `{}`, http.StatusOK)
	c := NewClient(srv.URL, "tok", time.Second)

	profile, err := c.CompanyProfile(context.Background(), "ZZZZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile != nil {
		t.Fatalf("expected absent profile, got %+v", profile)
	}
}

func TestPriceQuote(t *testing.T) {
	srv, _ := newTestServer(t, `{}`,
		`{"c":250.55,"h":252.1,"l":248.9,"o":249.0,"pc":251.2}`, http.StatusOK)
	c := NewClient(srv.URL, "tok", time.Second)

	q, err := c.PriceQuote(context.Background(), "MSFT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q == nil {
		t.Fatal("expected a quote")
	}
	if !q.Current.Equal(decimal.RequireFromString("250.55")) {
		t.Errorf("got price %s, want 250.55", q.Current)
	}
}

func TestPriceQuote_UnknownSymbol(t *testing.T) {
	// Finnhub reports all-zero fields for unknown symbols.
	srv, _ := newTestServer(t, `{}`, `{"c":0,"h":0,"l":0,"o":0,"pc":0}`, http.StatusOK)
	c := NewClient(srv.URL, "tok", time.Second)

	q, err := c.PriceQuote(context.Background(), "ZZZZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != nil {
		t.Fatalf("expected absent quote, got %+v", q)
	}
}

func TestClient_ServerError(t *testing.T) {
	srv, _ := newTestServer(t, `{}`, `{}`, http.StatusInternalServerError)
	c := NewClient(srv.URL, "tok", time.Second)

	if _, err := c.CompanyProfile(context.Background(), "MSFT"); err == nil {
		t.Error("expected error for 500 profile response")
	}
	if _, err := c.PriceQuote(context.Background(), "MSFT"); err == nil {
		t.Error("expected error for 500 quote response")
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	srv, _ := newTestServer(t, `{not json`, `also not json`, http.StatusOK)
	c := NewClient(srv.URL, "tok", time.Second)

	if _, err := c.CompanyProfile(context.Background(), "MSFT"); err == nil {
		t.Error("expected error for malformed profile response")
	}
	if _, err := c.PriceQuote(context.Background(), "MSFT"); err == nil {
		t.Error("expected error for malformed quote response")
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	srv, _ := newTestServer(t, `{}`, `{}`, http.StatusOK)
	srv.Close()
	c := NewClient(srv.URL, "tok", time.Second)

	if _, err := c.CompanyProfile(context.Background(), "MSFT"); err == nil {
		t.Error("expected error when the server is unreachable")
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient("", "tok", time.Second)
	if c.baseURL != DefaultBaseURL {
		t.Errorf("got base URL %q, want %q", c.baseURL, DefaultBaseURL)
	}
}
