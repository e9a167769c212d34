package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/etnz/coinmarket"
)

const usdRates = `{"result":"success","base_code":"USD","rates":{"USD":1,"EUR":0.5,"JPY":150.25}}`

// fakeRates serves USD rates and counts the requests.
func fakeRates(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/latest/USD":
			time.Sleep(20 * time.Millisecond) // let concurrent lookups pile up
			w.Write([]byte(usdRates))
		case "/latest/XXX":
			w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestConvert(t *testing.T) {
	var hits atomic.Int32
	srv := fakeRates(t, &hits)
	defer srv.Close()
	c := &Client{BaseURL: srv.URL, HTTP: coinmarket.NewClient(0)}
	ctx := context.Background()

	testCases := []struct {
		amount string
		to     string
		want   string
	}{
		{"6000.5", "EUR", "3,000.25"},
		{"2", "JPY", "300.50"},
		{"6000.5", "USD", "6,000.50"},
		{"", "EUR", "NaN"},
	}
	for _, tc := range testCases {
		got, err := c.Convert(ctx, coinmarket.ParseAmount(tc.amount), "USD", tc.to)
		if err != nil {
			t.Errorf("Convert(%s USD -> %s) unexpected error = %v", tc.amount, tc.to, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("Convert(%s USD -> %s) = %s, want %s", tc.amount, tc.to, got, tc.want)
		}
	}
}

func TestConvert_SameCurrencyNoLookup(t *testing.T) {
	var hits atomic.Int32
	srv := fakeRates(t, &hits)
	defer srv.Close()
	c := &Client{BaseURL: srv.URL, HTTP: coinmarket.NewClient(0)}

	if _, err := c.Convert(context.Background(), coinmarket.A(10), "USD", "USD"); err != nil {
		t.Fatalf("Convert() unexpected error = %v", err)
	}
	if n := hits.Load(); n != 0 {
		t.Errorf("%d requests for a same currency conversion, want 0", n)
	}
}

func TestConvert_Errors(t *testing.T) {
	var hits atomic.Int32
	srv := fakeRates(t, &hits)
	defer srv.Close()
	c := &Client{BaseURL: srv.URL, HTTP: coinmarket.NewClient(0)}
	ctx := context.Background()

	if _, err := c.Convert(ctx, coinmarket.A(1), "USD", "ABC"); err == nil || !strings.Contains(err.Error(), "no rate") {
		t.Errorf("Convert(USD -> ABC) error = %v, want no rate", err)
	}
	if _, err := c.Convert(ctx, coinmarket.A(1), "XXX", "EUR"); err == nil || !strings.Contains(err.Error(), "unsupported-code") {
		t.Errorf("Convert(XXX -> EUR) error = %v, want unsupported-code", err)
	}
	if _, err := c.Convert(ctx, coinmarket.A(1), "GBP", "EUR"); err == nil {
		t.Error("Convert(GBP -> EUR) expected an error on 404")
	}
}

func TestConvert_Coalesced(t *testing.T) {
	var hits atomic.Int32
	srv := fakeRates(t, &hits)
	defer srv.Close()
	c := &Client{BaseURL: srv.URL, HTTP: coinmarket.NewClient(0)}

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Convert(context.Background(), coinmarket.A(1), "USD", "EUR"); err != nil {
				t.Errorf("Convert() unexpected error = %v", err)
			}
		}()
	}
	wg.Wait()
	if n := hits.Load(); n >= 20 {
		t.Errorf("%d requests for 20 concurrent lookups, want them shared", n)
	}

	// nothing is kept once the lookups are done.
	before := hits.Load()
	if _, err := c.Convert(context.Background(), coinmarket.A(1), "USD", "EUR"); err != nil {
		t.Fatalf("Convert() unexpected error = %v", err)
	}
	if hits.Load() != before+1 {
		t.Error("a later lookup did not hit the service")
	}
}

func TestCurrencies(t *testing.T) {
	var hits atomic.Int32
	srv := fakeRates(t, &hits)
	defer srv.Close()
	c := &Client{BaseURL: srv.URL, HTTP: coinmarket.NewClient(0)}

	got, err := c.Currencies(context.Background(), "USD")
	if err != nil {
		t.Fatalf("Currencies() unexpected error = %v", err)
	}
	want := []string{"EUR", "JPY", "USD"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Currencies() = %v, want %v", got, want)
	}
}
