package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestSearch(t *testing.T) {
	t.Run("empty query short-circuits without an outbound call", func(t *testing.T) {
		srv, calls := newUpstream(t, http.StatusOK, `{"products":[]}`)
		svc := NewPriceChartingService("test-key", srv.URL)

		results, err := svc.Search("")

		assert.NoError(t, err)
		assert.Empty(t, results)
		assert.Equal(t, 0, *calls)
	})

	t.Run("maps products and converts pennies to dollars", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusOK, `{"products":[
			{"product-name":"Super Mario 64","console-name":"Nintendo 64",
			 "loose-price":2000,"complete-price":4500,"new-price":8000}
		]}`)
		svc := NewPriceChartingService("test-key", srv.URL)

		results, err := svc.Search("mario")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Super Mario 64", results[0].Title)
		assert.Equal(t, "Nintendo 64", results[0].Platform)
		assert.Equal(t, map[string]float64{
			"Loose":    20.00,
			"Complete": 45.00,
			"Sealed":   80.00,
		}, results[0].Prices)
	})

	t.Run("missing price fields default to zero", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusOK, `{"products":[
			{"product-name":"Chrono Trigger","console-name":"Super Nintendo","loose-price":12550}
		]}`)
		svc := NewPriceChartingService("test-key", srv.URL)

		results, err := svc.Search("chrono")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 125.50, results[0].Prices["Loose"])
		assert.Equal(t, 0.0, results[0].Prices["Complete"])
		assert.Equal(t, 0.0, results[0].Prices["Sealed"])
	})

	t.Run("upstream error status returns error with empty results", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusBadGateway, `upstream down`)
		svc := NewPriceChartingService("test-key", srv.URL)

		results, err := svc.Search("mario")

		assert.Error(t, err)
		assert.Empty(t, results)
	})

	t.Run("malformed response body returns error", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusOK, `not json`)
		svc := NewPriceChartingService("test-key", srv.URL)

		results, err := svc.Search("mario")

		assert.Error(t, err)
		assert.Empty(t, results)
	})

	t.Run("sends key and query to the products endpoint", func(t *testing.T) {
		var gotPath, gotKey, gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.URL.Query().Get("t")
			gotQuery = r.URL.Query().Get("q")
			_, _ = w.Write([]byte(`{"products":[]}`))
		}))
		defer srv.Close()
		svc := NewPriceChartingService("test-key", srv.URL)

		_, err := svc.Search("zelda")

		require.NoError(t, err)
		assert.Equal(t, "/api/products", gotPath)
		assert.Equal(t, "test-key", gotKey)
		assert.Equal(t, "zelda", gotQuery)
	})
}

func TestLookup(t *testing.T) {
	t.Run("empty title fails without an outbound call", func(t *testing.T) {
		srv, calls := newUpstream(t, http.StatusOK, `{}`)
		svc := NewPriceChartingService("test-key", srv.URL)

		_, err := svc.Lookup("", "snes")

		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, 0, *calls)
	})

	t.Run("empty platform fails without an outbound call", func(t *testing.T) {
		srv, calls := newUpstream(t, http.StatusOK, `{}`)
		svc := NewPriceChartingService("test-key", srv.URL)

		_, err := svc.Lookup("mario", "")

		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, 0, *calls)
	})

	t.Run("missing product key is not found", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusOK, `{"status":"no matches"}`)
		svc := NewPriceChartingService("test-key", srv.URL)

		_, err := svc.Lookup("Chrono Trigger", "super-nintendo")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("success returns normalized entry with canonical title", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusOK, `{"product":
			{"product-name":"Super Mario 64","console-name":"Nintendo 64",
			 "loose-price":2000,"complete-price":4500,"new-price":8000}
		}`)
		svc := NewPriceChartingService("test-key", srv.URL)

		entry, err := svc.Lookup("mario 64", "nintendo-64")

		require.NoError(t, err)
		assert.Equal(t, "Super Mario 64", entry.Title)
		assert.Equal(t, 20.00, entry.Prices["Loose"])
		assert.Equal(t, 45.00, entry.Prices["Complete"])
		assert.Equal(t, 80.00, entry.Prices["Sealed"])
	})

	t.Run("falls back to the requested title when upstream omits the name", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusOK, `{"product":{"loose-price":500}}`)
		svc := NewPriceChartingService("test-key", srv.URL)

		entry, err := svc.Lookup("Chrono Trigger", "super-nintendo")

		require.NoError(t, err)
		assert.Equal(t, "Chrono Trigger", entry.Title)
	})

	t.Run("transport failure is an upstream error", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusOK, `{}`)
		url := srv.URL
		srv.Close()
		svc := NewPriceChartingService("test-key", url)

		_, err := svc.Lookup("mario", "nintendo-64")

		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("upstream error status is an upstream error", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusInternalServerError, `boom`)
		svc := NewPriceChartingService("test-key", srv.URL)

		_, err := svc.Lookup("mario", "nintendo-64")

		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("passes the platform through verbatim", func(t *testing.T) {
		var gotConsole string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotConsole = r.URL.Query().Get("console")
			_, _ = w.Write([]byte(`{"product":{"product-name":"x"}}`))
		}))
		defer srv.Close()
		svc := NewPriceChartingService("test-key", srv.URL)

		_, err := svc.Lookup("x", "Super Nintendo")

		require.NoError(t, err)
		assert.Equal(t, "Super Nintendo", gotConsole)
	})
}

func TestCentsToDollars(t *testing.T) {
	assert.Equal(t, 0.0, centsToDollars(0))
	assert.Equal(t, 0.0, centsToDollars(-100))
	assert.Equal(t, 19.99, centsToDollars(1999))
}
