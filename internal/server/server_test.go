package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fuelwatch/kayseri/pkg/api"
	"github.com/go-chi/httplog/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetcherFunc func(ctx context.Context) (api.PriceReport, error)

func (f fetcherFunc) FetchPrices(ctx context.Context) (api.PriceReport, error) {
	return f(ctx)
}

func testLogger() *httplog.Logger {
	return httplog.NewLogger("kayseri-test", httplog.Options{
		LogLevel: slog.LevelError,
		Concise:  true,
	})
}

func upstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func newRouter(t *testing.T, upstreamURL string) http.Handler {
	t.Helper()

	logger := testLogger()
	client := api.NewFuelPriceAPI(api.WithBaseURL(upstreamURL), api.WithLogger(logger.Logger))

	return New(client, logger, "tr").Router()
}

const fixturePage = `<html><body>
<table class="table-prices"><tbody>
<tr class="price-row district-03801" data-district-id="03801" data-district-name="AKKISLA">
<td>AKKIŞLA</td>
<td><span class="with-tax">48.10</span><span class="without-tax">40.09</span></td>
<td></td>
<td></td>
</tr>
</tbody></table>
</body></html>`

func TestPricesEndToEnd(t *testing.T) {
	up := upstream(t, http.StatusOK, fixturePage)

	rec := get(t, newRouter(t, up.URL), PricesPath)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{
		"district_id": "03801",
		"district_name": "AKKISLA",
		"fuel_95": {"with_tax": 48.10, "without_tax": 40.09},
		"diesel": {"with_tax": null, "without_tax": null},
		"autogas": {"with_tax": null, "without_tax": null}
	}]`, rec.Body.String())
}

func TestPricesUpstreamNotFound(t *testing.T) {
	up := upstream(t, http.StatusNotFound, "not found")

	rec := get(t, newRouter(t, up.URL), PricesPath)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Veriler çekilemedi veya sayfa yapısında değişiklik var."}`, rec.Body.String())
}

func TestPricesMissingTable(t *testing.T) {
	up := upstream(t, http.StatusOK, `<html><body><h1>Kayseri</h1></body></html>`)

	rec := get(t, newRouter(t, up.URL), PricesPath)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestPricesEmptyReport(t *testing.T) {
	up := upstream(t, http.StatusOK,
		`<table class="table-prices"><tbody><tr class="price-row"><td>a</td><td></td><td></td></tr></tbody></table>`)

	rec := get(t, newRouter(t, up.URL), PricesPath)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestPricesErrorIsGeneric(t *testing.T) {
	fetcher := fetcherFunc(func(context.Context) (api.PriceReport, error) {
		return nil, errors.New("dial tcp 10.0.0.1:443: connection refused")
	})

	rec := get(t, New(fetcher, testLogger(), "en").Router(), PricesPath)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Could not fetch the prices or the page structure has changed."}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestPricesFetchesOncePerRequest(t *testing.T) {
	calls := 0
	fetcher := fetcherFunc(func(context.Context) (api.PriceReport, error) {
		calls++
		return api.PriceReport{{DistrictID: "03801"}}, nil
	})
	router := New(fetcher, testLogger(), "tr").Router()

	for i := 0; i < 3; i++ {
		rec := get(t, router, PricesPath)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 3, calls)
}

func TestPricesRateLimited(t *testing.T) {
	fetcher := fetcherFunc(func(context.Context) (api.PriceReport, error) {
		return api.PriceReport{{DistrictID: "03801"}}, nil
	})
	router := New(fetcher, testLogger(), "tr").Router()

	for i := 0; i < requestsPerMinute; i++ {
		require.Equal(t, http.StatusOK, get(t, router, PricesPath).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(t, router, PricesPath).Code)
}

func TestHealth(t *testing.T) {
	fetcher := fetcherFunc(func(context.Context) (api.PriceReport, error) {
		t.Fatal("health check must not fetch prices")
		return nil, nil
	})

	rec := get(t, New(fetcher, testLogger(), "tr").Router(), HealthPath)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	fetcher := fetcherFunc(func(context.Context) (api.PriceReport, error) {
		return nil, nil
	})
	router := New(fetcher, testLogger(), "tr").Router()

	req := httptest.NewRequest(http.MethodPost, PricesPath, http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	fetcher := fetcherFunc(func(context.Context) (api.PriceReport, error) {
		return nil, nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(fetcher, testLogger(), "tr").ListenAndServe(ctx, Config{Addr: "127.0.0.1", Port: 0})
	assert.NoError(t, err)
}
