package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"exec-planner/internal/domain"
	"exec-planner/internal/observability"
	"exec-planner/internal/simulation"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	assembler := simulation.NewAssembler(simulation.Options{CacheSize: 64})
	srv := New(assembler, domain.DefaultMarketSnapshot, observability.NewMetrics(), zap.NewNop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postQuote(t *testing.T, ts *httptest.Server, req domain.OrderRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	resp, err := http.Post(ts.URL+"/api/v1/quote", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestQuoteEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postQuote(t, ts, domain.OrderRequest{
		PayAmount:            "10",
		PayAsset:             "ETH",
		Mode:                 domain.ModeSwap,
		GasTier:              domain.GasStandard,
		SlippageTolerancePct: 0.5,
		AvailableBalance:     100,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.SimulationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, domain.ModeSwap, result.Mode)
	assert.NotEmpty(t, result.QuoteID)
	assert.NotNil(t, result.Swap)
	assert.True(t, result.Confirmation.CanConfirm)
}

func TestQuoteEndpointBadBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/v1/quote", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuoteEndpointInvalidMode(t *testing.T) {
	ts := newTestServer(t)

	resp := postQuote(t, ts, domain.OrderRequest{
		PayAmount: "10",
		Mode:      "FLASH",
		GasTier:   domain.GasStandard,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	// Compute one quote so the mode counter has a sample.
	resp := postQuote(t, ts, domain.OrderRequest{
		PayAmount: "10",
		Mode:      domain.ModeSwap,
		GasTier:   domain.GasStandard,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	mresp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer mresp.Body.Close()
	require.Equal(t, http.StatusOK, mresp.StatusCode)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(mresp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `exec_planner_engine_quotes_computed_total{mode="SWAP"} 1`)
}

func TestQuoteStream(t *testing.T) {
	ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/quotes"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	req := domain.OrderRequest{
		PayAmount:            "10",
		PayAsset:             "ETH",
		Mode:                 domain.ModeSwap,
		GasTier:              domain.GasStandard,
		SlippageTolerancePct: 0.5,
		AvailableBalance:     100,
	}
	require.NoError(t, conn.WriteJSON(req))

	var result domain.SimulationResult
	require.NoError(t, conn.ReadJSON(&result))
	assert.Equal(t, domain.ModeSwap, result.Mode)
	assert.NotNil(t, result.Swap)

	// An invalid request reports in-band and keeps the session open.
	req.Mode = domain.ModeLimit
	req.Limit = nil
	require.NoError(t, conn.WriteJSON(req))

	var serr streamError
	require.NoError(t, conn.ReadJSON(&serr))
	assert.NotEmpty(t, serr.Error)

	// Session still serves quotes afterwards.
	req.Mode = domain.ModeSwap
	require.NoError(t, conn.WriteJSON(req))
	require.NoError(t, conn.ReadJSON(&result))
	assert.Equal(t, domain.ModeSwap, result.Mode)
}
