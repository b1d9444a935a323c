package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/guttosm/idxboard/internal/domain/models"
)

const (
	marketBody = `{"success":true,"data":{"stocks":[{"symbol":"AALI","price":6450,"change":-75,"changePercent":-1.15,"volume":1532000,"timestamp":"2025-03-31T00:00:00.000Z"}],"charts":{"labels":["2025-03"],"datasets":[{"label":"Close","data":[6450]}]},"lastUpdated":"2025-04-01T08:00:00.000Z"}}`
	summaryBody = `{"success":true,"data":{"emitten":"AALI","year":2024,"revenue":21000,"currency":"IDR"}}`
	newsBody    = `{"success":true,"data":{"variant":"iqplus","items":[{"title":"AALI cetak laba","summary":"","body":"","date":"2025-04-01"}]}}`
	failBody    = `{"success":false,"message":"Failed to fetch data from MongoDB"}`
)

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// dashboardHandler answers every route; failing marks routes that respond with 500.
func dashboardHandler(failing map[string]bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if failing[r.URL.Path] {
			writeJSON(w, http.StatusInternalServerError, failBody)
			return
		}
		switch r.URL.Path {
		case "/api/stock-data", "/api/stock-chart":
			writeJSON(w, http.StatusOK, marketBody)
		case "/api/financial-summary":
			if r.URL.Query().Get("stock") == "ZZZZ" {
				writeJSON(w, http.StatusNotFound, `{"success":false,"message":"Financial data not found for the specified stock and year"}`)
				return
			}
			writeJSON(w, http.StatusOK, summaryBody)
		case "/api/news":
			writeJSON(w, http.StatusOK, newsBody)
		default:
			http.NotFound(w, r)
		}
	}
}

func dashboardServer(t *testing.T, failing map[string]bool) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(dashboardHandler(failing))
	t.Cleanup(srv.Close)
	return srv
}

var fixedNow = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

func newTestClient(url string) *Client {
	c := New(url, time.Second)
	c.now = func() time.Time { return fixedNow }
	return c
}

func TestFetchData(t *testing.T) {
	c := newTestClient(dashboardServer(t, nil).URL)
	data := c.FetchData(context.Background())
	if len(data.Stocks) != 1 || data.Stocks[0].Symbol != "AALI" || data.Stocks[0].Volume != 1532000 {
		t.Fatalf("unexpected stocks: %+v", data.Stocks)
	}
	if data.LastUpdated != "2025-04-01T08:00:00.000Z" {
		t.Fatalf("lastUpdated=%q", data.LastUpdated)
	}
}

func TestFetchData_FallbackOnFailure(t *testing.T) {
	c := newTestClient(dashboardServer(t, map[string]bool{"/api/stock-data": true}).URL)
	data := c.FetchData(context.Background())
	if data.Stocks == nil || len(data.Stocks) != 0 {
		t.Fatalf("expected empty, non-nil stocks: %#v", data.Stocks)
	}
	if len(data.Charts.Labels) != 0 || len(data.Charts.Datasets) != 0 {
		t.Fatalf("expected empty chart: %+v", data.Charts)
	}
	if data.LastUpdated != "2025-04-01T08:00:00.000Z" {
		t.Fatalf("lastUpdated=%q", data.LastUpdated)
	}
}

func TestFetchData_FallbackOnUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	data := newTestClient(url).FetchData(context.Background())
	if len(data.Stocks) != 0 {
		t.Fatalf("expected empty stocks: %+v", data.Stocks)
	}
}

func TestFetchChart_SendsQuery(t *testing.T) {
	var period, stock string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, stock = r.URL.Query().Get("period"), r.URL.Query().Get("stock")
		writeJSON(w, http.StatusOK, marketBody)
	}))
	defer srv.Close()

	chart := newTestClient(srv.URL).FetchChart(context.Background(), models.Monthly, "AALI")
	if period != "monthly" || stock != "AALI" {
		t.Fatalf("query period=%q stock=%q", period, stock)
	}
	if len(chart.Labels) != 1 || chart.Labels[0] != "2025-03" || chart.Datasets[0].Data[0] != 6450 {
		t.Fatalf("unexpected chart: %+v", chart)
	}
}

func TestFetchChart_FallbackOnUnsuccessfulEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":false}`)
	}))
	defer srv.Close()

	chart := newTestClient(srv.URL).FetchChart(context.Background(), models.Daily, "AALI")
	if chart.Labels == nil || len(chart.Labels) != 0 || len(chart.Datasets) != 0 {
		t.Fatalf("expected empty chart: %+v", chart)
	}
}

func TestFetchNews(t *testing.T) {
	c := newTestClient(dashboardServer(t, nil).URL)
	items := c.FetchNews(context.Background())
	if len(items) != 1 || items[0].Title != "AALI cetak laba" {
		t.Fatalf("unexpected items: %+v", items)
	}

	c = newTestClient(dashboardServer(t, map[string]bool{"/api/news": true}).URL)
	if items := c.FetchNews(context.Background()); items == nil || len(items) != 0 {
		t.Fatalf("expected empty, non-nil items: %#v", items)
	}
}

func TestFetchSummary(t *testing.T) {
	c := newTestClient(dashboardServer(t, map[string]bool{}).URL)

	s, err := c.FetchSummary(context.Background(), "2024", "AALI")
	if err != nil || s == nil {
		t.Fatalf("summary=%v err=%v", s, err)
	}
	if s.Emitten != "AALI" || s.Year != 2024 || s.Revenue != 21000 || s.Currency != "IDR" {
		t.Fatalf("unexpected summary: %+v", s)
	}

	s, err = c.FetchSummary(context.Background(), "2024", "ZZZZ")
	if err != nil || s != nil {
		t.Fatalf("expected not found as nil, nil; got %v %v", s, err)
	}
}

func TestFetchSummary_ServerError(t *testing.T) {
	c := newTestClient(dashboardServer(t, map[string]bool{"/api/financial-summary": true}).URL)

	_, err := c.FetchSummary(context.Background(), "2024", "AALI")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusInternalServerError || apiErr.Message != "Failed to fetch data from MongoDB" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestLoadDashboard(t *testing.T) {
	var hits atomic.Int32
	h := dashboardHandler(map[string]bool{"/api/news": true})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		h(w, r)
	}))
	defer srv.Close()

	d, err := newTestClient(srv.URL).LoadDashboard(context.Background(), models.Monthly, "AALI", "2024")
	if err != nil {
		t.Fatalf("LoadDashboard: %v", err)
	}
	if hits.Load() != 4 {
		t.Fatalf("expected 4 requests, got %d", hits.Load())
	}
	if len(d.Market.Stocks) != 1 || len(d.Chart.Labels) != 1 || d.Summary == nil || len(d.News) != 0 {
		t.Fatalf("unexpected dashboard: %+v", d)
	}
}

func TestLoadDashboard_SummaryFailure(t *testing.T) {
	c := newTestClient(dashboardServer(t, map[string]bool{"/api/financial-summary": true}).URL)
	if _, err := c.LoadDashboard(context.Background(), models.Daily, "AALI", "2024"); err == nil {
		t.Fatalf("expected error when the financial summary fails")
	}
}
