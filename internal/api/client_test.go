package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClient(t *testing.T) {
	c := NewClient("http://localhost:8001/", 0)
	if c.BaseURL() != "http://localhost:8001" {
		t.Errorf("expected trailing slash trimmed, got %q", c.BaseURL())
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", c.httpClient.Timeout)
	}
}

func TestStats(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/api/stats": `{"leagues":3,"currencies":40,"bases":1200,"modifiers":800,"exchange_rates":17,
			"profit_opportunities":5,"scheduler_active":true,"scheduler_jobs":2,"timestamp":"2025-01-02T03:04:05.123456"}`,
	})
	c := NewClient(srv.URL, time.Second)

	stats, err := c.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if stats.Bases != 1200 || stats.ExchangeRates != 17 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if !stats.SchedulerActive {
		t.Error("expected scheduler_active true")
	}
	if stats.Timestamp == nil || stats.Timestamp.Year() != 2025 {
		t.Errorf("expected naive timestamp to parse, got %v", stats.Timestamp)
	}
}

func TestBasesSendsLimit(t *testing.T) {
	var gotLimit, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"count":2,"bases":[{"id":1,"name":"Leather Belt","required_level":null},{"id":2,"name":"Iron Hat","required_level":12}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	bases, err := c.Bases(context.Background(), 500)
	if err != nil {
		t.Fatalf("Bases() error: %v", err)
	}
	if gotLimit != "500" {
		t.Errorf("expected limit=500, got %q", gotLimit)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", gotContentType)
	}
	if len(bases.Bases) != 2 {
		t.Fatalf("expected 2 bases, got %d", len(bases.Bases))
	}
	if bases.Bases[0].RequiredLevel != nil {
		t.Error("null required_level should decode to nil")
	}
	if bases.Bases[1].RequiredLevel == nil || *bases.Bases[1].RequiredLevel != 12 {
		t.Errorf("expected required_level 12, got %v", bases.Bases[1].RequiredLevel)
	}
}

func TestDefaultLimits(t *testing.T) {
	var gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(`{"count":0,"opportunities":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.ProfitOpportunities(context.Background(), 0); err != nil {
		t.Fatalf("ProfitOpportunities() error: %v", err)
	}
	if gotLimit != "10" {
		t.Errorf("expected default limit 10, got %q", gotLimit)
	}
}

func TestExchangeRatesMessage(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/api/exchange-rates": `{"message":"No exchange rates available yet"}`,
	})
	c := NewClient(srv.URL, time.Second)

	rates, err := c.ExchangeRates(context.Background())
	if err != nil {
		t.Fatalf("ExchangeRates() error: %v", err)
	}
	if rates.Available() {
		t.Error("rates with message should not be available")
	}
}

func TestOpportunitiesNullableFields(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/api/profit-opportunities": `{"count":1,"opportunities":[{"id":7,"base_cost":1.5,"crafting_cost":null,
			"sale_price":9.25,"net_profit":7.75,"roi":516.6,"success_rate":0.42,"risk":null}]}`,
	})
	c := NewClient(srv.URL, time.Second)

	opps, err := c.ProfitOpportunities(context.Background(), 10)
	if err != nil {
		t.Fatalf("ProfitOpportunities() error: %v", err)
	}
	o := opps.Opportunities[0]
	if o.CraftingCost != nil {
		t.Error("expected nil crafting cost")
	}
	if o.NetProfit == nil || *o.NetProfit != 7.75 {
		t.Errorf("expected net profit 7.75, got %v", o.NetProfit)
	}
	if o.Risk != "" {
		t.Errorf("null risk should decode to empty string, got %q", o.Risk)
	}
}

func TestSchedulerStatus(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/api/scheduler/status": `{"running":true,"jobs_count":2,"jobs":[
			{"id":"collect_prices","name":"Collect prices","next_run":"2025-03-01T10:00:00+09:00"},
			{"id":"analyze","name":null,"next_run":null}]}`,
	})
	c := NewClient(srv.URL, time.Second)

	st, err := c.SchedulerStatus(context.Background())
	if err != nil {
		t.Fatalf("SchedulerStatus() error: %v", err)
	}
	if !st.Running || st.JobsCount != 2 {
		t.Errorf("unexpected status: %+v", st)
	}
	if st.Jobs[0].NextRun == nil || st.Jobs[0].NextRun.Hour() != 10 {
		t.Errorf("expected zoned next_run, got %v", st.Jobs[0].NextRun)
	}
	if st.Jobs[1].NextRun != nil {
		t.Error("expected nil next_run for second job")
	}
}

func TestHTTPStatusError(t *testing.T) {
	srv := newTestServer(t, map[string]string{})
	c := NewClient(srv.URL, time.Second)

	_, err := c.Stats(context.Background())
	if err == nil {
		t.Fatal("expected error for 404")
	}
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransportError, got %T", err)
	}
	if te.Kind != KindHTTPStatus || te.StatusCode != http.StatusNotFound {
		t.Errorf("expected HTTP_STATUS 404, got %s %d", te.Kind, te.StatusCode)
	}
	if StatusCode(err) != 404 {
		t.Errorf("StatusCode() = %d, want 404", StatusCode(err))
	}
}

func TestDecodeError(t *testing.T) {
	srv := newTestServer(t, map[string]string{"/health": `{"status":`})
	c := NewClient(srv.URL, time.Second)

	_, err := c.Health(context.Background())
	var te *TransportError
	if !errors.As(err, &te) || te.Kind != KindDecode {
		t.Fatalf("expected DECODE error, got %v", err)
	}
}

func TestTimeoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond)
	_, err := c.Stats(context.Background())
	if !IsTimeout(err) {
		t.Fatalf("expected TIMEOUT, got %v", err)
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	_, err := c.Info(context.Background())
	var te *TransportError
	if !errors.As(err, &te) || te.Kind != KindNetwork {
		t.Fatalf("expected NETWORK error, got %v", err)
	}
}

func TestTimestampMarshal(t *testing.T) {
	var ts Timestamp
	b, err := ts.MarshalJSON()
	if err != nil || string(b) != "null" {
		t.Errorf("zero timestamp should marshal to null, got %s (%v)", b, err)
	}
	if err := ts.UnmarshalJSON([]byte(`"not a time"`)); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}
