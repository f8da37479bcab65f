package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestHTTPMetricsExportsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	m.Observe("GET", "/admin/catalog", "products", 200, 120*time.Millisecond)
	m.Observe("GET", "/admin/catalog", "products", 200, 80*time.Millisecond)
	m.Observe("POST", "", "", 404, time.Millisecond)
	m.Observe("GET", "/catalog", "x' OR 1=1", 404, time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	got, err := fetchCounterValue(mfs, "catalog_http_requests_total", map[string]string{
		"method": "GET", "route": "/admin/catalog", "resource": "products", "status": "200",
	})
	if err != nil {
		t.Fatalf("fetch requests: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected requests=2, got %f", got)
	}

	got, err = fetchCounterValue(mfs, "catalog_http_requests_total", map[string]string{
		"route": "none", "resource": "none", "status": "404",
	})
	if err != nil {
		t.Fatalf("fetch unmatched: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected unmatched=1, got %f", got)
	}

	got, err = fetchCounterValue(mfs, "catalog_http_requests_total", map[string]string{
		"route": "/catalog", "resource": "other",
	})
	if err != nil {
		t.Fatalf("fetch bounded resource: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected other=1, got %f", got)
	}

	mf := findMetricFamily(mfs, "catalog_http_request_duration_seconds")
	if mf == nil {
		t.Fatal("duration histogram not exported")
	}
	var count uint64
	for _, metric := range mf.GetMetric() {
		count += metric.GetHistogram().GetSampleCount()
	}
	if count != 4 {
		t.Fatalf("expected 4 samples, got %d", count)
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	m := NewHTTPMetrics(nil)
	m.Observe("GET", "/health", "", 200, time.Millisecond)

	var none *HTTPMetrics
	none.Observe("GET", "/health", "", 200, time.Millisecond)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing labels %v", name, labels)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	matched := 0
	for _, p := range pairs {
		if v, ok := want[p.GetName()]; ok {
			if v != p.GetValue() {
				return false
			}
			matched++
		}
	}
	return matched == len(want)
}
