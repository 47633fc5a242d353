package observability

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	errorCount    map[string]int64
	totalDuration map[string]time.Duration
}

// MetricSample is one counter in a snapshot.
type MetricSample struct {
	Route   string  `json:"route"`
	Method  string  `json:"method"`
	Label   string  `json:"label"`
	Count   int64   `json:"count"`
	AvgMsec float64 `json:"avg_ms,omitempty"`
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Requests []MetricSample `json:"requests"`
	Errors   []MetricSample `json:"errors"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:  make(map[string]int64),
		errorCount:    make(map[string]int64),
		totalDuration: make(map[string]time.Duration),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := metricKey(path, method, strconv.Itoa(status))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.totalDuration[key] += duration
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := metricKey(path, method, code)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// Snapshot copies the counters, sorted by key.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Requests: make([]MetricSample, 0, len(m.requestCount)),
		Errors:   make([]MetricSample, 0, len(m.errorCount)),
	}
	for key, count := range m.requestCount {
		sample := sampleFromKey(key, count)
		if count > 0 {
			sample.AvgMsec = float64(m.totalDuration[key].Microseconds()) / float64(count) / 1000
		}
		snap.Requests = append(snap.Requests, sample)
	}
	for key, count := range m.errorCount {
		snap.Errors = append(snap.Errors, sampleFromKey(key, count))
	}
	sortSamples(snap.Requests)
	sortSamples(snap.Errors)
	return snap
}

func metricKey(path, method, label string) string {
	return path + "|" + method + "|" + label
}

func sampleFromKey(key string, count int64) MetricSample {
	parts := strings.SplitN(key, "|", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return MetricSample{Route: parts[0], Method: parts[1], Label: parts[2], Count: count}
}

func sortSamples(samples []MetricSample) {
	sort.Slice(samples, func(i, j int) bool {
		return metricKey(samples[i].Route, samples[i].Method, samples[i].Label) <
			metricKey(samples[j].Route, samples[j].Method, samples[j].Label)
	})
}
