package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Candidates int64
	Playouts   int64
}

type MetricsCollector interface {
	Start()
	AddCandidate()
	AddPlayout()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime  time.Time
	candidates atomic.Int64
	playouts   atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start resets the counters for a new search.
func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.candidates.Store(0)
	m.playouts.Store(0)
}

func (m *metricsCollector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *metricsCollector) AddPlayout() {
	m.playouts.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Candidates: m.candidates.Load(),
		Playouts:   m.playouts.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddCandidate()           {}
func (m *noMetricsCollector) AddPlayout()             {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
