package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	exportsPDFTotal    atomic.Uint64
	exportsDOCXTotal   atomic.Uint64
	exportsFailedTotal atomic.Uint64
	draftsCreatedTotal atomic.Uint64
	draftsEvictedTotal atomic.Uint64
	draftsActive       atomic.Int64

	exportDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500})
)

// IncExport increments the completed export counter for a format.
func IncExport(format string) {
	switch format {
	case "pdf":
		exportsPDFTotal.Add(1)
	case "docx":
		exportsDOCXTotal.Add(1)
	}
}

// IncExportFailed increments the failed export counter.
func IncExportFailed() {
	exportsFailedTotal.Add(1)
}

// ObserveExportDurationMs records a render duration in milliseconds.
func ObserveExportDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	exportDuration.Observe(value)
}

// IncDraftCreated counts a new draft and raises the active gauge.
func IncDraftCreated() {
	draftsCreatedTotal.Add(1)
	draftsActive.Add(1)
}

// DraftsRemoved lowers the active gauge. Evicted drafts are counted separately.
func DraftsRemoved(n int, evicted bool) {
	if n <= 0 {
		return
	}
	draftsActive.Add(-int64(n))
	if evicted {
		draftsEvictedTotal.Add(uint64(n))
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# HELP resume_exports_total Total exports rendered\n")
	fmt.Fprintf(&buf, "# TYPE resume_exports_total counter\n")
	fmt.Fprintf(&buf, "resume_exports_total{format=\"pdf\"} %d\n", exportsPDFTotal.Load())
	fmt.Fprintf(&buf, "resume_exports_total{format=\"docx\"} %d\n", exportsDOCXTotal.Load())
	writeCounter(&buf, "resume_exports_failed_total", "Total exports that failed to render", exportsFailedTotal.Load())
	writeHistogram(&buf, "resume_export_duration_ms", "Export render duration in milliseconds", exportDuration.Snapshot())
	writeCounter(&buf, "resume_drafts_created_total", "Total drafts created", draftsCreatedTotal.Load())
	writeCounter(&buf, "resume_drafts_evicted_total", "Total drafts evicted after inactivity", draftsEvictedTotal.Load())
	fmt.Fprintf(&buf, "# HELP resume_drafts_active Drafts currently held in memory\n")
	fmt.Fprintf(&buf, "# TYPE resume_drafts_active gauge\n")
	fmt.Fprintf(&buf, "resume_drafts_active %d\n", draftsActive.Load())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	// Observe already counts a value in every bucket at or above it.
	for i, bound := range snap.buckets {
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), snap.counts[i])
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// SinceMillis returns the milliseconds elapsed since start.
func SinceMillis(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
