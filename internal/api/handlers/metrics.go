package handlers

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

// Metrics counts what the service did. No draft values are recorded.
type Metrics struct {
	LinksBuilt      atomic.Int64
	QRRendered      atomic.Int64
	QRErrors        atomic.Int64
	Invocations     atomic.Int64
	InvokesRejected atomic.Int64
	PagesRendered   atomic.Int64
}

type MetricsHandler struct {
	metrics *Metrics
}

func NewMetricsHandler(metrics *Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Export writes the counters in Prometheus text format.
func (h *MetricsHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	fmt.Fprintf(w, "# HELP sendqr_up Is the server up\n")
	fmt.Fprintf(w, "# TYPE sendqr_up gauge\n")
	fmt.Fprintf(w, "sendqr_up 1\n")

	counters := []struct {
		name, help string
		value      int64
	}{
		{"sendqr_links_built_total", "Deep links built", h.metrics.LinksBuilt.Load()},
		{"sendqr_qr_rendered_total", "QR images served", h.metrics.QRRendered.Load()},
		{"sendqr_qr_errors_total", "QR render failures", h.metrics.QRErrors.Load()},
		{"sendqr_invocations_total", "Redirects to the deep link", h.metrics.Invocations.Load()},
		{"sendqr_invocations_rejected_total", "Invocations refused for invalid drafts", h.metrics.InvokesRejected.Load()},
		{"sendqr_pages_rendered_total", "Form pages rendered", h.metrics.PagesRendered.Load()},
	}
	for _, c := range counters {
		fmt.Fprintf(w, "# HELP %s %s\n", c.name, c.help)
		fmt.Fprintf(w, "# TYPE %s counter\n", c.name)
		fmt.Fprintf(w, "%s %d\n", c.name, c.value)
	}
}
