package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"sendqr/internal/engine/deeplink"
	"sendqr/internal/engine/qrimage"
)

type HealthHandler struct {
	renderer *qrimage.Renderer
}

func NewHealthHandler(renderer *qrimage.Renderer) *HealthHandler {
	return &HealthHandler{renderer: renderer}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	// Encode an empty draft's link to make sure the QR encoder works.
	if _, err := h.renderer.PNG(deeplink.Build(deeplink.Draft{}), qrimage.MinSize); err != nil {
		checks["qr_renderer"] = "unhealthy: " + err.Error()
	} else {
		checks["qr_renderer"] = "healthy"
	}

	status := "healthy"
	for _, check := range checks {
		if len(check) >= 9 && check[:9] == "unhealthy" {
			status = "degraded"
			break
		}
	}

	response := struct {
		Status    string            `json:"status"`
		Timestamp int64             `json:"timestamp"`
		Checks    map[string]string `json:"checks"`
	}{
		Status:    status,
		Timestamp: time.Now().Unix(),
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if status == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
