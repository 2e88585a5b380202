package handlers

import (
	"net/http"

	"sendqr/internal/engine/deeplink"
	"sendqr/internal/pkg/errors"
)

type OpenHandler struct {
	preset  deeplink.Draft
	metrics *Metrics
}

func NewOpenHandler(preset deeplink.Draft, metrics *Metrics) *OpenHandler {
	return &OpenHandler{preset: preset, metrics: metrics}
}

// Open sends the browser to the deep link. Whether the app handled it is unknowable,
// so nothing else happens after the redirect.
func (h *OpenHandler) Open(w http.ResponseWriter, r *http.Request) {
	preview := deeplink.Check(readDraft(r, h.preset))
	h.metrics.LinksBuilt.Add(1)

	if !preview.CanInvoke {
		h.metrics.InvokesRejected.Add(1)
		errors.WriteError(w, http.StatusUnprocessableEntity, errors.ErrCodeValidationFailed, "Payment details are incomplete", preview.Warnings)
		return
	}

	h.metrics.Invocations.Add(1)
	w.Header().Set("Location", preview.Link)
	w.WriteHeader(http.StatusFound)
}
