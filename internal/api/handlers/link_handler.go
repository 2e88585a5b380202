package handlers

import (
	"encoding/json"
	"net/http"

	"sendqr/internal/engine/deeplink"
)

type LinkHandler struct {
	preset   deeplink.Draft
	fallback deeplink.FallbackConfig
	metrics  *Metrics
}

func NewLinkHandler(preset deeplink.Draft, fallback deeplink.FallbackConfig, metrics *Metrics) *LinkHandler {
	return &LinkHandler{preset: preset, fallback: fallback, metrics: metrics}
}

type previewResponse struct {
	deeplink.Preview
	Draft        deeplink.Draft      `json:"draft"`
	Invocation   deeplink.Invocation `json:"invocation"`
	Device       deeplink.Device     `json:"device"`
	CopySuccess  string              `json:"copy_success"`
	CopyFallback string              `json:"copy_fallback"`
}

func newPreviewResponse(draft deeplink.Draft, fallback deeplink.FallbackConfig, userAgent string) previewResponse {
	preview := deeplink.Check(draft)
	return previewResponse{
		Preview:      preview,
		Draft:        draft,
		Invocation:   deeplink.PlanInvocation(preview.Link, fallback),
		Device:       deeplink.DeviceHint(userAgent),
		CopySuccess:  deeplink.CopySuccessMessage,
		CopyFallback: deeplink.CopyFallbackMessage(preview.Link),
	}
}

// Preview returns the link and warnings for the submitted draft.
// Invalid drafts still get a link; can_invoke says whether to enable the open button.
func (h *LinkHandler) Preview(w http.ResponseWriter, r *http.Request) {
	resp := newPreviewResponse(readDraft(r, h.preset), h.fallback, r.UserAgent())
	h.metrics.LinksBuilt.Add(1)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Text returns the bare link, for copying without the clipboard API.
func (h *LinkHandler) Text(w http.ResponseWriter, r *http.Request) {
	link := deeplink.Build(readDraft(r, h.preset))
	h.metrics.LinksBuilt.Add(1)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(link))
}
