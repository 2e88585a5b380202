package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"sendqr/internal/engine/deeplink"
	"sendqr/internal/engine/qrimage"
	"sendqr/internal/pkg/errors"
)

type PageHandler struct {
	tmpl     *template.Template
	preset   deeplink.Draft
	fallback deeplink.FallbackConfig
	sizing   qrimage.Sizing
	metrics  *Metrics
}

func NewPageHandler(tmpl *template.Template, preset deeplink.Draft, fallback deeplink.FallbackConfig, sizing qrimage.Sizing, metrics *Metrics) *PageHandler {
	return &PageHandler{tmpl: tmpl, preset: preset, fallback: fallback, sizing: sizing, metrics: metrics}
}

type pageData struct {
	Draft   deeplink.Draft
	Preview deeplink.Preview
	Device  deeplink.Device
	State   previewResponse
	Sizing  qrimage.Sizing
	QRSize  int
	QRURL   template.URL
}

// Render shows the form for the submitted draft, or the preset on a fresh load.
func (h *PageHandler) Render(w http.ResponseWriter, r *http.Request) {
	draft := readDraft(r, h.preset)
	state := newPreviewResponse(draft, h.fallback, r.UserAgent())
	h.metrics.LinksBuilt.Add(1)

	size := qrimage.ResponsiveSize(0, h.sizing)
	// Encode query-escapes every value, so the URL can be marked trusted.
	qrURL := template.URL("/api/v1/qr?" + draft.Values().Encode() + "&size=" + strconv.Itoa(size))

	data := pageData{
		Draft:   draft,
		Preview: state.Preview,
		Device:  state.Device,
		State:   state,
		Sizing:  h.sizing,
		QRSize:  size,
		QRURL:   qrURL,
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render page")
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to render page", nil)
		return
	}

	h.metrics.PagesRendered.Add(1)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
