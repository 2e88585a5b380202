package handlers

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"sendqr/internal/engine/deeplink"
	"sendqr/internal/engine/qrimage"
	"sendqr/internal/pkg/errors"
)

type QRHandler struct {
	preset   deeplink.Draft
	renderer *qrimage.Renderer
	sizing   qrimage.Sizing
	metrics  *Metrics
}

func NewQRHandler(preset deeplink.Draft, renderer *qrimage.Renderer, sizing qrimage.Sizing, metrics *Metrics) *QRHandler {
	return &QRHandler{preset: preset, renderer: renderer, sizing: sizing, metrics: metrics}
}

// Get renders the link for the submitted draft. An explicit size wins over viewport.
func (h *QRHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	format, err := qrimage.ParseFormat(query.Get("format"))
	if err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
		return
	}

	size, err := h.size(query.Get("size"), query.Get("viewport"))
	if err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
		return
	}

	link := deeplink.Build(readDraft(r, h.preset))
	h.metrics.LinksBuilt.Add(1)

	img, err := h.renderer.Render(link, size, format)
	if err != nil {
		if stderrors.Is(err, qrimage.ErrInvalidSize) {
			errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
			return
		}
		if stderrors.Is(err, qrimage.ErrContentTooLong) {
			errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Link is too long for a QR code; shorten the memo", nil)
			return
		}
		h.metrics.QRErrors.Add(1)
		zerolog.Ctx(r.Context()).Error().Err(err).Int("size", size).Str("format", string(format)).Msg("failed to render qr code")
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to render QR code", nil)
		return
	}

	h.metrics.QRRendered.Add(1)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	w.Write(img)
}

func (h *QRHandler) size(sizeParam, viewportParam string) (int, error) {
	if sizeParam != "" {
		size, err := strconv.Atoi(sizeParam)
		if err != nil {
			return 0, qrimage.ErrInvalidSize
		}
		return size, nil
	}

	viewport := 0
	if viewportParam != "" {
		v, err := strconv.Atoi(viewportParam)
		if err != nil {
			return 0, stderrors.New("invalid viewport: must be an integer")
		}
		viewport = v
	}
	return qrimage.ResponsiveSize(viewport, h.sizing), nil
}
