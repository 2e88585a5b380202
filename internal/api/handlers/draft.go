package handlers

import (
	"net/http"

	"sendqr/internal/engine/deeplink"
	"sendqr/internal/platform/config"
)

// Preset turns the configured defaults into the starting draft.
func Preset(cfg config.PresetConfig) deeplink.Draft {
	return deeplink.Draft{
		Bank:             cfg.Bank,
		AccountNo:        cfg.AccountNo,
		Holder:           cfg.Holder,
		Amount:           cfg.Amount,
		Memo:             cfg.Memo,
		IncludeOriginTag: cfg.IncludeOriginTag,
	}
}

// readDraft applies the request's query and form fields on top of preset.
func readDraft(r *http.Request, preset deeplink.Draft) deeplink.Draft {
	if err := r.ParseForm(); err != nil {
		return deeplink.FromValues(preset, r.URL.Query())
	}
	return deeplink.FromValues(preset, r.Form)
}
