package deeplink

import (
	"net/url"
	"strconv"
	"strings"
)

// Form keys used by the page and the API.
const (
	KeyBank          = "bank"
	KeyAccountNo     = "accountNo"
	KeyHolder        = "holder"
	KeyAmount        = "amount"
	KeyMemo          = "memo"
	KeyOrigin        = "origin"
	KeyOriginPresent = "origin_present"
)

// Draft is the unsaved payment request entered by the user.
// It is a value type: every change goes through Apply and yields a new Draft.
// Holder is shown on the page but never encoded. Memo is sent as "message";
// support by the receiving app is unconfirmed.
type Draft struct {
	Bank             string `json:"bank"`
	AccountNo        string `json:"accountNo"`
	Holder           string `json:"holder"`
	Amount           int64  `json:"amount"`
	Memo             string `json:"memo,omitempty"`
	IncludeOriginTag bool   `json:"includeOriginTag"`
}

// Update is a single field mutation.
type Update func(Draft) Draft

func SetBank(v string) Update {
	return func(d Draft) Draft { d.Bank = v; return d }
}

func SetAccountNo(v string) Update {
	return func(d Draft) Draft { d.AccountNo = v; return d }
}

func SetHolder(v string) Update {
	return func(d Draft) Draft { d.Holder = v; return d }
}

func SetAmount(v int64) Update {
	return func(d Draft) Draft { d.Amount = v; return d }
}

func SetMemo(v string) Update {
	return func(d Draft) Draft { d.Memo = v; return d }
}

func SetIncludeOriginTag(v bool) Update {
	return func(d Draft) Draft { d.IncludeOriginTag = v; return d }
}

// Apply returns d with updates applied in order. d itself is not modified.
func Apply(d Draft, updates ...Update) Draft {
	for _, u := range updates {
		d = u(d)
	}
	return d
}

// FromValues starts from preset and applies one update per key present in v.
func FromValues(preset Draft, v url.Values) Draft {
	var updates []Update

	if _, ok := v[KeyBank]; ok {
		updates = append(updates, SetBank(v.Get(KeyBank)))
	}
	if _, ok := v[KeyAccountNo]; ok {
		updates = append(updates, SetAccountNo(v.Get(KeyAccountNo)))
	}
	if _, ok := v[KeyHolder]; ok {
		updates = append(updates, SetHolder(v.Get(KeyHolder)))
	}
	if _, ok := v[KeyAmount]; ok {
		updates = append(updates, SetAmount(ParseAmount(v.Get(KeyAmount))))
	}
	if _, ok := v[KeyMemo]; ok {
		updates = append(updates, SetMemo(v.Get(KeyMemo)))
	}

	// Unchecked checkboxes are not submitted, so the page sends a marker alongside.
	if _, ok := v[KeyOrigin]; ok {
		updates = append(updates, SetIncludeOriginTag(parseBool(v.Get(KeyOrigin))))
	} else if _, ok := v[KeyOriginPresent]; ok {
		updates = append(updates, SetIncludeOriginTag(false))
	}

	return Apply(preset, updates...)
}

// Values encodes d so that FromValues(anyPreset, d.Values()) == d.
func (d Draft) Values() url.Values {
	v := url.Values{}
	v.Set(KeyBank, d.Bank)
	v.Set(KeyAccountNo, d.AccountNo)
	v.Set(KeyHolder, d.Holder)
	v.Set(KeyAmount, strconv.FormatInt(d.Amount, 10))
	v.Set(KeyMemo, d.Memo)
	v.Set(KeyOriginPresent, "1")
	if d.IncludeOriginTag {
		v.Set(KeyOrigin, "1")
	}
	return v
}

// ParseAmount reads a base-10 integer. Anything else counts as a missing amount.
func ParseAmount(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
