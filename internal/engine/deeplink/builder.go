package deeplink

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Scheme    = "supertoss"
	Action    = "send"
	OriginTag = "qr"
)

// Build encodes d as a deep link. Parameters appear only when their field is set,
// always in the order amount, bank, accountNo, origin, message.
func Build(d Draft) string {
	var q query

	if d.Amount != 0 {
		q.add("amount", strconv.FormatInt(d.Amount, 10))
	}
	if d.Bank != "" {
		q.add("bank", d.Bank)
	}
	if d.AccountNo != "" {
		q.add("accountNo", d.AccountNo)
	}
	if d.IncludeOriginTag {
		q.add("origin", OriginTag)
	}
	// The receiving app may ignore message entirely.
	if d.Memo != "" {
		q.add("message", d.Memo)
	}

	return Scheme + "://" + Action + "?" + q.String()
}

// query keeps insertion order; url.Values.Encode sorts by key.
type query struct {
	pairs []string
}

func (q *query) add(key, value string) {
	q.pairs = append(q.pairs, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

func (q *query) String() string {
	return strings.Join(q.pairs, "&")
}
