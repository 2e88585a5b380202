package deeplink

import (
	"net/url"
	"strings"
	"testing"
)

const encodedKookmin = "%EA%B5%AD%EB%AF%BC%EC%9D%80%ED%96%89"

func kookminDraft() Draft {
	return Draft{
		Bank:             "국민은행",
		AccountNo:        "93800201135927",
		Holder:           "전효준",
		Amount:           15000,
		IncludeOriginTag: true,
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		draft    Draft
		expected string
	}{
		{
			name:     "Preset With Origin",
			draft:    kookminDraft(),
			expected: "supertoss://send?amount=15000&bank=" + encodedKookmin + "&accountNo=93800201135927&origin=qr",
		},
		{
			name:     "Preset Without Origin",
			draft:    Apply(kookminDraft(), SetIncludeOriginTag(false)),
			expected: "supertoss://send?amount=15000&bank=" + encodedKookmin + "&accountNo=93800201135927",
		},
		{
			name:     "Zero Amount Omitted",
			draft:    Apply(kookminDraft(), SetAmount(0)),
			expected: "supertoss://send?bank=" + encodedKookmin + "&accountNo=93800201135927&origin=qr",
		},
		{
			name:     "Memo Appended Last",
			draft:    Apply(kookminDraft(), SetMemo("dues")),
			expected: "supertoss://send?amount=15000&bank=" + encodedKookmin + "&accountNo=93800201135927&origin=qr&message=dues",
		},
		{
			name:     "Negative Amount Still Encoded",
			draft:    Draft{Amount: -5},
			expected: "supertoss://send?amount=-5",
		},
		{
			name:     "Empty Draft",
			draft:    Draft{},
			expected: "supertoss://send?",
		},
		{
			name:     "Holder Never Encoded",
			draft:    Draft{Holder: "someone"},
			expected: "supertoss://send?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.draft)
			if got != tt.expected {
				t.Errorf("Build() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	d := Apply(kookminDraft(), SetMemo("모임 회비 & more"))
	first := Build(d)
	for i := 0; i < 10; i++ {
		if got := Build(d); got != first {
			t.Fatalf("Build() not deterministic: %s != %s", got, first)
		}
	}
}

func TestBuild_OriginToggleOnlyTouchesOrigin(t *testing.T) {
	drafts := []Draft{
		kookminDraft(),
		Apply(kookminDraft(), SetMemo("dues")),
		Apply(kookminDraft(), SetAmount(0), SetBank("")),
		{},
	}

	for _, d := range drafts {
		with := Build(Apply(d, SetIncludeOriginTag(true)))
		without := Build(Apply(d, SetIncludeOriginTag(false)))

		withPairs := queryPairs(t, with)
		withoutPairs := queryPairs(t, without)

		var stripped []string
		for _, p := range withPairs {
			if p != "origin=qr" {
				stripped = append(stripped, p)
			}
		}
		if len(stripped) != len(withPairs)-1 {
			t.Errorf("Expected exactly one origin=qr pair in %s", with)
		}
		if strings.Join(stripped, "&") != strings.Join(withoutPairs, "&") {
			t.Errorf("Origin toggle changed other params: %s vs %s", with, without)
		}
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	d := Draft{
		Bank:      "Bank & Trust = #1",
		AccountNo: "12 34/56?78",
		Amount:    1,
		Memo:      "점심값 50% + 커피 #2",
	}

	u, err := url.Parse(Build(d))
	if err != nil {
		t.Fatalf("Failed to parse link: %v", err)
	}
	if u.Scheme != Scheme || u.Host != Action {
		t.Errorf("Unexpected scheme/host: %s://%s", u.Scheme, u.Host)
	}

	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		t.Fatalf("Failed to parse query: %v", err)
	}

	checks := map[string]string{
		"amount":    "1",
		"bank":      d.Bank,
		"accountNo": d.AccountNo,
		"message":   d.Memo,
	}
	for key, want := range checks {
		if got := q.Get(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
	if _, ok := q["origin"]; ok {
		t.Error("Expected no origin param")
	}
}

func queryPairs(t *testing.T, link string) []string {
	t.Helper()
	idx := strings.Index(link, "?")
	if idx < 0 {
		t.Fatalf("No query in %s", link)
	}
	raw := link[idx+1:]
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "&")
}
