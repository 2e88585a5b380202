package deeplink

import (
	"net/url"
	"testing"
)

func TestApply_DoesNotMutate(t *testing.T) {
	original := kookminDraft()
	updated := Apply(original, SetBank("신한은행"), SetAmount(1))

	if original.Bank != "국민은행" || original.Amount != 15000 {
		t.Errorf("Apply() mutated the input draft: %+v", original)
	}
	if updated.Bank != "신한은행" || updated.Amount != 1 {
		t.Errorf("Apply() did not apply updates: %+v", updated)
	}
	if updated.AccountNo != original.AccountNo {
		t.Error("Apply() touched an untouched field")
	}
}

func TestFromValues(t *testing.T) {
	preset := kookminDraft()

	tests := []struct {
		name     string
		values   url.Values
		expected Draft
	}{
		{
			name:     "No Values Keeps Preset",
			values:   url.Values{},
			expected: preset,
		},
		{
			name:     "Override Bank And Memo",
			values:   url.Values{"bank": {"우리은행"}, "memo": {"dues"}},
			expected: Apply(preset, SetBank("우리은행"), SetMemo("dues")),
		},
		{
			name:     "Empty Amount Is Missing",
			values:   url.Values{"amount": {""}},
			expected: Apply(preset, SetAmount(0)),
		},
		{
			name:     "Garbage Amount Is Missing",
			values:   url.Values{"amount": {"12abc"}},
			expected: Apply(preset, SetAmount(0)),
		},
		{
			name:     "Amount With Spaces",
			values:   url.Values{"amount": {" 2500 "}},
			expected: Apply(preset, SetAmount(2500)),
		},
		{
			name:     "Origin Off Via Value",
			values:   url.Values{"origin": {"false"}},
			expected: Apply(preset, SetIncludeOriginTag(false)),
		},
		{
			name:     "Unchecked Checkbox",
			values:   url.Values{"origin_present": {"1"}},
			expected: Apply(preset, SetIncludeOriginTag(false)),
		},
		{
			name:     "Checked Checkbox",
			values:   url.Values{"origin_present": {"1"}, "origin": {"on"}},
			expected: preset,
		},
		{
			name:     "Clear Holder",
			values:   url.Values{"holder": {""}},
			expected: Apply(preset, SetHolder("")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromValues(preset, tt.values)
			if got != tt.expected {
				t.Errorf("FromValues() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := map[string]int64{
		"15000": 15000,
		"0":     0,
		"-3":    -3,
		"":      0,
		"1.5":   0,
		"abc":   0,
	}
	for in, want := range tests {
		if got := ParseAmount(in); got != want {
			t.Errorf("ParseAmount(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestValues_RoundTrip(t *testing.T) {
	drafts := []Draft{
		kookminDraft(),
		Apply(kookminDraft(), SetIncludeOriginTag(false), SetMemo("a&b=c")),
		{},
	}
	other := Draft{Bank: "x", AccountNo: "y", Holder: "z", Amount: 9, Memo: "m", IncludeOriginTag: true}

	for _, d := range drafts {
		if got := FromValues(other, d.Values()); got != d {
			t.Errorf("FromValues(Values()) = %+v, want %+v", got, d)
		}
	}
}
