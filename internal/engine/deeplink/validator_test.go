package deeplink

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		draft  Draft
		fields []string
	}{
		{
			name:   "Valid Draft",
			draft:  kookminDraft(),
			fields: nil,
		},
		{
			name:   "Memo And Holder Never Required",
			draft:  Apply(kookminDraft(), SetHolder(""), SetMemo("")),
			fields: nil,
		},
		{
			name:   "Blank Bank",
			draft:  Apply(kookminDraft(), SetBank("   ")),
			fields: []string{KeyBank},
		},
		{
			name:   "Blank Account",
			draft:  Apply(kookminDraft(), SetAccountNo("\t")),
			fields: []string{KeyAccountNo},
		},
		{
			name:   "Zero Amount",
			draft:  Apply(kookminDraft(), SetAmount(0)),
			fields: []string{KeyAmount},
		},
		{
			name:   "Negative Amount",
			draft:  Apply(kookminDraft(), SetAmount(-100)),
			fields: []string{KeyAmount},
		},
		{
			name:   "Everything Missing",
			draft:  Draft{},
			fields: []string{KeyBank, KeyAccountNo, KeyAmount},
		},
		{
			name:   "Bank And Amount Missing",
			draft:  Draft{AccountNo: "1"},
			fields: []string{KeyBank, KeyAmount},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.draft)
			if len(got) != len(tt.fields) {
				t.Fatalf("Validate() returned %d warnings, want %d: %v", len(got), len(tt.fields), got)
			}
			for i, w := range got {
				if w.Field != tt.fields[i] {
					t.Errorf("warning[%d].Field = %s, want %s", i, w.Field, tt.fields[i])
				}
				if w.Message == "" {
					t.Errorf("warning[%d] has empty message", i)
				}
			}
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	got := Validate(Draft{})
	want := []string{MsgBankRequired, MsgAccountRequired, MsgAmountInvalid}
	for i := range want {
		if got[i].Message != want[i] {
			t.Errorf("message[%d] = %q, want %q", i, got[i].Message, want[i])
		}
	}
}

func TestCheck(t *testing.T) {
	valid := Check(kookminDraft())
	if !valid.CanInvoke {
		t.Error("Expected valid draft to be invokable")
	}
	if len(valid.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", valid.Warnings)
	}

	// Invalid drafts still get a preview link.
	invalid := Check(Apply(kookminDraft(), SetAmount(0)))
	if invalid.CanInvoke {
		t.Error("Expected invalid draft not to be invokable")
	}
	if invalid.Link != Build(Apply(kookminDraft(), SetAmount(0))) {
		t.Errorf("Unexpected preview link %s", invalid.Link)
	}
	if invalid.Warnings == nil {
		t.Error("Expected non-nil warnings slice")
	}
}
