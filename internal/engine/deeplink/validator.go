package deeplink

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgBankRequired    = "Enter the bank name."
	MsgAccountRequired = "Enter the account number."
	MsgAmountInvalid   = "Amount must be at least 1 won."
)

// Warning is a human-readable problem with one draft field.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// draftRules holds the fields that gate invocation. Holder and memo are never required.
type draftRules struct {
	Bank      string `validate:"notblank"`
	AccountNo string `validate:"notblank"`
	Amount    int64  `validate:"gt=0"`
}

var fieldWarnings = map[string]Warning{
	"Bank":      {Field: KeyBank, Message: MsgBankRequired},
	"AccountNo": {Field: KeyAccountNo, Message: MsgAccountRequired},
	"Amount":    {Field: KeyAmount, Message: MsgAmountInvalid},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate returns one warning per invalid field, in the order bank, accountNo, amount.
// An empty result means the draft may be invoked.
func Validate(d Draft) []Warning {
	err := validate.Struct(draftRules{
		Bank:      d.Bank,
		AccountNo: d.AccountNo,
		Amount:    d.Amount,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	warnings := make([]Warning, 0, len(verrs))
	for _, fe := range verrs {
		if w, ok := fieldWarnings[fe.StructField()]; ok {
			warnings = append(warnings, w)
		}
	}
	return warnings
}

// Preview is everything the page needs to show for a draft.
type Preview struct {
	Link      string    `json:"link"`
	Warnings  []Warning `json:"warnings"`
	CanInvoke bool      `json:"can_invoke"`
}

// Check builds the link regardless of validity and reports whether it may be invoked.
func Check(d Draft) Preview {
	warnings := Validate(d)
	if warnings == nil {
		warnings = []Warning{}
	}
	return Preview{
		Link:      Build(d),
		Warnings:  warnings,
		CanInvoke: len(warnings) == 0,
	}
}
