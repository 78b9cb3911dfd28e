package http

import (
	"strings"
	"testing"
)

type sampleReq struct {
	Amount    float64 `validate:"required,gt=0,dec2"`
	LoanID    string  `validate:"required,hex32"`
	Frequency string  `validate:"required,frequency"`
}

func containsFieldMsg(errs []FieldError, field, fragment string) bool {
	for _, e := range errs {
		if e.Field == field && strings.Contains(e.Message, fragment) {
			return true
		}
	}
	return false
}

func TestValidate_AcceptsWellFormedRequest(t *testing.T) {
	cv := NewValidator()
	req := sampleReq{Amount: 1200.50, LoanID: strings.Repeat("a", 32), Frequency: "monthly"}
	if err := cv.Validate(&req); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidate_Hex32(t *testing.T) {
	cv := NewValidator()
	for _, bad := range []string{strings.Repeat("A", 32), strings.Repeat("a", 31), strings.Repeat("z", 32)} {
		req := sampleReq{Amount: 10, LoanID: bad, Frequency: "monthly"}
		err := cv.Validate(&req)
		if err == nil {
			t.Fatalf("loan id %q must fail", bad)
		}
		if !containsFieldMsg(ToFieldErrors(err), "LoanID", "32-char lowercase hex") {
			t.Fatalf("unexpected errors: %v", ToFieldErrors(err))
		}
	}
}

func TestValidate_Dec2(t *testing.T) {
	cv := NewValidator()
	req := sampleReq{Amount: 10.123, LoanID: strings.Repeat("a", 32), Frequency: "monthly"}
	err := cv.Validate(&req)
	if err == nil {
		t.Fatal("three decimal places must fail")
	}
	if !containsFieldMsg(ToFieldErrors(err), "Amount", "2 decimal places") {
		t.Fatalf("unexpected errors: %v", ToFieldErrors(err))
	}
}

func TestValidate_Frequency(t *testing.T) {
	cv := NewValidator()
	for _, ok := range []string{"monthly", "3_monthly", "one_time"} {
		req := sampleReq{Amount: 10, LoanID: strings.Repeat("a", 32), Frequency: ok}
		if err := cv.Validate(&req); err != nil {
			t.Fatalf("frequency %q must pass: %v", ok, err)
		}
	}
	req := sampleReq{Amount: 10, LoanID: strings.Repeat("a", 32), Frequency: "weekly"}
	err := cv.Validate(&req)
	if err == nil {
		t.Fatal("frequency weekly must fail")
	}
	if !containsFieldMsg(ToFieldErrors(err), "Frequency", "monthly, 3_monthly, one_time") {
		t.Fatalf("unexpected errors: %v", ToFieldErrors(err))
	}
}

func TestValidate_RequiredAndBounds(t *testing.T) {
	cv := NewValidator()
	req := sampleReq{}
	err := cv.Validate(&req)
	if err == nil {
		t.Fatal("zero value must fail")
	}
	errs := ToFieldErrors(err)
	if !containsFieldMsg(errs, "Amount", "is required") {
		t.Fatalf("unexpected errors: %v", errs)
	}

	bounded := createLoanReq{Amount: 100, TermMonths: 400, Frequency: "monthly", Purpose: "van"}
	err = cv.Validate(&bounded)
	if err == nil {
		t.Fatal("term 400 must fail")
	}
	if !containsFieldMsg(ToFieldErrors(err), "TermMonths", "less than or equal to 360") {
		t.Fatalf("unexpected errors: %v", ToFieldErrors(err))
	}
}
