package statement

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "github.com/nimeshpoudel7/enhancefund/internal/domain/statement"
)

const scotiaSample = `Scotiabank Visa Statement
001 May 27 May 28 BESTBUY # 926 MISSISSAUGA 122.39
002 May 29 May 30 GROCERY MART TORONTO 45.10
003 Jun 1 Jun 2 PAYMENT THANK YOU 150.00-
some footer line
`

const rbcSample = `RBC Royal Bank statement
May 27 May 28 TIM HORTONS TORONTO $4.50
May 30 May 31 PAYMENT - THANK YOU -$200.00
`

func fixedParser(year int) *TextParser {
	return &TextParser{now: func() time.Time {
		return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	}}
}

func TestParse_Scotia(t *testing.T) {
	p := fixedParser(2026)
	records, err := p.Parse(context.Background(), strings.NewReader(scotiaSample))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if records[0].Description != "BESTBUY # 926 MISSISSAUGA" || records[0].Amount != 122.39 {
		t.Fatalf("first record = %+v", records[0])
	}
	if records[0].Date.Year() != 2026 || records[0].Date.Month() != time.May || records[0].Date.Day() != 27 {
		t.Fatalf("first record date = %v", records[0].Date)
	}
	// trailing minus marks a credit
	if records[2].Amount != -150 {
		t.Fatalf("credit amount = %v, want -150", records[2].Amount)
	}
}

func TestParse_RBC(t *testing.T) {
	p := fixedParser(2026)
	records, err := p.Parse(context.Background(), strings.NewReader(rbcSample))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Amount != 4.50 {
		t.Fatalf("amount = %v, want 4.50", records[0].Amount)
	}
	if records[1].Amount != -200 {
		t.Fatalf("amount = %v, want -200", records[1].Amount)
	}
}

func TestParse_UnrecognizedFormat(t *testing.T) {
	p := NewTextParser()
	_, err := p.Parse(context.Background(), strings.NewReader("SOME OTHER BANK\nno rows here"))
	if !errors.Is(err, domain.ErrUnrecognizedFormat) {
		t.Fatalf("err = %v, want ErrUnrecognizedFormat", err)
	}
}

func TestParse_NoTransactions(t *testing.T) {
	p := NewTextParser()
	_, err := p.Parse(context.Background(), strings.NewReader("Scotiabank statement with no transaction rows"))
	if !errors.Is(err, domain.ErrNoTransactions) {
		t.Fatalf("err = %v, want ErrNoTransactions", err)
	}
}
