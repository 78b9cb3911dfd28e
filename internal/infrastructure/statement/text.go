package statement

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	domain "github.com/nimeshpoudel7/enhancefund/internal/domain/statement"
)

// TextParser turns extracted bank-statement text into transaction
// records. Upstream PDF extraction is out of scope; callers hand in
// plain text.
type TextParser struct {
	now func() time.Time
}

func NewTextParser() *TextParser { return &TextParser{now: time.Now} }

var (
	scotiaLine = regexp.MustCompile(`(\d{3})\s+([A-Za-z]{3}\s\d{1,2})\s+([A-Za-z]{3}\s\d{1,2})\s+(.*?)\s+(-?\d+\.\d{2}-?)\s*$`)
	rbcLine    = regexp.MustCompile(`([A-Za-z]{3}\s\d{1,2})\s+([A-Za-z]{3}\s\d{1,2})\s+(.*?)\s+(-?\$?\d[\d,]*\.\d{2})\s*$`)
)

func (p *TextParser) Parse(ctx context.Context, r io.Reader) ([]domain.Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}
	text := string(raw)

	var records []domain.Record
	switch {
	case strings.Contains(strings.ToLower(text), "scotia"):
		records = p.parseLines(text, scotiaLine, 2, 4, 5)
	case strings.Contains(text, "RBC"):
		records = p.parseLines(text, rbcLine, 1, 3, 4)
	default:
		return nil, domain.ErrUnrecognizedFormat
	}
	if len(records) == 0 {
		return nil, domain.ErrNoTransactions
	}
	return records, nil
}

// parseLines matches each line against the bank's row pattern, using
// the given capture-group indexes for date, description and amount.
func (p *TextParser) parseLines(text string, re *regexp.Regexp, dateIdx, descIdx, amtIdx int) []domain.Record {
	var out []domain.Record
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		m := re.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		date, ok := p.parseDate(m[dateIdx])
		if !ok {
			continue
		}
		amount, ok := parseAmount(m[amtIdx])
		if !ok {
			continue
		}
		out = append(out, domain.Record{
			Date:        date,
			Description: strings.TrimSpace(m[descIdx]),
			Amount:      amount,
		})
	}
	return out
}

var dateFormats = []string{"Jan 2", "Jan 2/06", "2 Jan", "2-Jan"}

// Statement rows omit the year; assume the current one.
func (p *TextParser) parseDate(s string) (time.Time, bool) {
	for _, fmtStr := range dateFormats {
		d, err := time.Parse(fmtStr, s)
		if err != nil {
			continue
		}
		if d.Year() == 0 {
			d = d.AddDate(p.now().UTC().Year(), 0, 0)
		}
		return d, true
	}
	return time.Time{}, false
}

// Trailing '-' marks a credit on Scotia rows.
func parseAmount(s string) (float64, bool) {
	neg := false
	if strings.HasSuffix(s, "-") {
		neg = true
		s = strings.TrimSuffix(s, "-")
	}
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimPrefix(s, "-")
	}
	s = strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}
