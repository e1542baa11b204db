package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/pzhefer/wealthflow/dto"
)

// ErrBadAmountCapture reports a labeled-total pattern whose captured group
// failed to parse as a number. The patterns only capture digit sequences, so
// hitting this means a pattern and its parser have drifted apart.
var ErrBadAmountCapture = errors.New("amount pattern captured a non-numeric value")

// Known-merchant patterns, tried in priority order against the top lines of
// the receipt. Each pattern covers the spelling variants of one brand; the
// capture group preserves the name as printed.
var merchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(WAL[\s\-]?MART)\b`),
	regexp.MustCompile(`(?i)\b(TARGET)\b`),
	regexp.MustCompile(`(?i)\b(STARBUCKS(?:\s+COFFEE)?)\b`),
	regexp.MustCompile(`(?i)\b(MCDONALD'?S)\b`),
	regexp.MustCompile(`(?i)\b(COSTCO(?:\s+WHOLESALE)?)\b`),
	regexp.MustCompile(`(?i)\b(WALGREENS)\b`),
	regexp.MustCompile(`(?i)\b(CVS(?:\s*/?\s*PHARMACY)?)\b`),
	regexp.MustCompile(`(?i)\b(SHELL)\b`),
	regexp.MustCompile(`(?i)\b(CHEVRON)\b`),
	regexp.MustCompile(`(?i)\b(EXXON(?:\s*MOBIL)?)\b`),
	regexp.MustCompile(`(?i)\b(WHOLE\s+FOODS(?:\s+MARKET)?)\b`),
	regexp.MustCompile(`(?i)\b(TRADER\s+JOE'?S)\b`),
	regexp.MustCompile(`(?i)\b(KROGER)\b`),
	regexp.MustCompile(`(?i)\b(SAFEWAY)\b`),
	regexp.MustCompile(`(?i)\b(HOME\s+DEPOT)\b`),
	regexp.MustCompile(`(?i)\b(BEST\s+BUY)\b`),
	regexp.MustCompile(`(?i)\b(AMAZON(?:\.COM)?)\b`),
	regexp.MustCompile(`(?i)\b(7[\s\-]?ELEVEN)\b`),
	regexp.MustCompile(`(?i)\b(DUNKIN'?(?:\s+DONUTS)?)\b`),
	regexp.MustCompile(`(?i)\b(CHIPOTLE)\b`),
	regexp.MustCompile(`(?i)\b(SUBWAY)\b`),
	regexp.MustCompile(`(?i)\b(UBER(?:\s+EATS)?)\b`),
}

// Labeled-total patterns in priority order. Specific labels come before the
// bare ones so "GRAND TOTAL" resolves before a plain "TOTAL" would.
var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)GRAND\s*TOTAL\s*:?\s*\$?\s*([0-9,]+\.\d{2})`),
	regexp.MustCompile(`(?i)TOTAL\s*DUE\s*:?\s*\$?\s*([0-9,]+\.\d{2})`),
	regexp.MustCompile(`(?i)BALANCE\s*DUE\s*:?\s*\$?\s*([0-9,]+\.\d{2})`),
	regexp.MustCompile(`(?i)AMOUNT\s*DUE\s*:?\s*\$?\s*([0-9,]+\.\d{2})`),
	regexp.MustCompile(`(?i)\bTOTAL\b\s*:?\s*\$?\s*([0-9,]+\.\d{2})`),
	regexp.MustCompile(`(?i)\bAMOUNT\b\s*:?\s*\$?\s*([0-9,]+\.\d{2})`),
	regexp.MustCompile(`(?i)\bBALANCE\b\s*:?\s*\$?\s*([0-9,]+\.\d{2})`),
}

// Fallback when no labeled total matched: every currency-prefixed figure in
// the document. The grand total is typically the largest of them.
var dollarAmountPattern = regexp.MustCompile(`\$\s*([0-9,]+\.\d{2})`)

// Date patterns in priority order. The matched substring is kept verbatim;
// no calendar normalization happens at this layer.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`),
	regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`),
	regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2},?\s+\d{4}`),
}

// ExtractReceipt parses raw OCR text from a photographed purchase receipt
// into a partially-populated transaction draft. Fields that no pattern could
// recover are left nil; that is a normal outcome, not an error. The only
// error path is a labeled-total capture that fails numeric parsing.
func ExtractReceipt(rawText string) (dto.ReceiptExtraction, error) {
	result := dto.ReceiptExtraction{Items: []dto.ReceiptItem{}}
	if rawText == "" {
		return result, nil
	}

	lines := NormalizeLines(rawText)

	result.Merchant = extractMerchant(lines)

	amount, err := extractAmount(rawText)
	if err != nil {
		return dto.ReceiptExtraction{Items: []dto.ReceiptItem{}}, err
	}
	result.Amount = amount

	result.Date = extractDate(rawText)

	if result.Merchant != nil {
		result.Category = CategoryForMerchant(*result.Merchant)
	}

	result.Items = extractItems(lines)
	result.Confidence = scoreConfidence(result)

	return result, nil
}

// NormalizeLines splits raw OCR text into trimmed, non-empty lines in
// original order. Empty input yields an empty sequence.
func NormalizeLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// extractMerchant looks for a known merchant in the first 5 lines. Earlier
// lines take precedence over earlier patterns: each line is tried against
// the full pattern list before moving on. If nothing matches, fall back to
// the first plausible heading among the first 3 lines.
func extractMerchant(lines []string) *string {
	head := lines
	if len(head) > 5 {
		head = head[:5]
	}
	for _, line := range head {
		for _, re := range merchantPatterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			name := m[0]
			if len(m) > 1 && m[1] != "" {
				name = m[1]
			}
			name = strings.TrimSpace(name)
			return &name
		}
	}

	limit := len(lines)
	if limit > 3 {
		limit = 3
	}
	for _, line := range lines[:limit] {
		if len(line) > 2 && len(line) < 50 && strings.ContainsFunc(line, unicode.IsUpper) {
			heading := line
			return &heading
		}
	}
	return nil
}

// extractAmount tries the labeled-total patterns in priority order across
// the whole text, then falls back to the largest currency-prefixed figure.
func extractAmount(text string) (*decimal.Decimal, error) {
	for _, re := range totalPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		amount, err := parseAmount(m[1])
		if err != nil {
			return nil, fmt.Errorf("pattern %q captured %q: %w", re.String(), m[1], ErrBadAmountCapture)
		}
		return &amount, nil
	}

	var best *decimal.Decimal
	for _, m := range dollarAmountPattern.FindAllStringSubmatch(text, -1) {
		amount, err := parseAmount(m[1])
		if err != nil {
			return nil, fmt.Errorf("currency fallback captured %q: %w", m[1], ErrBadAmountCapture)
		}
		if best == nil || amount.GreaterThan(*best) {
			candidate := amount
			best = &candidate
		}
	}
	return best, nil
}

func parseAmount(captured string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(captured, ",", ""))
}

// extractDate returns the verbatim substring matched by the first date
// pattern, in pattern priority order regardless of position in the text.
func extractDate(text string) *string {
	for _, re := range datePatterns {
		if m := re.FindString(text); m != "" {
			return &m
		}
	}
	return nil
}

// scoreConfidence computes the additive completeness score: 0.3 for
// merchant, 0.4 for amount, 0.2 for date, 0.1 for category, clamped to 1.0.
// Summed in tenths so the result is exact.
func scoreConfidence(r dto.ReceiptExtraction) float64 {
	tenths := 0
	if r.Merchant != nil {
		tenths += 3
	}
	if r.Amount != nil {
		tenths += 4
	}
	if r.Date != nil {
		tenths += 2
	}
	if r.Category != nil {
		tenths += 1
	}
	if tenths > 10 {
		tenths = 10
	}
	return float64(tenths) / 10
}
