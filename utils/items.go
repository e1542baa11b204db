package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pzhefer/wealthflow/dto"
)

// Item-line patterns tried in order: name followed by a price, optionally
// with a UPC between them or a tax flag after.
var itemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.+?)\s+\d{11,14}\s+\$?(\d{1,4}\.\d{2})\s*[FNT]?$`),
	regexp.MustCompile(`^(.+?)\s+@\s*\$?(\d{1,4}\.\d{2})\s*(?:EA|EACH)?$`),
	regexp.MustCompile(`^(.+?)\s+\$?(\d{1,4}\.\d{2})\s*[FNT]?$`),
}

// Lines that carry a price but are not purchases: totals, tax, tender and
// footer noise, plus standalone date/time and separator lines.
var itemExcludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(TAX|SUBTOTAL|SUB\s*TOTAL|TOTAL|GRAND\s*TOTAL|BALANCE|AMOUNT|CHANGE|CASH|CREDIT|DEBIT|CARD|VISA|MASTERCARD|AMEX|DISCOVER|TEND(?:ER)?|SAVINGS|DISCOUNT|COUPON|MEMBER|LOYALTY|POINTS|REWARD|THANK\s*YOU|CASHIER|TRANS|REG|DATE|TIME|TEL|PHONE|RECEIPT|RETURN|REFUND|VOID)\b`),
	regexp.MustCompile(`^\s*[-=*_]+\s*$`),
	regexp.MustCompile(`^\s*\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\s*$`),
	regexp.MustCompile(`^\s*\d{1,2}:\d{2}\s*(AM|PM)?\s*$`),
	regexp.MustCompile(`^\s*\d+\.?\d*\s*(lb|oz|kg|g)?\s*@\s*\$?\d+\.\d{2}`),
}

var multiSpace = regexp.MustCompile(`\s{2,}`)

// extractItems scans normalized receipt lines for (name, price) pairs.
// Best-effort: lines that match nothing are skipped, and prices outside a
// sane range are treated as OCR noise.
func extractItems(lines []string) []dto.ReceiptItem {
	items := []dto.ReceiptItem{}
	maxPrice := decimal.NewFromInt(10000)

	for _, line := range lines {
		line = multiSpace.ReplaceAllString(line, " ")
		if excludedItemLine(line) {
			continue
		}
		for _, re := range itemPatterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			name := cleanItemName(m[1])
			if name == "" {
				break
			}
			price, err := decimal.NewFromString(m[2])
			if err != nil || !price.IsPositive() || price.GreaterThanOrEqual(maxPrice) {
				break
			}
			items = append(items, dto.ReceiptItem{Name: name, Price: price})
			break
		}
	}
	return items
}

func excludedItemLine(line string) bool {
	for _, re := range itemExcludePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func cleanItemName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimRight(name, ".,;:-_")
	name = strings.TrimLeft(name, "@#*")
	return strings.TrimSpace(name)
}
