// Package format holds display formatting helpers shared by the PDF
// generator and API responses. Amounts follow Indian conventions.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ones = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
		"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
		"Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
	tens = []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
		"Eighty", "Ninety",
	}
)

// Currency renders an amount with the rupee sign and Indian digit
// grouping, e.g. 1234567.50 becomes "₹12,34,567.50".
func Currency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	grouped := groupIndian(intPart)
	if neg {
		return "-₹" + grouped + "." + fracPart
	}
	return "₹" + grouped + "." + fracPart
}

// groupIndian inserts commas per the Indian numbering system: the last
// three digits form one group, then every two digits after that.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}

// Date renders a date as dd-Mmm-yyyy. A zero time renders empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02-Jan-2006")
}

// AmountInWords spells out a rupee amount in the Indian system, e.g.
// 1234 becomes "One Thousand Two Hundred and Thirty Four Rupees Only".
// Paise are ignored after rounding to the nearest rupee.
func AmountInWords(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return "Zero Rupees Only"
	}

	var parts []string
	appendScale := func(v int64, scale string) {
		if v == 0 {
			return
		}
		parts = append(parts, twoDigits(v))
		if scale != "" {
			parts = append(parts, scale)
		}
	}

	appendScale(n/10000000, "Crore")
	appendScale(n/100000%100, "Lakh")
	appendScale(n/1000%100, "Thousand")
	appendScale(n/100%10, "Hundred")

	if last := n % 100; last != 0 {
		if len(parts) > 0 {
			parts = append(parts, "and")
		}
		parts = append(parts, twoDigits(last))
	}

	return strings.Join(parts, " ") + " Rupees Only"
}

func twoDigits(v int64) string {
	if v < 20 {
		return ones[v]
	}
	if v%10 == 0 {
		return tens[v/10]
	}
	return tens[v/10] + " " + ones[v%10]
}
