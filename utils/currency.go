package utils

import (
	"fmt"
	"strings"
)

// FormatRupee formats an amount the way the screens show prices.
// Example: 1234.5 -> "₹1,234.50"
func FormatRupee(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	formatted := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	// Tambahkan pemisah ribuan
	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return sign + "₹" + strings.Join(groups, ",") + "." + decimalPart
}

// FormatAmount renders an amount with two decimals and no currency sign.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
