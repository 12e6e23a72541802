package currency

import (
	"fmt"
	"math"
)

// FormatINR renders an amount in rupees with Indian digit grouping: the last
// three digits form one group, everything above groups in twos
// (1234567 -> ₹12,34,567).
func FormatINR(amount float64) string {
	rounded := math.Round(amount)

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	intStr := fmt.Sprintf("%.0f", rounded)
	formatted := groupIndian(intStr)

	result := "₹" + formatted
	if negative {
		result = "-" + result
	}

	return result
}

func groupIndian(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	head := s[:n-3]
	tail := s[n-3:]

	groups := make([]string, 0, len(head)/2+1)
	for len(head) > 2 {
		groups = append(groups, head[len(head)-2:])
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append(groups, head)
	}

	out := ""
	for i := len(groups) - 1; i >= 0; i-- {
		out += groups[i] + ","
	}
	return out + tail
}
