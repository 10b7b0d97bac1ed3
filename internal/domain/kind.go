package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind describes one of the two record tables
type Kind struct {
	Name   string // Singular lowercase name used in logs
	Label  string // Capitalized name used in responses
	Table  string // Table name
	Prefix string // slNo prefix
}

// The two record kinds
var (
	KindExpense = Kind{Name: "expense", Label: "Expense", Table: "expenses", Prefix: "EXP"}
	KindGain    = Kind{Name: "gain", Label: "Gain", Table: "gains", Prefix: "GN"}
)

// FormatSlNo renders a counter as a display code. Counters past 999 are not truncated.
func (k Kind) FormatSlNo(counter int) string {
	return fmt.Sprintf("%s%03d", k.Prefix, counter)
}

// ParseSlNo extracts the numeric suffix of a display code
func (k Kind) ParseSlNo(slNo string) (int, bool) {
	if !strings.HasPrefix(slNo, k.Prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(slNo[len(k.Prefix):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// NextSlNo returns the code following the highest counter among existing codes
func (k Kind) NextSlNo(existing []string) string {
	highest := 0
	for _, s := range existing {
		if n, ok := k.ParseSlNo(s); ok && n > highest {
			highest = n
		}
	}
	return k.FormatSlNo(highest + 1)
}
