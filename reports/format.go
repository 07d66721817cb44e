package reports

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const SalaryUnavailable = "Salary information not available."

var printer = message.NewPrinter(language.English)

// FormatHours rounds to one decimal for display.
func FormatHours(h float64) string {
	return fmt.Sprintf("%.1f hrs", h)
}

// FormatCurrency renders amount with two decimals and digit grouping,
// prefixed by symbol.
func FormatCurrency(symbol string, amount float64) string {
	if amount < 0 {
		return "-" + symbol + printer.Sprintf("%.2f", -amount)
	}
	return symbol + printer.Sprintf("%.2f", amount)
}

// Text renders the estimate, or SalaryUnavailable.
func (e Estimate) Text(symbol string) string {
	if !e.Available {
		return SalaryUnavailable
	}
	return FormatCurrency(symbol, e.Amount)
}
