package catalog

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yigit/grantsphere/internal/app/models"
)

// Placeholder texts for absent fields
const (
	PlaceholderNotSpecified = "Не указано"
	PlaceholderDescription  = "Описание стипендиальной программы"
	PlaceholderProcedure    = "Информация о процедуре не указана"
)

// CurrencySymbol is prefixed to amounts that carry no currency of their own
const CurrencySymbol = "₽"

// CardDescriptionLimit is the rune limit of card descriptions
const CardDescriptionLimit = 50

var frequencySuffixes = map[string]string{
	FrequencyMonthly:  "в месяц",
	FrequencyOneTime:  "единоразово",
	FrequencySemester: "за семестр",
	FrequencyYearly:   "в год",
}

var currencyMarkers = []string{CurrencySymbol, "руб", "rub", "$", "€"}

// FrequencySuffix returns the human-readable suffix for a payment frequency,
// or "" when the frequency is unknown.
func FrequencySuffix(frequency string) string {
	return frequencySuffixes[strings.TrimSpace(frequency)]
}

// FormatAmount normalizes a payment amount for display. Each number is
// grouped by thousands, a "start-end" range gets an en dash, the ruble sign
// is prefixed when no currency is present, and the frequency suffix is
// appended. A missing amount yields PlaceholderNotSpecified.
func FormatAmount(amount *models.Amount, frequency string) string {
	if amount == nil || strings.TrimSpace(amount.Raw) == "" {
		return PlaceholderNotSpecified
	}

	text := groupNumbers(strings.TrimSpace(amount.Raw))
	if !hasCurrency(text) {
		text = CurrencySymbol + " " + text
	}
	if suffix := FrequencySuffix(frequency); suffix != "" && !strings.Contains(strings.ToLower(text), suffix) {
		text += " " + suffix
	}
	return text
}

// groupNumbers rewrites every number in s with thousands grouping and joins
// numeric ranges with " – ".
func groupNumbers(s string) string {
	runes := []rune(s)
	printer := message.NewPrinter(language.English)

	var b strings.Builder
	afterNumber := false
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case isASCIIDigit(r):
			digits, next := scanNumber(runes, i)
			b.WriteString(formatGrouped(printer, digits))
			i = next
			afterNumber = true
			continue
		case isDash(r) && afterNumber && nextIsDigit(runes, i+1):
			trimmed := strings.TrimRight(b.String(), " ")
			b.Reset()
			b.WriteString(trimmed)
			b.WriteString(" – ")
			i++
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			afterNumber = false
			continue
		case unicode.IsSpace(r):
			// spaces between a number and a dash do not end the range
		default:
			afterNumber = false
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

func formatGrouped(printer *message.Printer, digits string) string {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return digits
	}
	return strings.ReplaceAll(printer.Sprintf("%d", n), ",", " ")
}

func nextIsDigit(runes []rune, i int) bool {
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i < len(runes) && isASCIIDigit(runes[i])
}

func isDash(r rune) bool {
	return r == '-' || r == '–' || r == '—'
}

func hasCurrency(s string) bool {
	lower := strings.ToLower(s)
	for _, m := range currencyMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// TruncateText trims text and cuts it to limit runes, appending "..."
func TruncateText(text string, limit int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if limit <= 0 {
		limit = CardDescriptionLimit
	}
	if utf8.RuneCountInString(trimmed) <= limit {
		return trimmed
	}
	runes := []rune(trimmed)
	return strings.TrimSpace(string(runes[:limit])) + "..."
}

// OrPlaceholder returns s, or PlaceholderNotSpecified when s is blank
func OrPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return PlaceholderNotSpecified
	}
	return s
}
