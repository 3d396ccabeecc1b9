package catalog

import (
	"strconv"
	"strings"
)

// AmountBracket is a half-open payment range [Min, Max) used by the amount
// filter. A zero Max leaves the bracket unbounded above.
type AmountBracket struct {
	Label string `json:"label"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max,omitempty"`
}

// Contains reports whether v falls inside the bracket
func (b AmountBracket) Contains(v int64) bool {
	return v >= b.Min && (b.Unbounded() || v < b.Max)
}

// Unbounded reports whether the bracket has no upper limit
func (b AmountBracket) Unbounded() bool {
	return b.Max == 0
}

// Amount bracket labels as offered by the filter panel
const (
	BracketUnder5k   = "До 5 000 ₽"
	Bracket5kTo10k   = "5 000 – 10 000 ₽"
	Bracket10kTo20k  = "10 000 – 20 000 ₽"
	Bracket20kTo30k  = "20 000 – 30 000 ₽"
	BracketFrom30k   = "От 30 000 ₽"
	bracketFrom30Alt = "30 000 ₽"
)

// AmountBrackets lists the payment brackets in ascending order. They do not overlap.
var AmountBrackets = []AmountBracket{
	{Label: BracketUnder5k, Min: 0, Max: 5000},
	{Label: Bracket5kTo10k, Min: 5000, Max: 10000},
	{Label: Bracket10kTo20k, Min: 10000, Max: 20000},
	{Label: Bracket20kTo30k, Min: 20000, Max: 30000},
	{Label: BracketFrom30k, Min: 30000},
}

// LookupBracket finds a bracket by its label
func LookupBracket(label string) (AmountBracket, bool) {
	label = strings.TrimSpace(label)
	if label == bracketFrom30Alt {
		label = BracketFrom30k
	}
	for _, b := range AmountBrackets {
		if b.Label == label {
			return b, true
		}
	}
	return AmountBracket{}, false
}

// ParseAmount extracts the first integer embedded in raw. Spaces between
// thousands groups are skipped, so "25 000 ₽" is 25000 and "25000-40000" is
// 25000. It returns false when raw has no digits.
func ParseAmount(raw string) (int64, bool) {
	runes := []rune(raw)
	for i, r := range runes {
		if isASCIIDigit(r) {
			digits, _ := scanNumber(runes, i)
			n, err := strconv.ParseInt(digits, 10, 64)
			if err != nil {
				return 0, false
			}
			return n, true
		}
	}
	return 0, false
}

// scanNumber reads a grouped number starting at runes[start] and returns its
// digits without separators and the index just past it.
func scanNumber(runes []rune, start int) (string, int) {
	var b strings.Builder
	i := start
	for i < len(runes) {
		r := runes[i]
		if isASCIIDigit(r) {
			b.WriteRune(r)
			i++
			continue
		}
		if isGroupSeparator(r) && b.Len() > 0 && groupFollows(runes, i+1) {
			i++
			continue
		}
		break
	}
	return b.String(), i
}

// groupFollows reports whether exactly three digits start at runes[j]
func groupFollows(runes []rune, j int) bool {
	if j+3 > len(runes) {
		return false
	}
	for k := j; k < j+3; k++ {
		if !isASCIIDigit(runes[k]) {
			return false
		}
	}
	return j+3 == len(runes) || !isASCIIDigit(runes[j+3])
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isGroupSeparator(r rune) bool {
	switch r {
	case ' ', '\u00a0', '\u202f', '\u2009':
		return true
	}
	return false
}
