package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Amount is a loosely formatted payment amount. The dataset carries it either
// as a number (25000) or as free text ("25 000 ₽", "25000-40000").
type Amount struct {
	Raw     string
	Numeric bool
}

// NewTextAmount creates an amount from free text
func NewTextAmount(raw string) *Amount {
	return &Amount{Raw: raw}
}

// NewNumericAmount creates an amount from a number
func NewNumericAmount(v int64) *Amount {
	return &Amount{Raw: strconv.FormatInt(v, 10), Numeric: true}
}

// String returns the raw amount text
func (a Amount) String() string {
	return a.Raw
}

// MarshalJSON keeps numeric amounts as JSON numbers
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Numeric {
		return []byte(a.Raw), nil
	}
	return json.Marshal(a.Raw)
}

// UnmarshalJSON accepts a JSON number or string
func (a *Amount) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "" || text == "null" {
		*a = Amount{}
		return nil
	}
	if text[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount{Raw: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("payment amount must be a number or string: %w", err)
	}
	*a = Amount{Raw: n.String(), Numeric: true}
	return nil
}

// UnmarshalYAML accepts a YAML scalar; !!int and !!float become numeric amounts
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("payment amount at line %d must be a scalar", value.Line)
	}
	switch value.Tag {
	case "!!int":
		var n int64
		if err := value.Decode(&n); err != nil {
			return decodeFloatAmount(a, value)
		}
		*a = Amount{Raw: strconv.FormatInt(n, 10), Numeric: true}
	case "!!float":
		return decodeFloatAmount(a, value)
	default:
		*a = Amount{Raw: value.Value}
	}
	return nil
}

// decodeFloatAmount stores the canonical form of a numeric node, so YAML
// spellings like 1e4 or 25_000 never reach Raw.
func decodeFloatAmount(a *Amount, value *yaml.Node) error {
	var f float64
	if err := value.Decode(&f); err != nil {
		return fmt.Errorf("payment amount at line %d: %w", value.Line, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("payment amount at line %d must be finite", value.Line)
	}
	*a = Amount{Raw: strconv.FormatFloat(f, 'f', -1, 64), Numeric: true}
	return nil
}

// MarshalYAML mirrors UnmarshalYAML
func (a Amount) MarshalYAML() (interface{}, error) {
	if a.Numeric {
		if n, err := strconv.ParseInt(a.Raw, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(a.Raw, 64); err == nil {
			return f, nil
		}
	}
	return a.Raw, nil
}
