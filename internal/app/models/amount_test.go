package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAmountJSON(t *testing.T) {
	var rec struct {
		Number *Amount `json:"number"`
		Text   *Amount `json:"text"`
		Null   *Amount `json:"null"`
	}
	err := json.Unmarshal([]byte(`{"number": 3800, "text": "25 000 ₽", "null": null}`), &rec)
	require.NoError(t, err)

	require.NotNil(t, rec.Number)
	assert.Equal(t, Amount{Raw: "3800", Numeric: true}, *rec.Number)
	require.NotNil(t, rec.Text)
	assert.Equal(t, Amount{Raw: "25 000 ₽"}, *rec.Text)
	assert.Nil(t, rec.Null)

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"number": 3800, "text": "25 000 ₽", "null": null}`, string(out))
}

func TestAmountJSONRejectsObjects(t *testing.T) {
	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`{"value": 1}`), &a))
}

func TestAmountYAML(t *testing.T) {
	var rec struct {
		Number *Amount `yaml:"number"`
		Quoted *Amount `yaml:"quoted"`
		Text   *Amount `yaml:"text"`
	}
	err := yaml.Unmarshal([]byte("number: 4500\nquoted: \"27000\"\ntext: до 10000\n"), &rec)
	require.NoError(t, err)

	assert.True(t, rec.Number.Numeric)
	assert.Equal(t, "4500", rec.Number.Raw)
	assert.False(t, rec.Quoted.Numeric, "a quoted number stays text")
	assert.Equal(t, "27000", rec.Quoted.Raw)
	assert.Equal(t, "до 10000", rec.Text.String())

	err = yaml.Unmarshal([]byte("number: [1, 2]\n"), &rec)
	assert.Error(t, err)
}

func TestAmountYAMLNumericSpellings(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"25_000", "25000"},
		{"0x7530", "30000"},
		{"1e4", "10000"},
		{"2500.50", "2500.5"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var a Amount
			require.NoError(t, yaml.Unmarshal([]byte(tt.body), &a))
			assert.Equal(t, Amount{Raw: tt.want, Numeric: true}, a)

			out, err := json.Marshal(a)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))
		})
	}

	var a Amount
	assert.Error(t, yaml.Unmarshal([]byte(".nan"), &a))
}

func TestOptionSet(t *testing.T) {
	s := OptionSet{"Очная", "Заочная"}
	assert.True(t, s.Has("Очная"))
	assert.False(t, s.Has("очная"))
	assert.True(t, s.HasAny([]string{"Очно-заочная", "Заочная"}))
	assert.False(t, s.HasAny(nil))
	assert.True(t, OptionSet(nil).IsEmpty())
}

func TestScholarshipHelpers(t *testing.T) {
	s := &Scholarship{Type: ScholarshipTypeNonState}
	assert.False(t, s.IsState())
	assert.False(t, s.HasAmount())
	assert.Nil(t, s.Achievements())

	s.PaymentAmount = NewNumericAmount(100)
	s.Requirements = &Requirements{Achievements: OptionSet{"Научные"}}
	assert.True(t, s.HasAmount())
	assert.Equal(t, OptionSet{"Научные"}, s.Achievements())

	assert.True(t, ScholarshipTypeState.IsValid())
	assert.False(t, ScholarshipType("Частная").IsValid())
}
