package catalog

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/grantsphere/internal/app/models"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name      string
		amount    *models.Amount
		frequency string
		want      string
	}{
		{"range", models.NewTextAmount("25000-40000 ₽"), FrequencyMonthly, "25 000 – 40 000 ₽ в месяц"},
		{"spaced range", models.NewTextAmount("15 000 - 25 000 ₽"), FrequencyMonthly, "15 000 – 25 000 ₽ в месяц"},
		{"numeric without currency", models.NewNumericAmount(3800), FrequencyMonthly, "₽ 3 800 в месяц"},
		{"already grouped", models.NewTextAmount("5 700 ₽"), FrequencyMonthly, "5 700 ₽ в месяц"},
		{"text prefix", models.NewTextAmount("до 10000"), FrequencyOneTime, "₽ до 10 000 единоразово"},
		{"semester", models.NewNumericAmount(4500), FrequencySemester, "₽ 4 500 за семестр"},
		{"yearly", models.NewTextAmount("150 000 ₽"), FrequencyYearly, "150 000 ₽ в год"},
		{"unknown frequency", models.NewTextAmount("8 000 ₽"), "", "8 000 ₽"},
		{"suffix not repeated", models.NewTextAmount("1000 руб в месяц"), FrequencyMonthly, "1 000 руб в месяц"},
		{"small number", models.NewTextAmount("500"), "", "₽ 500"},
		{"missing", nil, FrequencyMonthly, PlaceholderNotSpecified},
		{"blank", models.NewTextAmount("  "), FrequencyMonthly, PlaceholderNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount, tt.frequency))
		})
	}
}

func TestFrequencySuffix(t *testing.T) {
	assert.Equal(t, "в месяц", FrequencySuffix(" Ежемесячная "))
	assert.Equal(t, "", FrequencySuffix("Раз в жизни"))
}

func TestTruncateText(t *testing.T) {
	short := "Короткое описание"
	assert.Equal(t, short, TruncateText("  "+short+"  ", CardDescriptionLimit))
	assert.Equal(t, "", TruncateText("   ", CardDescriptionLimit))

	long := strings.Repeat("а", 60)
	got := TruncateText(long, CardDescriptionLimit)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, CardDescriptionLimit, utf8.RuneCountInString(strings.TrimSuffix(got, "...")))

	exact := strings.Repeat("б", CardDescriptionLimit)
	assert.Equal(t, exact, TruncateText(exact, CardDescriptionLimit))
}

func TestOrPlaceholder(t *testing.T) {
	assert.Equal(t, PlaceholderNotSpecified, OrPlaceholder(""))
	assert.Equal(t, PlaceholderNotSpecified, OrPlaceholder(" \t"))
	assert.Equal(t, "Очная", OrPlaceholder("Очная"))
}
