package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/grantsphere/internal/app/models"
	"github.com/yigit/grantsphere/internal/pkg/apperrors"
)

func TestFilterDataset(t *testing.T) {
	all := loadDataset(t)

	tests := []struct {
		name string
		sel  Selection
		want []int64
	}{
		{
			name: "empty selection keeps everything",
			sel:  Selection{},
			want: ids(all),
		},
		{
			name: "education level",
			sel:  Selection{CategoryEducationLevel: {"Аспирантура"}},
			want: []int64{4, 8, 12},
		},
		{
			name: "values within a category are ORed",
			sel:  Selection{CategoryEducationLevel: {"Аспирантура", "Абитуриент"}},
			want: []int64{4, 8, 11, 12},
		},
		{
			name: "categories are ANDed",
			sel: Selection{
				CategoryType:             {"Государственная"},
				CategoryPaymentFrequency: {FrequencyMonthly},
			},
			want: []int64{1, 2, 3, 4, 5},
		},
		{
			name: "all-institutes records match any institute",
			sel:  Selection{CategoryDepartment: {"ИКН"}},
			want: []int64{1, 2, 3, 4, 7, 8, 10, 11, 13},
		},
		{
			name: "course number",
			sel:  Selection{CategoryCourse: {"1"}},
			want: []int64{1, 7, 9, 10, 11},
		},
		{
			name: "any-course option matches only records that say so",
			sel:  Selection{CategoryCourse: {models.CourseAny}},
			want: []int64{2, 8, 13},
		},
		{
			name: "amount bracket below five thousand",
			sel:  Selection{CategoryPaymentAmount: {BracketUnder5k}},
			want: []int64{1, 9},
		},
		{
			name: "amount bracket lower bound is inclusive",
			sel:  Selection{CategoryPaymentAmount: {Bracket10kTo20k}},
			want: []int64{3, 5, 8},
		},
		{
			name: "amount bracket upper bound is exclusive",
			sel:  Selection{CategoryPaymentAmount: {Bracket20kTo30k}},
			want: []int64{4, 6, 7},
		},
		{
			name: "open-ended bracket and its short label",
			sel:  Selection{CategoryPaymentAmount: {"30 000 ₽"}},
			want: []int64{11, 12},
		},
		{
			name: "named type alias",
			sel:  Selection{CategoryType: {"Негосударственная (именная)"}},
			want: []int64{6, 7, 9, 10, 11, 12},
		},
		{
			name: "achievements",
			sel:  Selection{CategoryAchievements: {"Научные"}},
			want: []int64{3, 4, 5, 12},
		},
		{
			name: "payment duration",
			sel:  Selection{CategoryPaymentDuration: {"12 месяцев"}},
			want: []int64{2, 5, 6, 11, 12},
		},
		{
			name: "no match",
			sel: Selection{
				CategoryEducationLevel: {"Абитуриент"},
				CategoryPaymentAmount:  {BracketUnder5k},
			},
			want: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(all, tt.sel)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterResultIsSubsetInSourceOrder(t *testing.T) {
	all := loadDataset(t)
	sel := Selection{CategoryStudyForm: {"Очно-заочная", "Заочная"}}

	got := Filter(all, sel)
	pos := make(map[int64]int, len(all))
	for i, r := range all {
		pos[r.ID] = i
	}
	last := -1
	for _, r := range got {
		i, ok := pos[r.ID]
		require.True(t, ok)
		assert.Greater(t, i, last)
		last = i
	}
}

func TestFilterRecordWithoutAmountFailsAmountFilter(t *testing.T) {
	noAmount := rec(1, "Без выплаты")
	text := rec(2, "Текст", func(s *models.Scholarship) { s.PaymentAmount = models.NewTextAmount("по решению комиссии") })
	paid := rec(3, "С выплатой", func(s *models.Scholarship) { s.PaymentAmount = models.NewNumericAmount(7000) })

	got := Filter([]*models.Scholarship{noAmount, text, paid}, Selection{CategoryPaymentAmount: {Bracket5kTo10k}})
	assert.Equal(t, []int64{3}, ids(got))
}

func TestFilterCourseComparesParsedNumbers(t *testing.T) {
	withCourse := func(courses ...string) func(*models.Scholarship) {
		return func(s *models.Scholarship) { s.Course = courses }
	}
	pool := []*models.Scholarship{
		rec(1, "Вторая ступень", withCourse("2 курс")),
		rec(2, "С ведущим нулём", withCourse("02")),
		rec(3, "Двенадцатый", withCourse("12")),
		rec(4, "Любой", withCourse(models.CourseAny)),
	}

	tests := []struct {
		name     string
		selected []string
		want     []int64
	}{
		{"bare number", []string{"2"}, []int64{1, 2}},
		{"zero padded selection", []string{"02"}, []int64{1, 2}},
		{"suffixed selection", []string{"12 курс"}, []int64{3}},
		{"non numeric selection", []string{"второй"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(pool, Selection{CategoryCourse: tt.selected})
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterEmptyCategoryIsIgnored(t *testing.T) {
	all := loadDataset(t)
	got := Filter(all, Selection{CategoryCourse: {}})
	assert.Len(t, got, len(all))
}

func TestSelectionToggle(t *testing.T) {
	sel := Selection{}

	assert.True(t, sel.Toggle(CategoryCourse, "1", true))
	assert.False(t, sel.Toggle(CategoryCourse, "1", true), "checking twice is a no-op")
	assert.True(t, sel.Toggle(CategoryCourse, "2", true))
	assert.Equal(t, 2, sel.Count(CategoryCourse))

	assert.True(t, sel.Toggle(CategoryCourse, "1", false))
	assert.Equal(t, []string{"2"}, sel[CategoryCourse])
	assert.False(t, sel.Toggle(CategoryCourse, "1", false), "unchecking an absent value is a no-op")

	assert.True(t, sel.Toggle(CategoryCourse, "2", false))
	_, present := sel[CategoryCourse]
	assert.False(t, present)
	assert.True(t, sel.IsEmpty())
}

func TestSelectionClone(t *testing.T) {
	sel := Selection{CategoryCourse: {"1"}}
	clone := sel.Clone()
	clone.Toggle(CategoryCourse, "2", true)

	assert.Equal(t, []string{"1"}, sel[CategoryCourse])
	assert.Equal(t, []string{"1", "2"}, clone[CategoryCourse])
}

func TestParseCategory(t *testing.T) {
	for _, info := range Categories() {
		c, err := ParseCategory(string(info.Key))
		require.NoError(t, err)
		assert.Equal(t, info.Key, c)
	}

	_, err := ParseCategory("color")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnknownFilterCategory))
}

func TestCategoriesOffersBracketLabels(t *testing.T) {
	for _, info := range Categories() {
		if info.Key != CategoryPaymentAmount {
			continue
		}
		for _, label := range info.Options {
			_, ok := LookupBracket(label)
			assert.True(t, ok, label)
		}
		return
	}
	t.Fatal("payment amount category missing")
}
