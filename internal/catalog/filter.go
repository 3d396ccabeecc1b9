// Package catalog holds the pure query functions over the scholarship catalog:
// faceted filtering, name search, carousel paging and detail formatting.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/grantsphere/internal/app/models"
	"github.com/yigit/grantsphere/internal/pkg/apperrors"
)

// Category identifies one filter facet
type Category string

// Filter categories
const (
	CategoryType             Category = "type"
	CategoryEducationLevel   Category = "educationLevel"
	CategoryStudyForm        Category = "studyForm"
	CategoryDepartment       Category = "department"
	CategoryCourse           Category = "course"
	CategoryAchievements     Category = "achievements"
	CategoryPaymentAmount    Category = "paymentAmount"
	CategoryPaymentFrequency Category = "paymentFrequency"
	CategoryPaymentDuration  Category = "paymentDuration"
)

// typeAliases maps filter option labels onto record types
var typeAliases = map[string]models.ScholarshipType{
	"Негосударственная (именная)": models.ScholarshipTypeNonState,
}

// ParseCategory validates a category key
func ParseCategory(key string) (Category, error) {
	c := Category(strings.TrimSpace(key))
	if _, ok := predicates[c]; !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownFilterCategory, key)
	}
	return c, nil
}

// Selection maps each filter category to its selected option values
type Selection map[Category][]string

// Toggle adds or removes value from a category. It reports whether the
// selection changed.
func (s Selection) Toggle(c Category, value string, checked bool) bool {
	current := s[c]
	idx := -1
	for i, v := range current {
		if v == value {
			idx = i
			break
		}
	}

	switch {
	case checked && idx < 0:
		s[c] = append(current, value)
		return true
	case !checked && idx >= 0:
		next := make([]string, 0, len(current)-1)
		next = append(next, current[:idx]...)
		next = append(next, current[idx+1:]...)
		if len(next) == 0 {
			delete(s, c)
		} else {
			s[c] = next
		}
		return true
	}
	return false
}

// Clone returns a deep copy
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for c, values := range s {
		out[c] = append([]string(nil), values...)
	}
	return out
}

// IsEmpty reports whether no category has a selected value
func (s Selection) IsEmpty() bool {
	for _, values := range s {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// Count returns the number of selected values in a category
func (s Selection) Count(c Category) int {
	return len(s[c])
}

type predicate func(rec *models.Scholarship, selected []string) bool

var predicates = map[Category]predicate{
	CategoryType:             matchType,
	CategoryEducationLevel:   func(r *models.Scholarship, sel []string) bool { return r.EducationLevel.HasAny(sel) },
	CategoryStudyForm:        func(r *models.Scholarship, sel []string) bool { return r.StudyForm.HasAny(sel) },
	CategoryAchievements:     func(r *models.Scholarship, sel []string) bool { return r.Achievements().HasAny(sel) },
	CategoryDepartment:       matchDepartment,
	CategoryCourse:           matchCourse,
	CategoryPaymentAmount:    matchAmount,
	CategoryPaymentFrequency: func(r *models.Scholarship, sel []string) bool { return matchExact(r.PaymentFrequency, sel) },
	CategoryPaymentDuration:  func(r *models.Scholarship, sel []string) bool { return matchExact(r.PaymentDuration, sel) },
}

// Filter returns the records satisfying every category of sel that has at
// least one selected value. Source order is preserved. Unknown categories
// are ignored; callers validate keys with ParseCategory.
func Filter(records []*models.Scholarship, sel Selection) []*models.Scholarship {
	out := make([]*models.Scholarship, 0, len(records))
	for _, rec := range records {
		if Matches(rec, sel) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether a single record satisfies sel
func Matches(rec *models.Scholarship, sel Selection) bool {
	if rec == nil {
		return false
	}
	for c, values := range sel {
		if len(values) == 0 {
			continue
		}
		match, ok := predicates[c]
		if !ok {
			continue
		}
		if !match(rec, values) {
			return false
		}
	}
	return true
}

func matchType(rec *models.Scholarship, selected []string) bool {
	for _, v := range selected {
		want := models.ScholarshipType(v)
		if alias, ok := typeAliases[v]; ok {
			want = alias
		}
		if rec.Type == want {
			return true
		}
	}
	return false
}

func matchDepartment(rec *models.Scholarship, selected []string) bool {
	if rec.Department.Has(models.DepartmentAllInstitutes) {
		return true
	}
	return rec.Department.HasAny(selected)
}

func matchCourse(rec *models.Scholarship, selected []string) bool {
	for _, v := range selected {
		if v == models.CourseAny {
			if rec.Course.Has(models.CourseAny) {
				return true
			}
			continue
		}
		want, ok := parseCourse(v)
		if !ok {
			continue
		}
		for _, c := range rec.Course {
			if got, ok := parseCourse(c); ok && got == want {
				return true
			}
		}
	}
	return false
}

// parseCourse reads a course number such as "2" or "2 курс"
func parseCourse(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" || v == models.CourseAny {
		return 0, false
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n, true
	}
	n, ok := ParseAmount(v)
	if !ok {
		return 0, false
	}
	return int(n), true
}

func matchAmount(rec *models.Scholarship, selected []string) bool {
	if rec.PaymentAmount == nil {
		return false
	}
	amount, ok := ParseAmount(rec.PaymentAmount.Raw)
	if !ok {
		return false
	}
	for _, label := range selected {
		if b, ok := LookupBracket(label); ok && b.Contains(amount) {
			return true
		}
	}
	return false
}

func matchExact(field string, selected []string) bool {
	if field == "" {
		return false
	}
	for _, v := range selected {
		if field == v {
			return true
		}
	}
	return false
}
