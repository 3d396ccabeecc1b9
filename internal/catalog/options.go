package catalog

import (
	"github.com/yigit/grantsphere/internal/app/models"
)

// CategoryInfo describes one filter facet for the filter panel
type CategoryInfo struct {
	Key     Category `json:"key"`
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

// Payment frequency values
const (
	FrequencyMonthly  = "Ежемесячная"
	FrequencyOneTime  = "Единоразовая"
	FrequencySemester = "За семестр"
	FrequencyYearly   = "За год"
)

// Categories returns the filter panel definition in display order
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{
			Key:   CategoryType,
			Title: "Тип стипендии",
			Options: []string{
				string(models.ScholarshipTypeState),
				string(models.ScholarshipTypeNonState),
			},
		},
		{
			Key:     CategoryEducationLevel,
			Title:   "Уровень обучения",
			Options: []string{"Абитуриент", "Бакалавриат", "Специалитет", "Магистратура", "Аспирантура"},
		},
		{
			Key:     CategoryStudyForm,
			Title:   "Форма обучения",
			Options: []string{"Очная", "Очно-заочная", "Заочная"},
		},
		{
			Key:   CategoryDepartment,
			Title: "Институт / подразделение МИСИС",
			Options: []string{
				"ИКН", "ИНМиН", "Горный институт", "ИФКИ", "ИЭУ", "БиоИнж", "ИБО", "ЭкоТех",
				models.DepartmentAllInstitutes,
			},
		},
		{
			Key:     CategoryCourse,
			Title:   "Курс",
			Options: []string{"1", "2", "3", "4", "5", "6", models.CourseAny},
		},
		{
			Key:   CategoryAchievements,
			Title: "Тип достижений",
			Options: []string{
				"Учебные", "Научные", "Проектные", "Общественная деятельность", "Волонтерство",
				"Спортивные", "Олимпиады", "Публикации", "Патенты", "Гранты", "Амбассадорство",
				"Цифровое волонтерство",
			},
		},
		{
			Key:     CategoryPaymentAmount,
			Title:   "Размер выплаты",
			Options: bracketLabels(),
		},
		{
			Key:     CategoryPaymentFrequency,
			Title:   "Периодичность",
			Options: []string{FrequencyMonthly, FrequencyOneTime, FrequencySemester, FrequencyYearly},
		},
		{
			Key:   CategoryPaymentDuration,
			Title: "Длительность",
			Options: []string{
				"≤ 3 месяцев", "6 месяцев", "10 месяцев", "12 месяцев", "Зависит от решения комиссии",
			},
		},
	}
}

func bracketLabels() []string {
	labels := make([]string, len(AmountBrackets))
	for i, b := range AmountBrackets {
		labels[i] = b.Label
	}
	return labels
}
