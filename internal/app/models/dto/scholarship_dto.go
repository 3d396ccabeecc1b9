package dto

import (
	"github.com/yigit/grantsphere/internal/app/models"
	"github.com/yigit/grantsphere/internal/catalog"
)

// ScholarshipRow is one row of the scholarship table
type ScholarshipRow struct {
	ID      int64                  `json:"id" example:"1"`
	Name    string                 `json:"name" example:"Государственная академическая стипендия"`
	Type    models.ScholarshipType `json:"type" example:"Государственная"`
	IsState bool                   `json:"isState" example:"true"`
}

// ScholarshipCard is one recommendation card
type ScholarshipCard struct {
	ID          int64  `json:"id" example:"4"`
	Name        string `json:"name" example:"Стипендия Президента Российской Федерации"`
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount" example:"₽ 27 000 в месяц"`
}

// ContactsView is the contact block of the detail view
type ContactsView struct {
	Name     string `json:"name,omitempty"`
	Position string `json:"position,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// RequirementsView is the requirements block of the detail view
type RequirementsView struct {
	MinGrade     string   `json:"minGrade,omitempty"`
	NoDebts      bool     `json:"noDebts"`
	Achievements []string `json:"achievements,omitempty"`
}

// ScholarshipDetail is the detail view of one scholarship with every absent
// field replaced by its placeholder
type ScholarshipDetail struct {
	ID               int64                  `json:"id" example:"1"`
	Name             string                 `json:"name"`
	Type             string                 `json:"type"`
	Description      string                 `json:"description"`
	Amount           string                 `json:"amount" example:"₽ 3 800 в месяц"`
	RawAmount        *models.Amount         `json:"rawAmount,omitempty" swaggertype:"string"`
	PaymentFrequency string                 `json:"paymentFrequency"`
	PaymentDuration  string                 `json:"paymentDuration"`
	Category         string                 `json:"category"`
	Target           string                 `json:"target,omitempty"`
	Conditions       string                 `json:"conditions,omitempty"`
	EducationLevel   []string               `json:"educationLevel"`
	Course           []string               `json:"course"`
	Department       []string               `json:"department"`
	StudyForm        []string               `json:"studyForm"`
	Requirements     *RequirementsView      `json:"requirements,omitempty"`
	Contacts         *ContactsView          `json:"contacts,omitempty"`
	AdditionalInfo   *models.AdditionalInfo `json:"additionalInfo,omitempty"`
	Procedure        []string               `json:"procedure"`
	ProcedureMissing bool                   `json:"procedureMissing"`
	DetailsURL       string                 `json:"detailsUrl,omitempty"`
}

// NewScholarshipRow converts a record into a table row
func NewScholarshipRow(s *models.Scholarship) ScholarshipRow {
	return ScholarshipRow{
		ID:      s.ID,
		Name:    s.Name,
		Type:    s.Type,
		IsState: s.IsState(),
	}
}

// NewScholarshipRows converts records into table rows
func NewScholarshipRows(records []*models.Scholarship) []ScholarshipRow {
	rows := make([]ScholarshipRow, 0, len(records))
	for _, s := range records {
		rows = append(rows, NewScholarshipRow(s))
	}
	return rows
}

// NewScholarshipCard converts a record into a recommendation card
func NewScholarshipCard(s *models.Scholarship) ScholarshipCard {
	return ScholarshipCard{
		ID:          s.ID,
		Name:        s.Name,
		Description: catalog.TruncateText(s.Description, catalog.CardDescriptionLimit),
		Amount:      catalog.FormatAmount(s.PaymentAmount, s.PaymentFrequency),
	}
}

// NewCarouselGroups converts carousel pages into card pages
func NewCarouselGroups(groups [][]*models.Scholarship) [][]ScholarshipCard {
	out := make([][]ScholarshipCard, 0, len(groups))
	for _, g := range groups {
		cards := make([]ScholarshipCard, 0, len(g))
		for _, s := range g {
			cards = append(cards, NewScholarshipCard(s))
		}
		out = append(out, cards)
	}
	return out
}

// NewScholarshipDetail builds the detail view of a record
func NewScholarshipDetail(s *models.Scholarship) *ScholarshipDetail {
	if s == nil {
		return nil
	}

	description := s.Description
	if description == "" {
		description = catalog.PlaceholderDescription
	}

	detail := &ScholarshipDetail{
		ID:               s.ID,
		Name:             s.Name,
		Type:             catalog.OrPlaceholder(string(s.Type)),
		Description:      description,
		Amount:           catalog.FormatAmount(s.PaymentAmount, s.PaymentFrequency),
		RawAmount:        s.PaymentAmount,
		PaymentFrequency: catalog.OrPlaceholder(s.PaymentFrequency),
		PaymentDuration:  catalog.OrPlaceholder(s.PaymentDuration),
		Category:         catalog.OrPlaceholder(s.Category),
		Target:           s.Target,
		Conditions:       s.Conditions,
		EducationLevel:   setOrPlaceholder(s.EducationLevel),
		Course:           setOrPlaceholder(s.Course),
		Department:       setOrPlaceholder(s.Department),
		StudyForm:        setOrPlaceholder(s.StudyForm),
		AdditionalInfo:   s.AdditionalInfo,
		DetailsURL:       s.DetailsURL,
	}

	if len(s.Procedure) > 0 {
		detail.Procedure = append([]string(nil), s.Procedure...)
	} else {
		detail.Procedure = []string{catalog.PlaceholderProcedure}
		detail.ProcedureMissing = true
	}

	if r := s.Requirements; r != nil {
		detail.Requirements = &RequirementsView{
			MinGrade:     r.MinGrade,
			NoDebts:      r.NoDebts,
			Achievements: append([]string(nil), r.Achievements...),
		}
	}

	// The contact block is only rendered when a contact person is named
	if c := s.Contacts; c != nil && (c.Name != "" || c.Email != "") {
		detail.Contacts = &ContactsView{
			Name:     c.Name,
			Position: c.Position,
			Email:    c.Email,
			Phone:    c.Phone,
		}
	}

	return detail
}

func setOrPlaceholder(set models.OptionSet) []string {
	if set.IsEmpty() {
		return []string{catalog.PlaceholderNotSpecified}
	}
	return append([]string(nil), set...)
}

// FilterCategoriesResponse lists the filter panel definition
type FilterCategoriesResponse struct {
	Categories []catalog.CategoryInfo  `json:"categories"`
	Brackets   []catalog.AmountBracket `json:"brackets"`
}

// SearchResponse is the result of a stateless name search
type SearchResponse struct {
	Query    string           `json:"query" example:"стипендия"`
	Results  []ScholarshipRow `json:"results"`
	NotFound bool             `json:"notFound"`
}

// RecommendationsResponse is the carousel content
type RecommendationsResponse struct {
	Groups     [][]ScholarshipCard `json:"groups"`
	GroupCount int                 `json:"groupCount" example:"3"`
}
