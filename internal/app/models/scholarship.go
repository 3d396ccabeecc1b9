package models

import (
	"strings"
)

// ScholarshipType is the funding type of a scholarship
type ScholarshipType string

const (
	// ScholarshipTypeState is a state-funded scholarship
	ScholarshipTypeState ScholarshipType = "Государственная"
	// ScholarshipTypeNonState is a named or privately funded scholarship
	ScholarshipTypeNonState ScholarshipType = "Негосударственная"
)

// Sentinel option values with override semantics
const (
	// DepartmentAllInstitutes marks a scholarship open to every institute
	DepartmentAllInstitutes = "Для всех институтов"
	// CourseAny marks a scholarship open to any year of study
	CourseAny = "Любой курс"
)

// IsValid reports whether t is one of the known scholarship types
func (t ScholarshipType) IsValid() bool {
	return t == ScholarshipTypeState || t == ScholarshipTypeNonState
}

// OptionSet is an ordered set of option values. Order is kept for display.
type OptionSet []string

// Has reports whether value is a member of the set
func (s OptionSet) Has(value string) bool {
	for _, v := range s {
		if v == value {
			return true
		}
	}
	return false
}

// HasAny reports whether any of values is a member of the set
func (s OptionSet) HasAny(values []string) bool {
	for _, v := range values {
		if s.Has(v) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set has no members
func (s OptionSet) IsEmpty() bool {
	return len(s) == 0
}

// Requirements lists what a candidate must satisfy
type Requirements struct {
	MinGrade     string    `json:"minGrade,omitempty" yaml:"minGrade,omitempty"`
	NoDebts      bool      `json:"noDebts,omitempty" yaml:"noDebts,omitempty"`
	Achievements OptionSet `json:"achievements,omitempty" yaml:"achievements,omitempty"`
}

// Contacts is the person responsible for a scholarship
type Contacts struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Position string `json:"position,omitempty" yaml:"position,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// AdditionalInfo holds application logistics
type AdditionalInfo struct {
	Deadline      string `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Documents     string `json:"documents,omitempty" yaml:"documents,omitempty"`
	SelectionType string `json:"selectionType,omitempty" yaml:"selectionType,omitempty"`
	Places        string `json:"places,omitempty" yaml:"places,omitempty"`
}

// Scholarship represents a single scholarship or grant listing
type Scholarship struct {
	ID               int64           `json:"id" yaml:"id" validate:"required,gt=0"`
	Name             string          `json:"name" yaml:"name" validate:"required"`
	Type             ScholarshipType `json:"type" yaml:"type" validate:"required,oneof=Государственная Негосударственная"`
	Target           string          `json:"target,omitempty" yaml:"target,omitempty"`
	Conditions       string          `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Description      string          `json:"description,omitempty" yaml:"description,omitempty"`
	PaymentAmount    *Amount         `json:"paymentAmount,omitempty" yaml:"paymentAmount,omitempty"`
	PaymentFrequency string          `json:"paymentFrequency,omitempty" yaml:"paymentFrequency,omitempty"`
	PaymentDuration  string          `json:"paymentDuration,omitempty" yaml:"paymentDuration,omitempty"`
	Category         string          `json:"category,omitempty" yaml:"category,omitempty"`
	EducationLevel   OptionSet       `json:"educationLevel,omitempty" yaml:"educationLevel,omitempty"`
	Course           OptionSet       `json:"course,omitempty" yaml:"course,omitempty"`
	Department       OptionSet       `json:"department,omitempty" yaml:"department,omitempty"`
	StudyForm        OptionSet       `json:"studyForm,omitempty" yaml:"studyForm,omitempty"`
	Requirements     *Requirements   `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Contacts         *Contacts       `json:"contacts,omitempty" yaml:"contacts,omitempty"`
	AdditionalInfo   *AdditionalInfo `json:"additionalInfo,omitempty" yaml:"additionalInfo,omitempty"`
	Procedure        []string        `json:"procedure,omitempty" yaml:"procedure,omitempty"`
	DetailsURL       string          `json:"detailsUrl,omitempty" yaml:"detailsUrl,omitempty" validate:"omitempty,url"`
}

// Achievements returns the achievement kinds the scholarship rewards, or nil
func (s *Scholarship) Achievements() OptionSet {
	if s.Requirements == nil {
		return nil
	}
	return s.Requirements.Achievements
}

// IsState reports whether the scholarship is state funded
func (s *Scholarship) IsState() bool {
	return s.Type == ScholarshipTypeState
}

// HasAmount reports whether a payment amount is present
func (s *Scholarship) HasAmount() bool {
	return s.PaymentAmount != nil && strings.TrimSpace(s.PaymentAmount.Raw) != ""
}
