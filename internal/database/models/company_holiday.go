package models

import "time"

// CompanyHoliday is an organization-wide non-working day
type CompanyHoliday struct {
	BaseModel
	Date time.Time `json:"date" gorm:"type:date;not null;uniqueIndex"`
	Name *string   `json:"name,omitempty" gorm:"size:200"`
}

// TableName specifies the table name for CompanyHoliday
func (CompanyHoliday) TableName() string {
	return "company_holidays"
}

// Label returns the holiday name, or an empty string when unnamed
func (h CompanyHoliday) Label() string {
	if h.Name == nil {
		return ""
	}
	return *h.Name
}
