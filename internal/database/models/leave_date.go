package models

import "time"

// LeaveDate is one user's explicit status for one calendar day
type LeaveDate struct {
	BaseModel
	UserID string      `json:"userId" gorm:"size:64;not null;uniqueIndex:idx_user_leave_dates_user_date,priority:1"`
	Date   time.Time   `json:"date" gorm:"type:date;not null;uniqueIndex:idx_user_leave_dates_user_date,priority:2;index"`
	Status LeaveStatus `json:"status" gorm:"size:20;not null;index"`
}

// TableName specifies the table name for LeaveDate
func (LeaveDate) TableName() string {
	return "user_leave_dates"
}

// AttributionActor returns whoever last wrote the record
func (l LeaveDate) AttributionActor() string {
	if l.UpdatedBy != "" {
		return l.UpdatedBy
	}
	return l.CreatedBy
}
