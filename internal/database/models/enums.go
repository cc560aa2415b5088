package models

import "strings"

// LeaveStatus is the status of one calendar day for one user
type LeaveStatus string

const (
	LeaveStatusLeave          LeaveStatus = "LEAVE"
	LeaveStatusHoliday        LeaveStatus = "HOLIDAY"
	LeaveStatusAvailable      LeaveStatus = "AVAILABLE"
	LeaveStatusWeekend        LeaveStatus = "WEEKEND"
	LeaveStatusCompanyHoliday LeaveStatus = "WIPRO_HOLIDAY"
)

// IsValid checks if the LeaveStatus is a known status
func (s LeaveStatus) IsValid() bool {
	switch s {
	case LeaveStatusLeave, LeaveStatusHoliday, LeaveStatusAvailable, LeaveStatusWeekend, LeaveStatusCompanyHoliday:
		return true
	}
	return false
}

// IsPersistable reports whether a user may store the status on a personal record
func (s LeaveStatus) IsPersistable() bool {
	switch s {
	case LeaveStatusLeave, LeaveStatusHoliday, LeaveStatusAvailable:
		return true
	}
	return false
}

// IsAbsence reports whether the status means the user is away for the day
func (s LeaveStatus) IsAbsence() bool {
	return s == LeaveStatusLeave || s == LeaveStatusHoliday
}

// ParseLeaveStatus parses a status case-insensitively
func ParseLeaveStatus(raw string) (LeaveStatus, bool) {
	s := LeaveStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.IsValid()
}
