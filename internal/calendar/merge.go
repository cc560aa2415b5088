package calendar

import (
	"leave-tracker-backend/internal/database/models"
)

// DayStatus is the resolved status of one user on one day
type DayStatus struct {
	Date             Day                `json:"date"`
	Status           models.LeaveStatus `json:"status"`
	IsWeekend        bool               `json:"isWeekend"`
	IsCompanyHoliday bool               `json:"isWiproHoliday"`
	HolidayName      *string            `json:"holidayName,omitempty"`
}

// MergeStatuses produces one DayStatus per day of r in ascending order.
//
// The winning status is, highest first: the personal record, the company
// holiday, the weekend, then AVAILABLE. IsWeekend and IsCompanyHoliday are
// reported whichever tier wins. personal must hold one user's records with at
// most one per day; if a day repeats, the last record in input order wins.
func MergeStatuses(r Range, personal []models.LeaveDate, holidays []models.CompanyHoliday) []DayStatus {
	personalByDay := make(map[string]models.LeaveStatus, len(personal))
	for _, record := range personal {
		if !r.Contains(record.Date) {
			continue
		}
		personalByDay[Key(record.Date)] = record.Status
	}

	holidayByDay := make(map[string]models.CompanyHoliday, len(holidays))
	for _, holiday := range holidays {
		if !r.Contains(holiday.Date) {
			continue
		}
		holidayByDay[Key(holiday.Date)] = holiday
	}

	days := r.Dates()
	out := make([]DayStatus, 0, len(days))
	for _, day := range days {
		key := Key(day)
		ds := DayStatus{
			Date:      Day{Time: day},
			Status:    models.LeaveStatusAvailable,
			IsWeekend: IsWeekend(day),
		}
		if ds.IsWeekend {
			ds.Status = models.LeaveStatusWeekend
		}
		if holiday, ok := holidayByDay[key]; ok {
			ds.Status = models.LeaveStatusCompanyHoliday
			ds.IsCompanyHoliday = true
			if label := holiday.Label(); label != "" {
				ds.HolidayName = &label
			}
		}
		if status, ok := personalByDay[key]; ok {
			ds.Status = status
		}
		out = append(out, ds)
	}
	return out
}
