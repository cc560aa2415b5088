package calendar

import (
	"sort"
	"strings"

	"leave-tracker-backend/internal/database/models"

	"golang.org/x/text/cases"
)

const (
	// CompanyHolidaySubjectID identifies the synthetic roster entry for a company holiday
	CompanyHolidaySubjectID = "wipro-holiday"
	// DefaultCompanyHolidayLabel names a company holiday stored without a label
	DefaultCompanyHolidayLabel = "Company Holiday"
)

// Profile is the identity data used to name a user in the team view
type Profile struct {
	SubjectID string
	Handle    string
	FirstName string
	LastName  string
}

// TeamEntry is one user (or the company holiday) on a roster day
type TeamEntry struct {
	SubjectID   string             `json:"userId"`
	Handle      string             `json:"handle"`
	DisplayName string             `json:"displayName"`
	FirstName   string             `json:"firstName,omitempty"`
	LastName    string             `json:"lastName,omitempty"`
	Status      models.LeaveStatus `json:"status"`
}

// IsCompanyHoliday reports whether the entry is the synthetic holiday entry
func (e TeamEntry) IsCompanyHoliday() bool {
	return e.SubjectID == CompanyHolidaySubjectID && e.Status == models.LeaveStatusCompanyHoliday
}

// TeamDayRoster lists everyone away on one day
type TeamDayRoster struct {
	Date    Day         `json:"date"`
	Entries []TeamEntry `json:"usersOnLeave"`
}

// DisplayName picks the best available name for a personal record:
// the profile's full name when both parts are present, then its handle,
// then whoever last wrote the record, then the raw subject id.
func DisplayName(record models.LeaveDate, profile *Profile) string {
	if profile != nil {
		first := strings.TrimSpace(profile.FirstName)
		last := strings.TrimSpace(profile.LastName)
		if first != "" && last != "" {
			return first + " " + last
		}
		if handle := strings.TrimSpace(profile.Handle); handle != "" {
			return handle
		}
	}
	if actor := strings.TrimSpace(record.AttributionActor()); actor != "" {
		return actor
	}
	return record.UserID
}

// AggregateTeam builds the sparse team roster for r. Only LEAVE and HOLIDAY
// records count, each company holiday adds one synthetic entry, and days
// without entries are omitted. profiles may be nil or partial.
func AggregateTeam(r Range, personal []models.LeaveDate, holidays []models.CompanyHoliday, profiles map[string]Profile) []TeamDayRoster {
	byDay := make(map[string][]TeamEntry)
	days := make(map[string]Day)

	add := func(day Day, entry TeamEntry) {
		key := day.String()
		if _, ok := days[key]; !ok {
			days[key] = day
		}
		byDay[key] = append(byDay[key], entry)
	}

	for _, record := range personal {
		if !record.Status.IsAbsence() || !r.Contains(record.Date) {
			continue
		}

		var profile *Profile
		if p, ok := profiles[record.UserID]; ok {
			profile = &p
		}

		entry := TeamEntry{
			SubjectID:   record.UserID,
			DisplayName: DisplayName(record, profile),
			Handle:      record.AttributionActor(),
			Status:      record.Status,
		}
		if profile != nil {
			entry.FirstName = profile.FirstName
			entry.LastName = profile.LastName
			if profile.Handle != "" {
				entry.Handle = profile.Handle
			}
		}
		if entry.Handle == "" {
			entry.Handle = record.UserID
		}
		add(NewDay(record.Date), entry)
	}

	seenHoliday := make(map[string]bool, len(holidays))
	for _, holiday := range holidays {
		if !r.Contains(holiday.Date) {
			continue
		}
		day := NewDay(holiday.Date)
		if seenHoliday[day.String()] {
			continue
		}
		seenHoliday[day.String()] = true

		label := holiday.Label()
		if strings.TrimSpace(label) == "" {
			label = DefaultCompanyHolidayLabel
		}
		add(day, TeamEntry{
			SubjectID:   CompanyHolidaySubjectID,
			Handle:      label,
			DisplayName: label,
			Status:      models.LeaveStatusCompanyHoliday,
		})
	}

	keys := make([]string, 0, len(byDay))
	for key := range byDay {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rosters := make([]TeamDayRoster, 0, len(keys))
	for _, key := range keys {
		entries := byDay[key]
		sortEntries(entries)
		rosters = append(rosters, TeamDayRoster{Date: days[key], Entries: entries})
	}
	return rosters
}

// sortEntries orders entries by case-folded display name, then subject id
func sortEntries(entries []TeamEntry) {
	folder := cases.Fold()
	type keyed struct {
		name  string
		entry TeamEntry
	}
	keyedEntries := make([]keyed, len(entries))
	for i, entry := range entries {
		keyedEntries[i] = keyed{name: folder.String(entry.DisplayName), entry: entry}
	}

	sort.SliceStable(keyedEntries, func(a, b int) bool {
		if keyedEntries[a].name != keyedEntries[b].name {
			return keyedEntries[a].name < keyedEntries[b].name
		}
		return keyedEntries[a].entry.SubjectID < keyedEntries[b].entry.SubjectID
	})

	for i := range keyedEntries {
		entries[i] = keyedEntries[i].entry
	}
}

// AbsentNames returns the display names of the people on a roster day,
// skipping the company holiday entry and repeated names.
func AbsentNames(rosters []TeamDayRoster) []string {
	seen := make(map[string]bool)
	var names []string
	for _, roster := range rosters {
		for _, entry := range roster.Entries {
			if entry.IsCompanyHoliday() || seen[entry.DisplayName] {
				continue
			}
			seen[entry.DisplayName] = true
			names = append(names, entry.DisplayName)
		}
	}
	return names
}
