package calendar

import (
	"testing"
	"time"

	"leave-tracker-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func leave(userID string, day time.Time, status models.LeaveStatus) models.LeaveDate {
	return models.LeaveDate{UserID: userID, Date: day, Status: status}
}

func holiday(day time.Time, name string) models.CompanyHoliday {
	h := models.CompanyHoliday{Date: day}
	if name != "" {
		h.Name = &name
	}
	return h
}

// MergeStatusesTestSuite covers the per-user calendar view
type MergeStatusesTestSuite struct {
	suite.Suite
	december Range
}

func (suite *MergeStatusesTestSuite) SetupTest() {
	r, err := ResolveRange(nil, nil, time.Date(2024, time.December, 3, 9, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.december = r
}

func (suite *MergeStatusesTestSuite) statusOn(days []DayStatus, day time.Time) DayStatus {
	for _, ds := range days {
		if ds.Date.Equal(day) {
			return ds
		}
	}
	suite.FailNow("day not found", day.String())
	return DayStatus{}
}

func (suite *MergeStatusesTestSuite) TestDenseAscendingOutput() {
	for _, r := range []Range{
		suite.december,
		SingleDay(utc(2024, time.June, 1)),
		{Start: utc(2023, time.December, 30), End: utc(2024, time.March, 1)},
	} {
		days := MergeStatuses(r, nil, nil)
		suite.Require().Len(days, r.Days())
		suite.True(days[0].Date.Equal(r.Start))
		suite.True(days[len(days)-1].Date.Equal(r.End))
		for i := 1; i < len(days); i++ {
			suite.True(days[i].Date.Equal(days[i-1].Date.AddDate(0, 0, 1)))
		}
	}
}

func (suite *MergeStatusesTestSuite) TestDefaultsAndWeekends() {
	days := MergeStatuses(suite.december, nil, nil)

	monday := suite.statusOn(days, utc(2024, time.December, 2))
	suite.Equal(models.LeaveStatusAvailable, monday.Status)
	suite.False(monday.IsWeekend)

	saturday := suite.statusOn(days, utc(2024, time.December, 28))
	suite.Equal(models.LeaveStatusWeekend, saturday.Status)
	suite.True(saturday.IsWeekend)
	suite.False(saturday.IsCompanyHoliday)
}

func (suite *MergeStatusesTestSuite) TestCompanyHolidayOnlyAffectsItsDate() {
	days := MergeStatuses(suite.december, nil, []models.CompanyHoliday{holiday(utc(2024, time.December, 25), "Christmas")})

	for _, ds := range days {
		if ds.Date.Equal(utc(2024, time.December, 25)) {
			suite.Equal(models.LeaveStatusCompanyHoliday, ds.Status)
			suite.True(ds.IsCompanyHoliday)
			suite.Require().NotNil(ds.HolidayName)
			suite.Equal("Christmas", *ds.HolidayName)
			continue
		}
		suite.NotEqual(models.LeaveStatusCompanyHoliday, ds.Status)
		suite.False(ds.IsCompanyHoliday)
		suite.Nil(ds.HolidayName)
	}
}

func (suite *MergeStatusesTestSuite) TestPersonalRecordBeatsCompanyHoliday() {
	christmas := utc(2024, time.December, 25)
	days := MergeStatuses(suite.december,
		[]models.LeaveDate{leave("42", christmas, models.LeaveStatusLeave)},
		[]models.CompanyHoliday{holiday(christmas, "")},
	)

	ds := suite.statusOn(days, christmas)
	suite.Equal(models.LeaveStatusLeave, ds.Status)
	suite.True(ds.IsCompanyHoliday)
	suite.Nil(ds.HolidayName)
}

func (suite *MergeStatusesTestSuite) TestWeekendFlagIndependentOfStatus() {
	saturday := utc(2024, time.December, 28)
	days := MergeStatuses(suite.december,
		[]models.LeaveDate{leave("42", saturday, models.LeaveStatusAvailable)}, nil)

	ds := suite.statusOn(days, saturday)
	suite.True(ds.IsWeekend)
	suite.Equal(models.LeaveStatusAvailable, ds.Status)
}

func (suite *MergeStatusesTestSuite) TestCompanyHolidayOnWeekend() {
	sunday := utc(2024, time.December, 29)
	days := MergeStatuses(suite.december, nil, []models.CompanyHoliday{holiday(sunday, "")})

	ds := suite.statusOn(days, sunday)
	suite.Equal(models.LeaveStatusCompanyHoliday, ds.Status)
	suite.True(ds.IsWeekend)
	suite.True(ds.IsCompanyHoliday)
}

func (suite *MergeStatusesTestSuite) TestDuplicatePersonalRecordsLastWins() {
	day := utc(2024, time.December, 10)
	days := MergeStatuses(suite.december, []models.LeaveDate{
		leave("42", day, models.LeaveStatusLeave),
		leave("42", day, models.LeaveStatusHoliday),
	}, nil)

	suite.Equal(models.LeaveStatusHoliday, suite.statusOn(days, day).Status)
}

func (suite *MergeStatusesTestSuite) TestRecordsOutsideRangeIgnored() {
	days := MergeStatuses(SingleDay(utc(2024, time.December, 10)),
		[]models.LeaveDate{leave("42", utc(2024, time.December, 11), models.LeaveStatusLeave)},
		[]models.CompanyHoliday{holiday(utc(2024, time.December, 9), "")},
	)

	require.Len(suite.T(), days, 1)
	suite.Equal(models.LeaveStatusAvailable, days[0].Status)
	suite.False(days[0].IsCompanyHoliday)
}

func TestMergeStatusesTestSuite(t *testing.T) {
	suite.Run(t, new(MergeStatusesTestSuite))
}

func TestMergeStatuses_DecemberEndToEnd(t *testing.T) {
	r, err := ResolveRange(nil, nil, time.Date(2024, time.December, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	days := MergeStatuses(r, nil, []models.CompanyHoliday{holiday(utc(2024, time.December, 25), "")})

	require.Len(t, days, 31)
	assert.Equal(t, "2024-12-01", days[0].Date.String())
	assert.Equal(t, "2024-12-31", days[30].Date.String())

	var holidays []string
	for _, ds := range days {
		if ds.Status == models.LeaveStatusCompanyHoliday {
			holidays = append(holidays, ds.Date.String())
		}
	}
	assert.Equal(t, []string{"2024-12-25"}, holidays)
}
