package entity

import (
	"testing"

	"github.com/diegoclair/slack-wfo-bot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestWeekSchedule_OfficeDaysCount(t *testing.T) {
	tests := []struct {
		name     string
		schedule WeekSchedule
		want     int
	}{
		{
			name:     "Should count zero for an empty schedule",
			schedule: WeekSchedule{},
			want:     0,
		},
		{
			name: "Should count only office days",
			schedule: WeekSchedule{
				Monday:    StatusOffice,
				Tuesday:   StatusHome,
				Wednesday: StatusOffice,
				Thursday:  StatusHybrid,
				Friday:    StatusLeave,
			},
			want: 2,
		},
		{
			name: "Should count a full office week",
			schedule: WeekSchedule{
				Monday:    StatusOffice,
				Tuesday:   StatusOffice,
				Wednesday: StatusOffice,
				Thursday:  StatusOffice,
				Friday:    StatusOffice,
			},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.schedule.OfficeDaysCount())
		})
	}
}

func TestWeekSchedule_Merge(t *testing.T) {
	tests := []struct {
		name     string
		stored   WeekSchedule
		incoming WeekSchedule
		want     WeekSchedule
	}{
		{
			name:     "Should keep stored days the incoming schedule says nothing about",
			stored:   WeekSchedule{Monday: StatusOffice, Tuesday: StatusHome},
			incoming: WeekSchedule{Wednesday: StatusOffice},
			want:     WeekSchedule{Monday: StatusOffice, Tuesday: StatusHome, Wednesday: StatusOffice},
		},
		{
			name:     "Should overwrite stored days with incoming values",
			stored:   WeekSchedule{Monday: StatusOffice},
			incoming: WeekSchedule{Monday: StatusLeave},
			want:     WeekSchedule{Monday: StatusLeave},
		},
		{
			name:     "Should leave the stored schedule untouched for an empty incoming one",
			stored:   WeekSchedule{Friday: StatusHybrid},
			incoming: WeekSchedule{},
			want:     WeekSchedule{Friday: StatusHybrid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stored.Merge(tt.incoming))
		})
	}
}

func TestWeekSchedule_Merge_Idempotent(t *testing.T) {
	stored := WeekSchedule{Monday: StatusOffice, Wednesday: StatusHome}
	incoming := WeekSchedule{Monday: StatusHome, Friday: StatusOffice}

	once := stored.Merge(incoming)
	twice := once.Merge(incoming)

	assert.Equal(t, once, twice)
}

func TestWeekSchedule_OfficeDayNames(t *testing.T) {
	schedule := WeekSchedule{
		Monday:    StatusOffice,
		Tuesday:   StatusHome,
		Wednesday: StatusOffice,
	}

	assert.Equal(t, []string{"Monday", "Wednesday"}, schedule.OfficeDayNames())
	assert.Nil(t, WeekSchedule{}.OfficeDayNames())
}

func TestEvaluateCompliance(t *testing.T) {
	tests := []struct {
		name          string
		schedule      WeekSchedule
		minOfficeDays int
		want          Compliance
	}{
		{
			name:          "Should be non-compliant for an empty schedule",
			schedule:      WeekSchedule{},
			minOfficeDays: 3,
			want:          Compliance{OfficeDaysCount: 0, IsCompliant: false},
		},
		{
			name: "Should be non-compliant below the minimum",
			schedule: WeekSchedule{
				Monday:  StatusOffice,
				Tuesday: StatusOffice,
			},
			minOfficeDays: 3,
			want:          Compliance{OfficeDaysCount: 2, IsCompliant: false},
		},
		{
			name: "Should be compliant at exactly the minimum",
			schedule: WeekSchedule{
				Monday:    StatusOffice,
				Wednesday: StatusOffice,
				Friday:    StatusOffice,
			},
			minOfficeDays: 3,
			want:          Compliance{OfficeDaysCount: 3, IsCompliant: true},
		},
		{
			name: "Should not count hybrid or leave days toward the minimum",
			schedule: WeekSchedule{
				Monday:    StatusOffice,
				Tuesday:   StatusHybrid,
				Wednesday: StatusOffice,
				Thursday:  StatusLeave,
				Friday:    StatusHome,
			},
			minOfficeDays: 3,
			want:          Compliance{OfficeDaysCount: 2, IsCompliant: false},
		},
		{
			name:          "Should be compliant for any schedule when the minimum is zero",
			schedule:      WeekSchedule{},
			minOfficeDays: 0,
			want:          Compliance{OfficeDaysCount: 0, IsCompliant: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateCompliance(tt.schedule, tt.minOfficeDays))
		})
	}
}

func TestWeekSchedule_DayAccess(t *testing.T) {
	var schedule WeekSchedule

	schedule.SetDay(domain.Tuesday, StatusOffice)
	schedule.SetDay(domain.Saturday, StatusOffice)

	assert.Equal(t, StatusOffice, schedule.Day(domain.Tuesday))
	assert.Equal(t, StatusUnset, schedule.Day(domain.Saturday))
	assert.Equal(t, StatusUnset, schedule.Day(0))
}
