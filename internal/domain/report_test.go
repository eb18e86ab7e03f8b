package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportKind_IsValid(t *testing.T) {
	for _, kind := range AllReportKinds {
		assert.True(t, kind.IsValid(), "kind %s should be valid", kind)
	}
	assert.False(t, ReportKind("salat").IsValid())
	assert.False(t, ReportKind("").IsValid())
}

func TestReport_HasData(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   bool
	}{
		{name: "empty amoli", report: AmoliReport{}, want: false},
		{name: "amoli with numeric field", report: AmoliReport{Tahajjud: 1}, want: true},
		{name: "amoli with text field", report: AmoliReport{Surah: "Al-Fatiha"}, want: true},
		{name: "empty moktob", report: MoktobReport{}, want: false},
		{name: "moktob with students", report: MoktobReport{NewStudents: 3}, want: true},
		{name: "empty dawati", report: DawatiReport{}, want: false},
		{name: "dawati with visits", report: DawatiReport{MuslimDawat: 2}, want: true},
		{name: "empty dawati mojlish", report: DawatiMojlishReport{}, want: false},
		{name: "mojlish with attendance", report: DawatiMojlishReport{TotalAttendance: 12}, want: true},
		{name: "empty jamat", report: JamatReport{}, want: false},
		{name: "jamat with members", report: JamatReport{JamatMembers: 5}, want: true},
		{name: "empty dine fera", report: DineFeraReport{}, want: false},
		{name: "dine fera with count", report: DineFeraReport{MuslimFera: 1}, want: true},
		{name: "empty sofor", report: SoforReport{}, want: false},
		{name: "sofor with notes only", report: SoforReport{Notes: "visited two centers"}, want: true},
		{name: "empty talim", report: TalimReport{}, want: false},
		{name: "talim with books", report: TalimReport{BookDistribution: 4}, want: true},
		{name: "empty dayi", report: DayiReport{}, want: false},
		{name: "dayi with roster", report: DayiReport{Assistants: []string{"Abdul"}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.HasData())
		})
	}
}

func TestRole_IsAdmin(t *testing.T) {
	assert.False(t, RoleDayee.IsAdmin())
	assert.True(t, RoleMarkazAdmin.IsAdmin())
	assert.True(t, RoleDivisionAdmin.IsAdmin())
	assert.True(t, RoleCentralAdmin.IsAdmin())
}

func TestCalendarEvent_VisibleTo(t *testing.T) {
	open := &CalendarEvent{}
	assert.True(t, open.VisibleTo(RoleDayee))

	adminOnly := &CalendarEvent{Audience: []string{"markazadmin", "centraladmin"}}
	assert.False(t, adminOnly.VisibleTo(RoleDayee))
	assert.True(t, adminOnly.VisibleTo(RoleCentralAdmin))
}
