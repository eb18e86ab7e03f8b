package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReportKind identifies one of the daily report categories.
type ReportKind string

const (
	KindAmoli         ReportKind = "amoli"
	KindMoktob        ReportKind = "moktob"
	KindDawati        ReportKind = "dawati"
	KindDawatiMojlish ReportKind = "dawati-mojlish"
	KindJamat         ReportKind = "jamat"
	KindDineFera      ReportKind = "dine-fera"
	KindSofor         ReportKind = "sofor"
	KindTalim         ReportKind = "talim"
	KindDayi          ReportKind = "dayi"
)

// AllReportKinds contains all valid report kinds
var AllReportKinds = []ReportKind{
	KindAmoli, KindMoktob, KindDawati, KindDawatiMojlish,
	KindJamat, KindDineFera, KindSofor, KindTalim, KindDayi,
}

// IsValid checks if a report kind is valid
func (k ReportKind) IsValid() bool {
	for _, kind := range AllReportKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// String returns the string representation of the kind
func (k ReportKind) String() string {
	return string(k)
}

// Report is implemented by every daily report type.
type Report interface {
	TableName() string
	HasData() bool
}

// BaseHolder exposes the embedded ReportBase of a concrete report.
type BaseHolder interface {
	Base() *ReportBase
}

// ReportBase carries the fields shared by every report table. ReportDate is
// always the Dhaka-midnight instant of the submission day; CreatedAt is the
// raw submission instant.
type ReportBase struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	ReportDate time.Time `json:"reportDate" gorm:"not null;index"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Base returns the embedded ReportBase.
func (b *ReportBase) Base() *ReportBase {
	return b
}

// AmoliReport tracks a Dayee's personal worship for one day.
type AmoliReport struct {
	ReportBase
	Tahajjud   int    `json:"tahajjud"`
	JamatSalat int    `json:"jamatSalat"`
	Ishraq     int    `json:"ishraq"`
	Surah      string `json:"surah"`
	Ayat       string `json:"ayat"`
	Zikir      string `json:"zikir"`
	Sirat      string `json:"sirat"`
	Hadith     string `json:"hadith"`
}

func (AmoliReport) TableName() string { return "amoli_reports" }

func (r AmoliReport) HasData() bool {
	return r.Tahajjud > 0 || r.JamatSalat > 0 || r.Ishraq > 0 ||
		r.Surah != "" || r.Ayat != "" || r.Zikir != "" || r.Sirat != "" || r.Hadith != ""
}

// MoktobReport tracks moktob (children's religious school) statistics.
type MoktobReport struct {
	ReportBase
	NewMoktob       int `json:"newMoktob"`
	TotalMoktob     int `json:"totalMoktob"`
	NewStudents     int `json:"newStudents"`
	TotalStudents   int `json:"totalStudents"`
	GuardianMeeting int `json:"guardianMeeting"`
}

func (MoktobReport) TableName() string { return "moktob_reports" }

func (r MoktobReport) HasData() bool {
	return r.NewMoktob > 0 || r.TotalMoktob > 0 || r.NewStudents > 0 ||
		r.TotalStudents > 0 || r.GuardianMeeting > 0
}

// DawatiReport tracks outreach visits.
type DawatiReport struct {
	ReportBase
	NonMuslimDawat int `json:"nonMuslimDawat"`
	MuslimDawat    int `json:"muslimDawat"`
	NonMuslimSaved int `json:"nonMuslimSaved"`
	MuslimSaved    int `json:"muslimSaved"`
}

func (DawatiReport) TableName() string { return "dawati_reports" }

func (r DawatiReport) HasData() bool {
	return r.NonMuslimDawat > 0 || r.MuslimDawat > 0 || r.NonMuslimSaved > 0 || r.MuslimSaved > 0
}

// DawatiMojlishReport tracks outreach gatherings.
type DawatiMojlishReport struct {
	ReportBase
	CurrentMojlish  int `json:"currentMojlish"`
	NewMojlish      int `json:"newMojlish"`
	TotalAttendance int `json:"totalAttendance"`
}

func (DawatiMojlishReport) TableName() string { return "dawati_mojlish_reports" }

func (r DawatiMojlishReport) HasData() bool {
	return r.CurrentMojlish > 0 || r.NewMojlish > 0 || r.TotalAttendance > 0
}

// JamatReport tracks outgoing jamat groups.
type JamatReport struct {
	ReportBase
	JamatCount   int `json:"jamatCount"`
	JamatMembers int `json:"jamatMembers"`
}

func (JamatReport) TableName() string { return "jamat_reports" }

func (r JamatReport) HasData() bool {
	return r.JamatCount > 0 || r.JamatMembers > 0
}

// DineFeraReport tracks people returning to practice.
type DineFeraReport struct {
	ReportBase
	NonMuslimFera int `json:"nonMuslimFera"`
	MuslimFera    int `json:"muslimFera"`
}

func (DineFeraReport) TableName() string { return "dine_fera_reports" }

func (r DineFeraReport) HasData() bool {
	return r.NonMuslimFera > 0 || r.MuslimFera > 0
}

// SoforReport tracks travel between centers.
type SoforReport struct {
	ReportBase
	MarkazVisit int    `json:"markazVisit"`
	MoktobVisit int    `json:"moktobVisit"`
	SoforDays   int    `json:"soforDays"`
	Notes       string `json:"notes"`
}

func (SoforReport) TableName() string { return "sofor_reports" }

func (r SoforReport) HasData() bool {
	return r.MarkazVisit > 0 || r.MoktobVisit > 0 || r.SoforDays > 0 || r.Notes != ""
}

// TalimReport tracks study circles.
type TalimReport struct {
	ReportBase
	MohilaTalim      int `json:"mohilaTalim"`
	TalimAttendance  int `json:"talimAttendance"`
	BookDistribution int `json:"bookDistribution"`
}

func (TalimReport) TableName() string { return "talim_reports" }

func (r TalimReport) HasData() bool {
	return r.MohilaTalim > 0 || r.TalimAttendance > 0 || r.BookDistribution > 0
}

// DayiReport tracks assistant Dayee recruitment. Assistants is the roster of
// names recorded that day.
type DayiReport struct {
	ReportBase
	SohojogiDayee int                         `json:"sohojogiDayee"`
	Assistants    datatypes.JSONSlice[string] `json:"assistants"`
}

func (DayiReport) TableName() string { return "dayi_reports" }

func (r DayiReport) HasData() bool {
	return r.SohojogiDayee > 0 || len(r.Assistants) > 0
}
