package models

import "time"

// AttendanceEntry is a single daily presence mark as stored and served.
type AttendanceEntry struct {
	Date    time.Time `db:"date" json:"date"`
	Present bool      `db:"present" json:"present"`
}

// AttendanceRecord is one appended row of a student's per-subject history.
// Rows are append-only; this module never updates or deletes them.
type AttendanceRecord struct {
	ID          string    `db:"id" json:"id"`
	StudentID   string    `db:"student_id" json:"studentId"`
	SubjectCode string    `db:"subject_code" json:"subjectCode"`
	Date        time.Time `db:"date" json:"date"`
	Present     bool      `db:"present" json:"present"`
	RecordedAt  time.Time `db:"recorded_at" json:"recordedAt"`
}

// AttendanceSummary is the denormalized running aggregate per student,
// course, semester, subject and academic year.
type AttendanceSummary struct {
	ID                   string    `db:"id" json:"id"`
	StudentID            string    `db:"student_id" json:"studentId"`
	CourseID             string    `db:"course_id" json:"courseId"`
	SemesterID           string    `db:"semester_id" json:"semId"`
	SubjectCode          string    `db:"subject_code" json:"subjectCode"`
	AcademicYear         string    `db:"academic_year" json:"academicYear"`
	TotalClasses         int       `db:"total_classes" json:"totalClasses"`
	AttendedClasses      int       `db:"attended_classes" json:"attendedClasses"`
	AttendancePercentage float64   `db:"attendance_percentage" json:"attendancePercentage"`
	LastUpdated          time.Time `db:"last_updated" json:"lastUpdated"`
}

// StudentAttendanceRow is one per-student line of the on-demand
// course/subject report, recomputed from the record history.
type StudentAttendanceRow struct {
	StudentID            string `json:"studentId"`
	StudentName          string `json:"studentName"`
	RollNumber           string `json:"rollNumber"`
	CourseID             string `json:"courseId"`
	SemesterID           string `json:"semId"`
	SubjectCode          string `json:"subjectCode"`
	AcademicYear         string `json:"academicYear"`
	ClassesAttended      int    `json:"classesAttended"`
	TotalClasses         int    `json:"totalClasses"`
	AttendancePercentage int    `json:"attendancePercentage"`
}

// AttendanceBatch carries one submission of daily marks for a class session.
type AttendanceBatch struct {
	CourseID     string
	SemesterID   string
	SubjectCode  string
	AcademicYear string
	Date         time.Time
	Entries      []BatchEntry
}

// BatchEntry is one student's mark within a batch.
type BatchEntry struct {
	StudentID string
	Present   bool
}
