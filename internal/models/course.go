package models

// Course is a degree program, looked up by its display name.
type Course struct {
	ID   string `db:"id" json:"courseId"`
	Name string `db:"name" json:"courseName"`
}

// Subject is a course unit taught in a specific semester.
type Subject struct {
	ID         string `db:"id" json:"id"`
	CourseID   string `db:"course_id" json:"courseId"`
	SemesterID string `db:"semester_id" json:"semId"`
	Code       string `db:"code" json:"subjectCode"`
	Name       string `db:"name" json:"subjectName"`
}
