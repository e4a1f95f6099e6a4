package models

// Student is a learner registered on a course. Identity fields are immutable
// here; this module only reads them. The credential hash never serializes.
type Student struct {
	ID           string `db:"id" json:"id"`
	FullName     string `db:"full_name" json:"fullName"`
	RollNumber   string `db:"roll_number" json:"rollNumber"`
	Email        string `db:"email" json:"email"`
	CourseID     string `db:"course_id" json:"courseId"`
	SemesterID   string `db:"semester_id" json:"semId"`
	PasswordHash string `db:"password_hash" json:"-"`
}
