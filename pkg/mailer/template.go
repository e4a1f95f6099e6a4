package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// LowAttendanceData feeds the low-attendance warning template.
type LowAttendanceData struct {
	StudentName       string
	RollNumber        string
	Subject           string
	CurrentPercentage string
	Threshold         float64
	Gap               string
	AttendedClasses   int
	TotalClasses      int
	ClassesNeeded     int
}

// LowAttendanceSubject builds the warning subject line for a subject.
func LowAttendanceSubject(subject string) string {
	return fmt.Sprintf("⚠️ IMPORTANT: Low Attendance Warning for %s", subject)
}

var lowAttendanceTmpl = template.Must(template.New("low_attendance").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px;">
  <div style="background-color: #f8d7da; padding: 15px; border-radius: 5px; margin-bottom: 20px; border-left: 5px solid #dc3545;">
    <h2 style="color: #721c24; margin-top: 0;">Low Attendance Alert</h2>
    <p style="margin-bottom: 0;">This is an important notification regarding your attendance in {{.Subject}}.</p>
  </div>

  <p>Dear <strong>{{.StudentName}}</strong> (Roll No: {{.RollNumber}}),</p>

  <p>We are writing to inform you that your current attendance in <strong>{{.Subject}}</strong> has fallen below the acceptable threshold.</p>

  <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p style="margin: 5px 0;"><strong>Your current attendance:</strong> {{.CurrentPercentage}}% ({{.AttendedClasses}} out of {{.TotalClasses}} classes)</p>
    <p style="margin: 5px 0;"><strong>Required attendance threshold:</strong> {{.Threshold}}%</p>
    <p style="margin: 5px 0;"><strong>Gap to minimum requirement:</strong> {{.Gap}}%</p>
    <p style="margin: 5px 0;"><strong>Classes you need to attend consecutively:</strong> {{.ClassesNeeded}}</p>
  </div>

  <p><strong>Important:</strong> As per institutional policy, students with attendance below 75% may be prevented from taking examinations or may be subject to other academic penalties.</p>

  <div style="margin: 20px 0;">
    <h3>Actions Required:</h3>
    <ol>
      <li>Ensure regular attendance in all upcoming classes</li>
      <li>Meet with your course instructor to discuss your situation</li>
      <li>If you have legitimate reasons for absences (medical or otherwise), please submit appropriate documentation to the administration office</li>
    </ol>
  </div>

  <p>Please take this notification seriously and take immediate steps to improve your attendance. If you have any questions or need assistance, please contact your course instructor or the academic office.</p>

  <div style="margin-top: 30px; border-top: 1px solid #eee; padding-top: 20px;">
    <p style="margin: 5px 0;">Regards,</p>
    <p style="margin: 5px 0;"><strong>Academic Administration</strong></p>
    <p style="margin: 5px 0; color: #666; font-size: 0.9em;">This is an automated message. Please do not reply directly to this email.</p>
  </div>
</div>
`))

// RenderLowAttendance renders the HTML body of the warning email.
func RenderLowAttendance(data LowAttendanceData) (string, error) {
	buf := &bytes.Buffer{}
	if err := lowAttendanceTmpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("render low attendance email: %w", err)
	}
	return buf.String(), nil
}
