package mail

import "html/template"

type LeadNotificationData struct {
	CompanyName string
	City        string
	Seats       string
	ContactName string
	Email       string
	Phone       string
	SubmittedAt string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

// NotifyError wraps any failure between template rendering and the SMTP
// server accepting the message.
type NotifyError struct {
	Err error
}

func (e *NotifyError) Error() string {
	return "mail: lead notification failed: " + e.Err.Error()
}

func (e *NotifyError) Unwrap() error { return e.Err }

var leadNotificationTmpl = template.Must(template.New("lead-notification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #4F46E5;">New Lead Submission</h2>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #1f2937;">Company Information</h3>
    <p><strong>Company Name:</strong> {{.CompanyName}}</p>
    <p><strong>City:</strong> {{.City}}</p>
    <p><strong>Number of Seats:</strong> {{.Seats}}</p>
  </div>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px;">
    <h3 style="margin-top: 0; color: #1f2937;">Contact Details</h3>
    <p><strong>Name:</strong> {{.ContactName}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
  </div>
  <p style="color: #6b7280; font-size: 14px; margin-top: 20px;">
    Submitted on: {{.SubmittedAt}}
  </p>
</div>
`))
