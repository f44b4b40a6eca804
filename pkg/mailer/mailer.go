package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"net/url"
)

// Config holds SMTP configuration
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	FromName string
	// VerifyURL is the base URL of the guest verification page the
	// check-in email deep-links to.
	VerifyURL string
}

// Mailer handles sending emails
type Mailer struct {
	config Config
}

// New creates a new Mailer instance
func New(cfg Config) *Mailer {
	return &Mailer{config: cfg}
}

// CheckInLink builds the verification deep link carrying the guest's
// check-in details as percent-encoded query parameters.
func CheckInLink(base, name, email, room, hotel string) string {
	q := url.Values{}
	q.Set("name", name)
	q.Set("email", email)
	q.Set("room", room)
	q.Set("hotel", hotel)
	return base + "?" + q.Encode()
}

// SendCheckIn sends the check-in welcome email with a verification deep link
func (m *Mailer) SendCheckIn(toEmail, name, room, hotel string) error {
	subject := fmt.Sprintf("Welcome to %s, %s!", hotel, name)
	deepLink := CheckInLink(m.config.VerifyURL, name, toEmail, room, hotel)

	body, err := m.renderCheckInTemplate(name, room, hotel, deepLink)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return m.send(toEmail, subject, body)
}

// send delivers an email via SMTP
func (m *Mailer) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", m.config.FromName, m.config.User),
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"utf-8\"",
	}

	var msg bytes.Buffer
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	var auth smtp.Auth
	if m.config.User != "" && m.config.Password != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	err := smtp.SendMail(addr, auth, m.config.User, []string{to}, msg.Bytes())
	if err != nil {
		log.Printf("❌ Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("📩 Email sent to %s: %s", to, subject)
	return nil
}

// renderCheckInTemplate returns the HTML body for the check-in email
func (m *Mailer) renderCheckInTemplate(name, room, hotel, deepLink string) (string, error) {
	tmpl := `<div style="font-family: Arial, sans-serif; color: #333; padding: 20px;">
    <h2 style="color: #e22828;">Welcome to {{.Hotel}}!</h2>
    <p>Dear {{.Name}},</p>
    <p>You have successfully checked in to <strong>{{.Room}}</strong>.</p>
    <p>To start chatting with our assistant, click the button below:</p>
    <p style="text-align: center;">
        <a href="{{.DeepLink}}" style="background-color: #e22828; color: white; padding: 12px 20px; text-decoration: none; border-radius: 5px;">Click to Verify</a>
    </p>
    <p>If the button doesn't work, copy and paste the following URL in your browser:</p>
    <code>{{.DeepLink}}</code>
    <p>Enjoy your stay!<br>The {{.Hotel}} Team</p>
</div>`

	t, err := template.New("checkin").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = t.Execute(&buf, map[string]interface{}{
		"Name":     name,
		"Room":     room,
		"Hotel":    hotel,
		"DeepLink": template.URL(deepLink),
	})
	return buf.String(), err
}
