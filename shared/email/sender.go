package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"

	"github.com/AnmolBudhewar8995/watchtime-booster/internal/duration"
	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"
	"github.com/AnmolBudhewar8995/watchtime-booster/shared/config"
)

type Sender struct {
	config *config.EmailConfig
}

func NewSender(cfg *config.EmailConfig) *Sender {
	return &Sender{
		config: cfg,
	}
}

// SendDigest renders and sends the scheduled optimization digest.
func (s *Sender) SendDigest(report *models.DigestReport) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}

	if len(report.Analyses) == 0 {
		return nil // Nothing worth reporting
	}

	subject := fmt.Sprintf("Watch-Time Digest - %d Videos With Optimization Potential (%s)",
		len(report.Analyses), report.Date.Format("Jan 2, 2006"))

	body, err := s.generateDigestBody(report)
	if err != nil {
		return fmt.Errorf("failed to generate email body: %w", err)
	}

	return s.SendHTML(subject, body)
}

// SendHTML sends an email with custom HTML content.
func (s *Sender) SendHTML(subject, htmlBody string) error {
	return s.sendViaSMTP(subject, htmlBody)
}

func (s *Sender) sendViaSMTP(subject, body string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.SMTPServer)

	to := []string{s.config.ToEmail}
	msg := []byte(fmt.Sprintf(`To: %s
From: %s
Subject: %s
MIME-Version: 1.0
Content-Type: text/html; charset=UTF-8

%s`, s.config.ToEmail, s.config.FromEmail, subject, body))

	addr := fmt.Sprintf("%s:%d", s.config.SMTPServer, s.config.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.FromEmail, to, msg)
}

func (s *Sender) generateDigestBody(report *models.DigestReport) (string, error) {
	tmplBytes, err := os.ReadFile(s.config.TemplateFile)
	if err != nil {
		return "", fmt.Errorf("failed to read email template: %w", err)
	}

	tmpl := template.New("digest").Funcs(template.FuncMap{
		"fmtDuration": duration.Format,
		"fmtSeconds": func(s int64) string {
			return duration.Format(int(s))
		},
	})

	tmpl, err = tmpl.Parse(string(tmplBytes))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return "", err
	}

	return buf.String(), nil
}
