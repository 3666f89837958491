package mailer

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/mail.v2"
)

//go:embed "templates"
var templateFS embed.FS

type Config struct {
	Host     string `yaml:"host" envconfig:"SMTP_HOST" default:"localhost"`
	Port     int    `yaml:"port" envconfig:"SMTP_PORT" default:"25"`
	Username string `yaml:"username" envconfig:"SMTP_USERNAME"`
	Password string `yaml:"password" envconfig:"SMTP_PASSWORD"`
	Sender   string `yaml:"sender" envconfig:"SMTP_SENDER" default:"TURN THE PAGE Library <no-reply@turnthepage.local>"`
}

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Mailer renders an embedded template and delivers it over SMTP.
type Mailer struct {
	dialer   dialer
	sender   string
	attempts int
	backoff  time.Duration
}

func New(cfg Config) *Mailer {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.Timeout = 5 * time.Second
	return &Mailer{
		dialer:   d,
		sender:   cfg.Sender,
		attempts: 3,
		backoff:  time.Second,
	}
}

// Send renders the "subject", "plainBody" and "htmlBody" blocks of templateFile with data.
func (m *Mailer) Send(recipient, templateFile string, data any) error {
	msg, err := m.render(recipient, templateFile, data)
	if err != nil {
		return err
	}
	for i := 1; i <= m.attempts; i++ {
		err = m.dialer.DialAndSend(msg)
		if err == nil {
			return nil
		}
		if i < m.attempts {
			time.Sleep(m.backoff)
		}
	}
	return errors.Wrapf(err, "send %s to %s", templateFile, recipient)
}

func (m *Mailer) render(recipient, templateFile string, data any) (*mail.Message, error) {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return nil, errors.Wrap(err, "parse template")
	}
	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return nil, err
	}
	plainBody := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(plainBody, "plainBody", data); err != nil {
		return nil, err
	}
	htmlBody := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(htmlBody, "htmlBody", data); err != nil {
		return nil, err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/plain", plainBody.String())
	msg.AddAlternative("text/html", htmlBody.String())
	return msg, nil
}
