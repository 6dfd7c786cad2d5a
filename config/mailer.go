package config

import (
	"crypto/tls"
	"errors"

	mail "github.com/go-mail/mail/v2"
)

// ErrMailNotConfigured is returned when SMTP_HOST or SMTP_FROM is missing.
var ErrMailNotConfigured = errors.New("smtp not configured (SMTP_HOST/SMTP_FROM)")

// SendMail delivers an HTML message using the SMTP settings in Current.
func SendMail(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}
	smtp := Current.SMTP
	if smtp.Host == "" || smtp.From == "" {
		return ErrMailNotConfigured
	}

	m := mail.NewMessage()
	m.SetHeader("From", smtp.From)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := mail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Pass)

	// Port 587 relays (Gmail, Office365) require STARTTLS.
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         smtp.Host,
		InsecureSkipVerify: smtp.SkipTLSVerify, // dev only
	}

	return d.DialAndSend(m)
}
