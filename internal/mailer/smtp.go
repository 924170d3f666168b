package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const smtpProvider = "smtp"

// SMTPConfig holds SMTP relay settings
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string // verified sender, defaults to Username
	To       string
}

// SMTP sends contact messages to the site owner's inbox
type SMTP struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTP creates an SMTP sender using net/smtp
func NewSMTP(cfg SMTPConfig) *SMTP {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTP{cfg: cfg, sendMail: smtp.SendMail}
}

// Send renders the message as HTML and relays it
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return &DeliveryError{Provider: smtpProvider, Err: err}
	}

	var body bytes.Buffer
	if err := contactEmail(msg).Render(&body); err != nil {
		return fmt.Errorf("failed to render contact email: %w", err)
	}

	raw := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.cfg.From,
		s.cfg.To,
		headerSafe(msg.Email),
		headerSafe("Contact Form: "+msg.Subject),
		body.String(),
	))

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	if err := s.sendMail(addr, auth, s.cfg.From, []string{s.cfg.To}, raw); err != nil {
		return &DeliveryError{Provider: smtpProvider, Err: err}
	}
	return nil
}

// headerSafe strips CR/LF so visitor input cannot inject headers
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

func contactEmail(msg Message) g.Node {
	field := func(label string, value g.Node) g.Node {
		return Div(Style("margin-bottom:15px"),
			Div(Style("font-weight:bold;color:#555"), g.Text(label)),
			Div(Style("margin-top:5px"), value),
		)
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Head(Meta(Charset("utf-8")), TitleEl(g.Text("New Contact Form Submission"))),
			Body(Style("font-family:Arial,sans-serif;line-height:1.6;color:#333"),
				Div(Style("max-width:600px;margin:0 auto;padding:20px"),
					H1(Style("background:#0070f3;color:white;padding:20px;text-align:center"),
						g.Text("New Contact Form Submission")),
					field("From:", g.Textf("%s (%s)", msg.Name, msg.Email)),
					field("Subject:", g.Text(msg.Subject)),
					field("Sent:", g.Text(msg.Date)),
					field("Message:", Div(
						Style("background:white;padding:15px;border-left:4px solid #0070f3;white-space:pre-wrap"),
						g.Text(msg.Message),
					)),
					P(Style("text-align:center;color:#888;font-size:12px"),
						g.Textf("To reply, send an email to: %s", msg.Email)),
				),
			),
		),
	})
}
