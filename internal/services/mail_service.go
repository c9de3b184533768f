package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"mime"
	"net"
	"net/smtp"
	"sort"
	"strings"
	texttemplate "text/template"
	"time"

	"go.uber.org/zap"

	"cougcuts/internal/engine"
	"cougcuts/internal/models/db_models"
)

var ErrMailNotConfigured = errors.New("smtp mail not configured")

type IMailService interface {
	SendRoutineEmail(ctx context.Context, lead *db_models.Lead, routine engine.GeneratedRoutine, documentURL string) error
}

// SMTPConfig holds SMTP and branding settings.
type SMTPConfig struct {
	Host       string
	Port       int // 587 for STARTTLS, 465 with UseSSL
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool
	RequireTLS bool // fail if STARTTLS is not offered

	BookingURL string
}

const emailPreviewItems = 3

type sendFunc func(ctx context.Context, to string, e renderedEmail) error

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *htmltemplate.Template
	textTpl *texttemplate.Template
	send    sendFunc
	logger  *zap.Logger
}

func NewSMTPMailService(cfg SMTPConfig, logger *zap.Logger) (IMailService, error) {
	s, err := newSMTPMailService(cfg, logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newSMTPMailService(cfg SMTPConfig, logger *zap.Logger) (*smtpMailService, error) {
	htmlTpl, err := htmltemplate.New("routineHTML").Funcs(htmltemplate.FuncMap(templateFuncs)).Parse(routineHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse routine html template: %w", err)
	}
	textTpl, err := texttemplate.New("routineText").Funcs(texttemplate.FuncMap(templateFuncs)).Parse(routineTextTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse routine text template: %w", err)
	}
	if cfg.BookingURL == "" {
		cfg.BookingURL = "https://cougcuts.com/book"
	}

	s := &smtpMailService{cfg: cfg, htmlTpl: htmlTpl, textTpl: textTpl, logger: logger}
	s.send = s.sendSMTP
	return s, nil
}

func (s *smtpMailService) SendRoutineEmail(ctx context.Context, lead *db_models.Lead, routine engine.GeneratedRoutine, documentURL string) error {
	email, err := s.renderRoutineEmail(lead, routine, documentURL)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := s.send(ctx, lead.Email, email); err != nil {
		return fmt.Errorf("send routine email: %w", err)
	}
	s.logger.Info("routine email sent",
		zap.String("lead_id", lead.ID.String()),
		zap.String("hair_type", lead.HairType),
		zap.Duration("took", time.Since(start)))
	return nil
}

// ------------------- Rendering -------------------

type renderedEmail struct {
	Subject string
	HTML    string
	Text    string
	Headers map[string]string
}

type routineEmailData struct {
	FirstName      string
	HairType       string
	Routine        engine.GeneratedRoutine
	MorningPreview []engine.RoutineStep
	MoreMorning    bool
	ProductPreview []engine.Product
	DocumentURL    string
	BookingURL     string
	ContactEmail   string
}

func routineSubject(hairType string) string {
	return fmt.Sprintf("Your Personalized %s Hair Care Routine is Ready!", titleCase(hairType))
}

func (s *smtpMailService) renderRoutineEmail(lead *db_models.Lead, routine engine.GeneratedRoutine, documentURL string) (renderedEmail, error) {
	data := routineEmailData{
		FirstName:      displayName(lead.Name, "there"),
		HairType:       lead.HairType,
		Routine:        routine,
		MorningPreview: routine.FirstMorningSteps(emailPreviewItems),
		MoreMorning:    len(routine.MorningRoutine) > emailPreviewItems,
		ProductPreview: routine.FirstProducts(emailPreviewItems),
		DocumentURL:    documentURL,
		BookingURL:     s.cfg.BookingURL,
		ContactEmail:   s.contactEmail(),
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return renderedEmail{}, fmt.Errorf("render routine html: %w", err)
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return renderedEmail{}, fmt.Errorf("render routine text: %w", err)
	}

	return renderedEmail{
		Subject: routineSubject(lead.HairType),
		HTML:    hb.String(),
		Text:    strings.TrimSpace(tb.String()),
		Headers: map[string]string{
			"X-Email-Category": db_models.EmailTypeRoutineDelivery,
			"X-Hair-Type":      lead.HairType,
			"List-Unsubscribe": fmt.Sprintf("<mailto:%s?subject=unsubscribe>", s.contactEmail()),
		},
	}, nil
}

func (s *smtpMailService) contactEmail() string {
	if s.cfg.From != "" {
		return s.cfg.From
	}
	return "logan@cougcuts.com"
}

const routineHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Your Hair Care Routine</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="text-align: center; margin-bottom: 30px;">
    <h1 style="color: #8B0000; margin-bottom: 10px;">Your Personalized Hair Care Routine</h1>
    <p style="color: #666; font-size: 16px;">Created specifically for your {{.HairType}} hair</p>
  </div>

  <p style="font-size: 18px;">Hey {{.FirstName}}! 👋</p>
  <p>Your personalized {{.HairType}} hair care routine is ready! I've put together a complete routine that works with YOUR specific hair texture, YOUR schedule at WSU, and YOUR budget.</p>

  <div style="background: #f5f5f5; padding: 20px; border-radius: 10px; margin: 20px 0;">
    <h3 style="color: #8B0000; margin-top: 0;">Your Profile:</h3>
    <p style="margin: 10px 0;"><strong>Hair Type:</strong> {{.HairType}}</p>
    <p style="margin: 10px 0;"><strong>Profile ID:</strong> {{.Routine.ProfileID}}</p>
    <p style="margin: 10px 0;"><strong>Monthly Budget:</strong> ~${{price .Routine.MonthlyCost}}</p>
  </div>

  <div style="background: #fff3cd; border-left: 4px solid #8B0000; padding: 15px; margin: 20px 0;">
    <h4 style="margin-top: 0; color: #8B0000;">Your Specific Challenge:</h4>
    <p style="margin: 0;">{{.Routine.Challenge}}</p>
  </div>

  <div style="margin: 30px 0;">
    <h3 style="color: #8B0000;">Quick Morning Routine ({{.Routine.EstimatedTime.Morning}} min):</h3>
    <ol style="padding-left: 20px;">
      {{range .MorningPreview}}<li style="margin: 10px 0;">{{.Step}}</li>{{end}}
      {{if .MoreMorning}}<li><em>...and more in your full routine</em></li>{{end}}
    </ol>
  </div>

  <div style="margin: 30px 0;">
    <h3 style="color: #8B0000;">Your Recommended Products:</h3>
    {{range .ProductPreview}}
    <div style="margin: 15px 0; padding: 15px; background: #f9f9f9; border-radius: 8px;">
      <strong>{{upper .Category}}: {{.Name}}</strong> (${{price .Price}})<br>
      <span style="color: #666; font-size: 14px;">{{.Description}}</span>
    </div>
    {{end}}
  </div>

  {{if .DocumentURL}}
  <div style="text-align: center; margin: 40px 0;">
    <a href="{{.DocumentURL}}" style="display: inline-block; background: #8B0000; color: white; padding: 15px 30px; text-decoration: none; border-radius: 25px; font-weight: bold; font-size: 16px;">
      Download Your Complete Routine
    </a>
  </div>
  {{end}}

  <div style="background: linear-gradient(135deg, #8B0000 0%, #6B0000 100%); color: white; padding: 30px; border-radius: 15px; text-align: center; margin: 40px 0;">
    <h3 style="margin-top: 0; color: white;">Ready to Take It to the Next Level?</h3>
    <p style="color: rgba(255,255,255,0.9);">Your routine is a great start, but there's nothing like getting a cut from someone who REALLY understands your hair.</p>
    <a href="{{.BookingURL}}" style="display: inline-block; background: white; color: #8B0000; padding: 15px 30px; text-decoration: none; border-radius: 25px; font-weight: bold; margin-top: 15px;">
      Book Your Cut at Coug Cuts - $40
    </a>
  </div>

  <div style="margin-top: 40px; padding-top: 20px; border-top: 2px solid #eee; text-align: center; color: #666; font-size: 14px;">
    <p><strong>Logan at Coug Cuts</strong><br>
    Washington State University<br>
    <a href="mailto:{{.ContactEmail}}" style="color: #8B0000;">{{.ContactEmail}}</a></p>
    <p style="margin-top: 20px;">
      <a href="https://instagram.com/cougcuts" style="color: #8B0000; text-decoration: none;">Instagram</a>
    </p>
    <p style="font-size: 12px; color: #999; margin-top: 20px;">
      P.S. Screenshot this routine and show it at your appointment for a personalized product recommendation session!
    </p>
  </div>
</body>
</html>`

const routineTextTemplate = `
Hey {{.FirstName}}!

Your personalized {{.HairType}} hair care routine is ready!

YOUR PROFILE:
- Hair Type: {{.HairType}}
- Profile ID: {{.Routine.ProfileID}}
- Monthly Budget: ~${{price .Routine.MonthlyCost}}

YOUR SPECIFIC CHALLENGE:
{{.Routine.Challenge}}

MORNING ROUTINE ({{.Routine.EstimatedTime.Morning}} min):
{{range $i, $s := .Routine.MorningRoutine}}{{inc $i}}. {{$s.Step}}
{{end}}
YOUR PRODUCTS:
{{range .Routine.Products}}- {{upper .Category}}: {{.Name}} (${{price .Price}})
{{end}}{{if .DocumentURL}}
DOWNLOAD YOUR COMPLETE ROUTINE:
{{.DocumentURL}}
{{end}}
READY TO LEVEL UP YOUR HAIR?
Book your cut at Coug Cuts: {{.BookingURL}}

Logan at Coug Cuts
Washington State University
{{.ContactEmail}}
Instagram: @cougcuts
`

// ------------------- SMTP Send -------------------

func (s *smtpMailService) buildMessage(to string, e renderedEmail) []byte {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", e.Subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	keys := make([]string, 0, len(e.Headers))
	for k := range e.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		write("%s: %s\r\n", k, e.Headers[k])
	}
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", e.Text)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", e.HTML)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func (s *smtpMailService) sendSMTP(ctx context.Context, to string, e renderedEmail) error {
	msg := s.buildMessage(to, e)
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	var (
		conn net.Conn
		err  error
	)
	if s.cfg.UseSSL {
		// SMTPS, implicit TLS
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsCfg}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if err = c.Auth(auth); err != nil {
		return err
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.BEncoding.Encode("UTF-8", name), s.cfg.From)
}

// disabledMailService stands in when no SMTP credentials are configured.
type disabledMailService struct {
	logger *zap.Logger
}

func NewDisabledMailService(logger *zap.Logger) IMailService {
	return &disabledMailService{logger: logger}
}

func (d *disabledMailService) SendRoutineEmail(ctx context.Context, lead *db_models.Lead, routine engine.GeneratedRoutine, documentURL string) error {
	d.logger.Debug("mail disabled, routine email skipped", zap.String("lead_id", lead.ID.String()))
	return ErrMailNotConfigured
}
