package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cougcuts/internal/engine"
	"cougcuts/internal/models/db_models"
	mem "cougcuts/pkg/memcache"
	"cougcuts/pkg/utils"
)

// RoutineDocumentService renders the full routine guide and hands out
// expiring download links for it.
type RoutineDocumentService interface {
	Render(lead *db_models.Lead, routine engine.GeneratedRoutine) ([]byte, error)
	Store(ctx context.Context, leadID uuid.UUID, doc []byte) (string, error)
	Open(token string) (*StoredDocument, error)
}

type DocumentConfig struct {
	Dir     string
	BaseURL string
	LinkTTL time.Duration
}

type StoredDocument struct {
	Filename string
	Content  []byte
}

const DocumentRoutePrefix = "/routines/document/"

const linkTokenBytes = 24

type routineDocumentService struct {
	cfg    DocumentConfig
	tpl    *template.Template
	tokens mem.LinkTokenStore
	now    func() time.Time
	logger *zap.Logger
}

func NewRoutineDocumentService(cfg DocumentConfig, tokens mem.LinkTokenStore, logger *zap.Logger) (RoutineDocumentService, error) {
	tpl, err := template.New("routineDocument").Funcs(template.FuncMap(templateFuncs)).Parse(routineDocumentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse routine document template: %w", err)
	}
	return &routineDocumentService{cfg: cfg, tpl: tpl, tokens: tokens, now: time.Now, logger: logger}, nil
}

type routineDocumentData struct {
	Name        string
	HairType    string
	Routine     engine.GeneratedRoutine
	BudgetLabel string
	GeneratedOn string
}

func (s *routineDocumentService) Render(lead *db_models.Lead, routine engine.GeneratedRoutine) ([]byte, error) {
	var buf bytes.Buffer
	err := s.tpl.Execute(&buf, routineDocumentData{
		Name:        displayName(lead.Name, "You"),
		HairType:    lead.HairType,
		Routine:     routine,
		BudgetLabel: budgetLabel(routine.MonthlyCost),
		GeneratedOn: utils.FormatDisplay(s.now()),
	})
	if err != nil {
		return nil, fmt.Errorf("render routine document: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *routineDocumentService) Store(ctx context.Context, leadID uuid.UUID, doc []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create document dir: %w", err)
	}

	filename := fmt.Sprintf("routine_%s_%d.html", leadID, s.now().Unix())
	if err := os.WriteFile(filepath.Join(s.cfg.Dir, filename), doc, 0o644); err != nil {
		return "", fmt.Errorf("write routine document: %w", err)
	}

	if n := s.tokens.Sweep(); n > 0 {
		s.logger.Debug("expired document links swept", zap.Int("count", n))
	}
	token, err := utils.GenerateSecureToken(linkTokenBytes)
	if err != nil {
		return "", fmt.Errorf("generate document token: %w", err)
	}
	s.tokens.Set(token, filename, s.cfg.LinkTTL)

	return strings.TrimRight(s.cfg.BaseURL, "/") + DocumentRoutePrefix + token, nil
}

func (s *routineDocumentService) Open(token string) (*StoredDocument, error) {
	filename, ok := s.tokens.Peek(token)
	if !ok {
		return nil, utils.ErrDocumentNotFound
	}
	content, err := os.ReadFile(filepath.Join(s.cfg.Dir, filepath.Base(filename)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, utils.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("read routine document: %w", err)
	}
	return &StoredDocument{Filename: filename, Content: content}, nil
}

const routineDocumentTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Hair Care Routine - {{.Name}} {{.HairType}} Hair</title>
  <style>
    @page { size: A4; margin: 40px; }
    body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; font-size: 11pt; line-height: 1.6; color: #333; }
    h1 { color: #8B0000; font-size: 24pt; margin-bottom: 10px; border-bottom: 3px solid #8B0000; padding-bottom: 10px; }
    h2 { color: #8B0000; font-size: 16pt; margin-top: 25px; margin-bottom: 10px; }
    h3 { color: #333; font-size: 13pt; margin-top: 15px; margin-bottom: 8px; }
    .header { text-align: center; margin-bottom: 30px; }
    .subtitle { color: #666; font-size: 10pt; }
    .challenge-box { background: #fff3cd; border-left: 4px solid #8B0000; padding: 15px; margin: 20px 0; page-break-inside: avoid; }
    .routine-step { margin: 10px 0; padding-left: 25px; position: relative; }
    .routine-step:before { content: "•"; position: absolute; left: 5px; color: #8B0000; font-weight: bold; font-size: 14pt; }
    .tip { color: #666; font-size: 9pt; margin-left: 20px; font-style: italic; }
    .product { background: #f9f9f9; padding: 12px; margin: 10px 0; border-radius: 5px; page-break-inside: avoid; }
    .product-name { font-weight: bold; color: #8B0000; }
    .product-usage { font-size: 9pt; color: #666; margin-top: 5px; }
    .hack { margin: 8px 0; padding-left: 20px; }
    .footer { margin-top: 40px; padding-top: 20px; border-top: 2px solid #ddd; font-size: 9pt; color: #666; page-break-before: avoid; }
    .cta { background: linear-gradient(135deg, #8B0000 0%, #6B0000 100%); color: white; padding: 20px; margin: 30px 0; border-radius: 10px; text-align: center; page-break-inside: avoid; }
  </style>
</head>
<body>
  <div class="header">
    <h1>Your Personalized Hair Care Routine</h1>
    <div class="subtitle">Created for: {{.Name}}</div>
    <div class="subtitle">Profile: {{spaced .Routine.ProfileID}}</div>
    <div class="subtitle">By Logan at Coug Cuts | Washington State University</div>
  </div>

  <div class="challenge-box">
    <h3 style="margin-top: 0; color: #8B0000;">Your Specific Challenge</h3>
    <p style="margin: 0;">{{.Routine.Challenge}}</p>
  </div>

  <h2>Custom Morning Routine ({{.Routine.EstimatedTime.Morning}} minutes)</h2>
  {{range .Routine.MorningRoutine}}
  <div class="routine-step">
    {{.Step}}
    {{if .Tip}}<div class="tip">💡 {{.Tip}}</div>{{end}}
  </div>
  {{end}}

  <h2 style="page-break-before: always;">Custom Wash Day Routine ({{.Routine.EstimatedTime.WashDay}} minutes)</h2>
  {{range .Routine.WashDayRoutine}}
  <div class="routine-step">
    {{.Step}}
    {{if .Tip}}<div class="tip">💡 {{.Tip}}</div>{{end}}
  </div>
  {{end}}

  <h2 style="page-break-before: always;">Your Personalized Product List</h2>
  <p style="color: #666; margin-bottom: 15px;">
    Budget Tier: {{.BudgetLabel}} (~${{price .Routine.MonthlyCost}}/month)
  </p>
  {{range .Routine.Products}}
  <div class="product">
    <div class="product-name">{{upper .Category}}: {{.Name}} (${{price .Price}})</div>
    <div style="font-size: 9pt; color: #666; margin-top: 3px;">{{.Description}}</div>
    <div class="product-usage"><strong>How to use:</strong> {{.Usage}}</div>
  </div>
  {{end}}

  <h2 style="page-break-before: always;">Your Hacks &amp; Tips</h2>
  {{range .Routine.Hacks}}<div class="hack">• {{.}}</div>
  {{end}}

  <h2>WSU Campus Hacks</h2>
  {{range .Routine.WSUTips}}<div class="hack">• {{.}}</div>
  {{end}}

  <div class="cta">
    <h3 style="margin-top: 0; color: white;">Ready to level up your hair game even more?</h3>
    <p style="margin: 15px 0; color: rgba(255,255,255,0.9);">
      📅 Book a consultation at Coug Cuts: cougcuts.com/book<br>
      💇 Get a cut that works WITH your routine: $40/cut<br>
      📧 Questions? Email: logan@cougcuts.com<br>
      📱 Follow us: @cougcuts
    </p>
  </div>

  <div class="footer">
    <p style="text-align: center; margin-bottom: 10px;"><strong>Coug Cuts | Washington State University</strong></p>
    <p style="text-align: center; font-size: 8pt; color: #999;">
      P.S. Screenshot this routine and show it at your appointment for a personalized product recommendation session!
    </p>
    <p style="text-align: center; margin-top: 20px; font-size: 8pt;">
      Generated on {{.GeneratedOn}} | Profile ID: {{.Routine.ProfileID}}
    </p>
  </div>
</body>
</html>`
