package services

import (
	"context"
	"fmt"
	"time"

	dbm "cougcuts/internal/models/db_models"
	resp "cougcuts/internal/models/response_models"
	"cougcuts/internal/repositories"
	"cougcuts/pkg/utils"
)

const topProfilesLimit = 10

type DashboardService interface {
	BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.LeadDashboard, error)
	ListLeads(ctx context.Context, page, pageSize int) (*resp.LeadPage, error)
}

type dashboardService struct {
	repo  repositories.DashboardRepository
	leads repositories.LeadRepositoryInterface
	now   func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository, leads repositories.LeadRepositoryInterface) DashboardService {
	return &dashboardService{repo: repo, leads: leads, now: time.Now}
}

// normalizeRange ensures sane defaults and ordering
func (s *dashboardService) normalizeRange(r resp.TimeRange) resp.TimeRange {
	out := r
	if out.Interval == "" {
		out.Interval = "day"
	}
	if out.End.IsZero() {
		out.End = s.now().UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30) // last 30 days default
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) * 100.0 / float64(whole)
}

func breakdown(rows []repositories.GroupCount) []resp.BreakdownItem {
	var total int64
	for _, r := range rows {
		total += r.Count
	}
	items := make([]resp.BreakdownItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, resp.BreakdownItem{
			Key:     r.Key,
			Count:   r.Count,
			Percent: percent(r.Count, total),
		})
	}
	return items
}

func (s *dashboardService) BuildDashboard(ctx context.Context, rng resp.TimeRange) (*resp.LeadDashboard, error) {
	rng = s.normalizeRange(rng)
	switch rng.Interval {
	case "day", "week", "month":
	default:
		return nil, fmt.Errorf("%w: interval %q", utils.ErrInvalidRange, rng.Interval)
	}

	// ---------- Core counts ----------
	totalLeads, err := s.repo.CountLeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	newLeads, err := s.repo.CountLeadsBetween(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	open, err := s.repo.CountSessions(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	completed, err := s.repo.CountSessions(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	sent, err := s.repo.CountEmailEvents(ctx, dbm.EmailEventSent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	failed, err := s.repo.CountEmailEvents(ctx, dbm.EmailEventFailed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// ---------- Breakdowns ----------
	hairRows, err := s.repo.LeadsByHairType(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	budgetRows, err := s.repo.LeadsByBudget(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	profileRows, err := s.repo.TopProfiles(ctx, topProfilesLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// ---------- Series ----------
	seriesRows, err := s.repo.NewLeadsSeries(ctx, rng.Start, rng.End, rng.Interval, rng.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	series := resp.CountSeries{Points: make([]resp.SeriesPoint, 0, len(seriesRows))}
	for _, r := range seriesRows {
		series.Points = append(series.Points, resp.SeriesPoint{Bucket: r.Bucket, Value: r.Sum})
		series.Total += r.Sum
	}

	started := open + completed
	return &resp.LeadDashboard{
		Range: rng,
		KPIs: resp.LeadKPIs{
			TotalLeads:        totalLeads,
			NewLeads:          newLeads,
			SessionsStarted:   started,
			SessionsCompleted: completed,
			CompletionPct:     percent(completed, started),
			EmailsSent:        sent,
			EmailsFailed:      failed,
		},
		HairTypes:   breakdown(hairRows),
		Budgets:     breakdown(budgetRows),
		TopProfiles: breakdown(profileRows),
		NewLeads:    series,
	}, nil
}

func (s *dashboardService) ListLeads(ctx context.Context, page, pageSize int) (*resp.LeadPage, error) {
	page, pageSize, err := normalizePage(page, pageSize)
	if err != nil {
		return nil, err
	}

	leads, total, err := s.leads.ListLeads(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	items := make([]resp.LeadSummary, 0, len(leads))
	for _, l := range leads {
		summary := resp.LeadSummary{
			ID:          l.ID.String(),
			Email:       l.Email,
			Name:        l.Name,
			HairType:    l.HairType,
			HairGoals:   []string(l.HairGoals),
			ProfileID:   l.ProfileID,
			BudgetTier:  l.BudgetTier,
			EmailSent:   l.EmailSequenceStarted,
			DocumentURL: l.RoutinePdfURL,
			CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(l.CreatedAt)),
		}
		if l.LastEmailSent != nil {
			summary.LastEmailSent = utils.FormatRFC3339(utils.FromUnixSeconds(*l.LastEmailSent))
		}
		items = append(items, summary)
	}

	return &resp.LeadPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
