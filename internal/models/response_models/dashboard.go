package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// "day" | "week" | "month"
	Interval string `json:"interval"`
	// Optional: timezone used for bucketing (defaults to UTC if empty)
	Timezone string `json:"timezone,omitempty"`
}

type LeadKPIs struct {
	TotalLeads        int64   `json:"total_leads"`
	NewLeads          int64   `json:"new_leads"`
	SessionsStarted   int64   `json:"sessions_started"`
	SessionsCompleted int64   `json:"sessions_completed"`
	CompletionPct     float64 `json:"completion_pct"`
	EmailsSent        int64   `json:"emails_sent"`
	EmailsFailed      int64   `json:"emails_failed"`
}

type SeriesPoint struct {
	Bucket time.Time `json:"bucket"`
	Value  int64     `json:"value"`
}

type CountSeries struct {
	Points []SeriesPoint `json:"points"`
	Total  int64         `json:"total"`
}

type BreakdownItem struct {
	Key     string  `json:"key"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

type LeadDashboard struct {
	Range       TimeRange       `json:"range"`
	KPIs        LeadKPIs        `json:"kpis"`
	HairTypes   []BreakdownItem `json:"hair_types"`
	Budgets     []BreakdownItem `json:"budgets"`
	TopProfiles []BreakdownItem `json:"top_profiles"`
	NewLeads    CountSeries     `json:"new_leads"`
}

type LeadSummary struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	HairType      string   `json:"hair_type"`
	HairGoals     []string `json:"hair_goals"`
	ProfileID     string   `json:"profile_id"`
	BudgetTier    string   `json:"budget_tier"`
	EmailSent     bool     `json:"email_sent"`
	DocumentURL   string   `json:"document_url,omitempty"`
	CreatedAt     string   `json:"created_at"`
	LastEmailSent string   `json:"last_email_sent,omitempty"`
}

type LeadPage struct {
	Items    []LeadSummary `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}
