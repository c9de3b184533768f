package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "cougcuts/internal/models/db_models"
)

type DashboardRepository interface {
	// Counts
	CountLeads(ctx context.Context) (int64, error)
	CountLeadsBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountSessions(ctx context.Context, completed bool) (int64, error)
	CountEmailEvents(ctx context.Context, eventType dbm.EmailEventType) (int64, error)

	// Breakdowns
	LeadsByHairType(ctx context.Context) ([]GroupCount, error)
	LeadsByBudget(ctx context.Context) ([]GroupCount, error)
	TopProfiles(ctx context.Context, limit int) ([]GroupCount, error)

	// Time series
	NewLeadsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type BucketSum struct {
	Bucket time.Time `gorm:"column:bucket"`
	Sum    int64     `gorm:"column:sum"`
}

type GroupCount struct {
	Key   string `gorm:"column:key"`
	Count int64  `gorm:"column:count"`
}

// dateTrunc buckets a column of unix seconds, in tz when one is given.
func dateTrunc(tz string, unixColumn string) string {
	if tz == "" {
		return "date_trunc(?, to_timestamp(" + unixColumn + "))"
	}
	return "date_trunc(?, timezone(?, to_timestamp(" + unixColumn + ")))"
}

// ---------- Counts ----------
func (r *dashboardRepository) CountLeads(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Lead{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountLeadsBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Lead{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountSessions(ctx context.Context, completed bool) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.QuizSession{}).
		Where("completed = ?", completed).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountEmailEvents(ctx context.Context, eventType dbm.EmailEventType) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.EmailEvent{}).
		Where("event_type = ?", eventType).
		Count(&n).Error
	return n, err
}

// ---------- Breakdowns ----------
func (r *dashboardRepository) groupLeads(ctx context.Context, column string, limit int) ([]GroupCount, error) {
	var rows []GroupCount
	tx := r.db.WithContext(ctx).
		Model(&dbm.Lead{}).
		Select(column + " AS key, COUNT(*) AS count").
		Where(column + " <> ''").
		Group(column).
		Order("count DESC, key ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err := tx.Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) LeadsByHairType(ctx context.Context) ([]GroupCount, error) {
	return r.groupLeads(ctx, "hair_type", 0)
}

func (r *dashboardRepository) LeadsByBudget(ctx context.Context) ([]GroupCount, error) {
	return r.groupLeads(ctx, "budget_tier", 0)
}

func (r *dashboardRepository) TopProfiles(ctx context.Context, limit int) ([]GroupCount, error) {
	return r.groupLeads(ctx, "profile_id", limit)
}

// ---------- Series ----------
func (r *dashboardRepository) NewLeadsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	var rows []BucketSum
	args := []interface{}{interval}
	if tz != "" {
		args = append(args, tz)
	}
	err := r.db.WithContext(ctx).
		Table("leads").
		Select(dateTrunc(tz, "created_at")+" AS bucket, COUNT(*) AS sum", args...).
		Where("deleted_at IS NULL").
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("bucket").
		Order("bucket ASC").
		Find(&rows).Error
	return rows, err
}
