package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/pkg/db"
	"github.com/shopspring/decimal"
)

// ReportRepository runs the aggregate queries behind the reports endpoints.
type ReportRepository struct {
	*db.DB
}

func NewReportRepository(db *db.DB) *ReportRepository {
	return &ReportRepository{db}
}

type donationTotals struct {
	Total decimal.NullDecimal `gorm:"column:total"`
	Count int64               `gorm:"column:count"`
	Avg   decimal.NullDecimal `gorm:"column:avg"`
}

// DonationStats returns SUM, COUNT and AVG over all donations. The average
// is unrounded; it is zero when there are no donations.
func (r *ReportRepository) DonationStats(ctx context.Context) (*model.DonationStats, error) {
	var row donationTotals
	err := r.Read(ctx).Model(&DonationEntity{}).
		Select("SUM(amount) AS total, COUNT(id) AS count, AVG(amount) AS avg").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	stats := &model.DonationStats{Count: row.Count}
	if row.Total.Valid {
		stats.TotalDonations = row.Total.Decimal
	}
	if row.Avg.Valid {
		stats.AvgDonation = row.Avg.Decimal
	}
	return stats, nil
}

type categoryRow struct {
	Category *string `gorm:"column:category"`
	Count    int64   `gorm:"column:count"`
}

// BeneficiaryStats counts beneficiaries overall and per category. Rows
// without a category are grouped under a nil category.
func (r *ReportRepository) BeneficiaryStats(ctx context.Context) (*model.BeneficiaryStats, error) {
	var total int64
	if err := r.Read(ctx).Model(&BeneficiaryEntity{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []categoryRow
	err := r.Read(ctx).Model(&BeneficiaryEntity{}).
		Select("category, COUNT(id) AS count").
		Group("category").
		Order("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &model.BeneficiaryStats{
		TotalBeneficiaries: total,
		ByCategory:         make([]model.CategoryCount, len(rows)),
	}
	for i, row := range rows {
		stats.ByCategory[i] = model.CategoryCount{Category: row.Category, Count: row.Count}
	}
	return stats, nil
}

// EventStats counts all events and those dated strictly after now.
func (r *ReportRepository) EventStats(ctx context.Context, now time.Time) (*model.EventStats, error) {
	stats := &model.EventStats{}
	if err := r.Read(ctx).Model(&EventEntity{}).Count(&stats.TotalEvents).Error; err != nil {
		return nil, err
	}
	err := r.Read(ctx).Model(&EventEntity{}).
		Where("event_date > ?", now.UTC()).
		Count(&stats.UpcomingEvents).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

type trendRow struct {
	Bucket        string          `gorm:"column:bucket"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount"`
	DonationCount int64           `gorm:"column:donation_count"`
}

// DonationTrends groups donations by their date truncated to period,
// ascending by bucket.
func (r *ReportRepository) DonationTrends(ctx context.Context, period model.TrendPeriod) ([]model.TrendPoint, error) {
	bucket, err := bucketExpr(r.Dialect(), period)
	if err != nil {
		return nil, err
	}

	var rows []trendRow
	err = r.Read(ctx).Model(&DonationEntity{}).
		Select(bucket + " AS bucket, SUM(amount) AS total_amount, COUNT(id) AS donation_count").
		Group("bucket").
		Order("bucket ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	points := make([]model.TrendPoint, len(rows))
	for i, row := range rows {
		points[i] = model.TrendPoint{Period: row.Bucket, TotalAmount: row.TotalAmount, Count: row.DonationCount}
	}
	return points, nil
}

var bucketFormats = map[model.TrendPeriod]struct{ postgres, strftime string }{
	model.PeriodDaily:   {"YYYY-MM-DD", "%Y-%m-%d"},
	model.PeriodMonthly: {"YYYY-MM", "%Y-%m"},
	model.PeriodYearly:  {"YYYY", "%Y"},
}

func bucketExpr(dialect string, period model.TrendPeriod) (string, error) {
	f, ok := bucketFormats[period]
	if !ok {
		return "", fmt.Errorf("unknown trend period %q", period)
	}
	switch dialect {
	case db.DriverPostgres:
		return fmt.Sprintf("to_char(donation_date, '%s')", f.postgres), nil
	case db.DriverMySQL:
		return fmt.Sprintf("DATE_FORMAT(donation_date, '%s')", f.strftime), nil
	case db.DriverSQLite:
		return fmt.Sprintf("strftime('%s', donation_date)", f.strftime), nil
	}
	return "", fmt.Errorf("trends are not supported on %s", dialect)
}
