package services

import (
	"context"
	"time"

	"github.com/nimasrn/ngo-backend/internal/model"
)

type ReportRepository interface {
	DonationStats(ctx context.Context) (*model.DonationStats, error)
	BeneficiaryStats(ctx context.Context) (*model.BeneficiaryStats, error)
	EventStats(ctx context.Context, now time.Time) (*model.EventStats, error)
	DonationTrends(ctx context.Context, period model.TrendPeriod) ([]model.TrendPoint, error)
}

type ReportService struct {
	repo ReportRepository
	now  func() time.Time
}

func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{repo: repo, now: time.Now}
}

// Summary gathers donation, beneficiary and event statistics. The queries
// are independent reads.
func (s *ReportService) Summary(ctx context.Context) (*model.Summary, error) {
	donations, err := s.repo.DonationStats(ctx)
	if err != nil {
		return nil, translate(err, ErrNotFound, "donation stats")
	}
	donations.AvgDonation = donations.AvgDonation.Round(2)

	beneficiaries, err := s.repo.BeneficiaryStats(ctx)
	if err != nil {
		return nil, translate(err, ErrNotFound, "beneficiary stats")
	}
	if beneficiaries.ByCategory == nil {
		beneficiaries.ByCategory = []model.CategoryCount{}
	}

	events, err := s.repo.EventStats(ctx, s.now())
	if err != nil {
		return nil, translate(err, ErrNotFound, "event stats")
	}

	return &model.Summary{
		Donations:     *donations,
		Beneficiaries: *beneficiaries,
		Events:        *events,
	}, nil
}

// DonationTrends buckets donations by the raw period query value.
func (s *ReportService) DonationTrends(ctx context.Context, period string) ([]model.TrendPoint, error) {
	points, err := s.repo.DonationTrends(ctx, model.ParseTrendPeriod(period))
	if err != nil {
		return nil, translate(err, ErrNotFound, "donation trends")
	}
	if points == nil {
		points = []model.TrendPoint{}
	}
	return points, nil
}
