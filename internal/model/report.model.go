package model

import "github.com/shopspring/decimal"

type TrendPeriod string

const (
	PeriodDaily   TrendPeriod = "daily"
	PeriodMonthly TrendPeriod = "monthly"
	PeriodYearly  TrendPeriod = "yearly"
)

// ParseTrendPeriod maps the query value: absent means monthly, anything
// unrecognised means yearly.
func ParseTrendPeriod(s string) TrendPeriod {
	switch TrendPeriod(s) {
	case "", PeriodMonthly:
		return PeriodMonthly
	case PeriodDaily:
		return PeriodDaily
	default:
		return PeriodYearly
	}
}

type DonationStats struct {
	TotalDonations decimal.Decimal `json:"totalDonations"`
	Count          int64           `json:"count"`
	AvgDonation    decimal.Decimal `json:"avgDonation"`
}

type CategoryCount struct {
	Category *string `json:"category"`
	Count    int64   `json:"count"`
}

type BeneficiaryStats struct {
	TotalBeneficiaries int64           `json:"totalBeneficiaries"`
	ByCategory         []CategoryCount `json:"byCategory"`
}

type EventStats struct {
	TotalEvents    int64 `json:"totalEvents"`
	UpcomingEvents int64 `json:"upcomingEvents"`
}

type Summary struct {
	Donations     DonationStats    `json:"donations"`
	Beneficiaries BeneficiaryStats `json:"beneficiaries"`
	Events        EventStats       `json:"events"`
}

type TrendPoint struct {
	Period      string          `json:"period"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int64           `json:"count"`
}
