package services

import (
	"context"
	"time"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockBeneficiaryRepository struct {
	mock.Mock
}

func (m *MockBeneficiaryRepository) Create(ctx context.Context, b *model.Beneficiary) (*model.Beneficiary, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) List(ctx context.Context) ([]*model.Beneficiary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) GetByID(ctx context.Context, id int64) (*model.Beneficiary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) Update(ctx context.Context, b *model.Beneficiary) (*model.Beneficiary, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) Create(ctx context.Context, d *model.Donation) (*model.Donation, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationRepository) List(ctx context.Context) ([]*model.Donation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Donation), args.Error(1)
}

func (m *MockDonationRepository) GetByID(ctx context.Context, id int64) (*model.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationRepository) Update(ctx context.Context, d *model.Donation) (*model.Donation, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationRepository) UpdateStatus(ctx context.Context, id int64, status model.DonationStatus) (*model.Donation, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockProgramRepository struct {
	mock.Mock
}

func (m *MockProgramRepository) Create(ctx context.Context, p *model.Program) (*model.Program, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Program), args.Error(1)
}

func (m *MockProgramRepository) List(ctx context.Context) ([]*model.Program, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Program), args.Error(1)
}

func (m *MockProgramRepository) GetByID(ctx context.Context, id int64) (*model.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Program), args.Error(1)
}

func (m *MockProgramRepository) GetBySlug(ctx context.Context, slug string) (*model.Program, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Program), args.Error(1)
}

func (m *MockProgramRepository) Update(ctx context.Context, p *model.Program) (*model.Program, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Program), args.Error(1)
}

func (m *MockProgramRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) DonationStats(ctx context.Context) (*model.DonationStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DonationStats), args.Error(1)
}

func (m *MockReportRepository) BeneficiaryStats(ctx context.Context) (*model.BeneficiaryStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BeneficiaryStats), args.Error(1)
}

func (m *MockReportRepository) EventStats(ctx context.Context, now time.Time) (*model.EventStats, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventStats), args.Error(1)
}

func (m *MockReportRepository) DonationTrends(ctx context.Context, period model.TrendPeriod) ([]model.TrendPoint, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrendPoint), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type stubTokens struct{}

func (stubTokens) Generate(u *model.User) (string, error) {
	return "token-for-" + u.Email, nil
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context) ([]*model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, e *model.Event) (*model.Event, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockVolunteerRepository struct {
	mock.Mock
}

func (m *MockVolunteerRepository) Create(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) List(ctx context.Context) ([]*model.Volunteer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) GetByID(ctx context.Context, id int64) (*model.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) Update(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
