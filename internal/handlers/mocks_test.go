package handlers

import (
	"context"
	"errors"

	"github.com/nimasrn/ngo-backend/internal/model"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
	"github.com/stretchr/testify/mock"
	"github.com/valyala/fasthttp"
)

type MockBeneficiaryService struct {
	mock.Mock
}

func (m *MockBeneficiaryService) List(ctx context.Context) ([]*model.Beneficiary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryService) Get(ctx context.Context, id int64) (*model.Beneficiary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryService) Create(ctx context.Context, identity *model.Identity, req model.BeneficiaryRequest) (*model.Beneficiary, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryService) Update(ctx context.Context, id int64, req model.BeneficiaryRequest) (*model.Beneficiary, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, req model.ContactRequest) (*model.Contact, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context) ([]*model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Contact), args.Error(1)
}

type MockDonationService struct {
	mock.Mock
}

func (m *MockDonationService) List(ctx context.Context) ([]*model.Donation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Donation), args.Error(1)
}

func (m *MockDonationService) Get(ctx context.Context, id int64) (*model.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationService) Create(ctx context.Context, identity *model.Identity, req model.DonationCreateRequest) (*model.DonationReceipt, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DonationReceipt), args.Error(1)
}

func (m *MockDonationService) Update(ctx context.Context, id int64, req model.DonationUpdateRequest) (*model.Donation, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDonationService) ConfirmPayment(ctx context.Context, id int64) (*model.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationService) FailPayment(ctx context.Context, id int64) (*model.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

type MockProgramService struct {
	mock.Mock
}

func (m *MockProgramService) ListActive(ctx context.Context) ([]model.ProgramSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProgramSummary), args.Error(1)
}

func (m *MockProgramService) Featured(ctx context.Context) ([]*model.Program, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Program), args.Error(1)
}

func (m *MockProgramService) ListAll(ctx context.Context) ([]*model.Program, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Program), args.Error(1)
}

func (m *MockProgramService) GetBySlug(ctx context.Context, slug string) (*model.Program, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Program), args.Error(1)
}

func (m *MockProgramService) Create(ctx context.Context, identity *model.Identity, req model.ProgramRequest) (*model.Program, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Program), args.Error(1)
}

func (m *MockProgramService) Update(ctx context.Context, id int64, req model.ProgramRequest) (*model.Program, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Program), args.Error(1)
}

func (m *MockProgramService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Summary(ctx context.Context) (*model.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Summary), args.Error(1)
}

func (m *MockReportService) DonationTrends(ctx context.Context, period string) ([]model.TrendPoint, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrendPoint), args.Error(1)
}

// stubTokens accepts exactly one token value.
type stubTokens struct {
	token    string
	identity *model.Identity
}

func (s stubTokens) Parse(raw string) (*model.Identity, error) {
	if raw != s.token {
		return nil, errors.New("bad token")
	}
	return s.identity, nil
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) List(ctx context.Context) ([]*model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *MockEventService) Get(ctx context.Context, id int64) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) Create(ctx context.Context, identity *model.Identity, req model.EventRequest) (*model.Event, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, id int64, req model.EventRequest) (*model.Event, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockVolunteerService struct {
	mock.Mock
}

func (m *MockVolunteerService) List(ctx context.Context) ([]*model.Volunteer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) Get(ctx context.Context, id int64) (*model.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) Create(ctx context.Context, identity *model.Identity, req model.VolunteerRequest) (*model.Volunteer, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) Update(ctx context.Context, id int64, req model.VolunteerRequest) (*model.Volunteer, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func setupTestContext(method, path string, body []byte) *xhttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	return ctx
}
