package services

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/pkg/logger"
	"github.com/nimasrn/ngo-backend/pkg/prom"
)

type DonationRepository interface {
	Create(ctx context.Context, d *model.Donation) (*model.Donation, error)
	List(ctx context.Context) ([]*model.Donation, error)
	GetByID(ctx context.Context, id int64) (*model.Donation, error)
	Update(ctx context.Context, d *model.Donation) (*model.Donation, error)
	UpdateStatus(ctx context.Context, id int64, status model.DonationStatus) (*model.Donation, error)
	Delete(ctx context.Context, id int64) error
}

type DonationService struct {
	repo        DonationRepository
	checkoutURL string
	now         func() time.Time
}

func NewDonationService(repo DonationRepository, checkoutURL string) *DonationService {
	return &DonationService{
		repo:        repo,
		checkoutURL: checkoutURL,
		now:         time.Now,
	}
}

func (s *DonationService) List(ctx context.Context) ([]*model.Donation, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, ErrDonationNotFound, "list donations")
	}
	return out, nil
}

func (s *DonationService) Get(ctx context.Context, id int64) (*model.Donation, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrDonationNotFound, "get donation")
	}
	return d, nil
}

// Create records a public donation. identity may be nil for anonymous donors.
func (s *DonationService) Create(ctx context.Context, identity *model.Identity, req model.DonationCreateRequest) (*model.DonationReceipt, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	d := &model.Donation{
		DonorName:     req.ResolvedDonorName(),
		Amount:        *req.Amount,
		DonationType:  req.DonationType,
		PaymentMethod: req.PaymentMethod,
		Date:          s.now().UTC(),
		Notes:         req.Notes,
		RecordedBy:    ownerID(identity),
		Status:        model.DonationPending,
	}
	if req.DonorInfo != nil {
		d.DonorEmail = req.DonorInfo.Email
		d.DonorPhone = req.DonorInfo.Phone
	}
	if d.DonationType == "" {
		d.DonationType = d.PaymentMethod.DefaultDonationType()
	}

	out, err := s.repo.Create(ctx, d)
	if err != nil {
		return nil, translate(err, ErrDonationNotFound, "create donation")
	}
	prom.IncDonationCreated(string(out.PaymentMethod))

	receipt := &model.DonationReceipt{
		Success:    true,
		Message:    "Donation processed successfully",
		DonationID: out.ID,
		Amount:     out.Amount,
		Donation:   out,
	}
	if out.PaymentMethod == model.PaymentOnline {
		link, err := s.paymentLink(out)
		if err != nil {
			return nil, err
		}
		receipt.PaymentLink = &link
	}
	return receipt, nil
}

func (s *DonationService) paymentLink(d *model.Donation) (string, error) {
	u, err := url.Parse(s.checkoutURL)
	if err != nil {
		return "", errors.New("payment checkout url is not valid: " + err.Error())
	}
	q := u.Query()
	q.Set("amount", d.Amount.String())
	q.Set("donationId", strconv.FormatInt(d.ID, 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *DonationService) Update(ctx context.Context, id int64, req model.DonationUpdateRequest) (*model.Donation, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	existing.DonorName = req.DonorName
	existing.Amount = *req.Amount
	existing.PaymentMethod = req.PaymentMethod
	existing.DonationType = req.DonationType
	if existing.DonationType == "" {
		existing.DonationType = existing.PaymentMethod.DefaultDonationType()
	}
	if req.Date != nil && !req.Date.IsZero() {
		existing.Date = req.Date.Time
	}
	existing.Notes = req.Notes

	out, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, translate(err, ErrDonationNotFound, "update donation")
	}
	return out, nil
}

func (s *DonationService) Delete(ctx context.Context, id int64) error {
	return translate(s.repo.Delete(ctx, id), ErrDonationNotFound, "delete donation")
}

// ConfirmPayment marks the donation completed.
func (s *DonationService) ConfirmPayment(ctx context.Context, id int64) (*model.Donation, error) {
	return s.setStatus(ctx, id, model.DonationCompleted)
}

// FailPayment marks the donation failed.
func (s *DonationService) FailPayment(ctx context.Context, id int64) (*model.Donation, error) {
	return s.setStatus(ctx, id, model.DonationFailed)
}

func (s *DonationService) setStatus(ctx context.Context, id int64, status model.DonationStatus) (*model.Donation, error) {
	out, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, translate(err, ErrDonationNotFound, "update donation status")
	}
	logger.Info("donation status changed", "donation_id", id, "status", status)
	prom.IncDonationStatus(string(status))
	return out, nil
}
