package repository_test

import (
	"context"
	"testing"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/internal/repository"
	"github.com/nimasrn/ngo-backend/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDonation(name string, amount int64) *model.Donation {
	return &model.Donation{
		DonorName:     name,
		Amount:        decimal.NewFromInt(amount),
		DonationType:  model.DonationTypeCash,
		PaymentMethod: model.PaymentCash,
		Date:          testutil.Date(2024, 1, 15),
		Status:        model.DonationPending,
	}
}

func TestDonationRepository_CreateAndGet(t *testing.T) {
	d := testutil.SetupTestDB(t)
	repo := repository.NewDonationRepository(d)
	ctx := context.Background()

	in := newDonation("Alice", 100)
	in.Amount = decimal.RequireFromString("12.50")
	created, err := repo.Create(ctx, in)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got.Amount))
	assert.Equal(t, model.PaymentCash, got.PaymentMethod)
	assert.Equal(t, model.DonationPending, got.Status)
	assert.True(t, testutil.Date(2024, 1, 15).Equal(got.Date))
	assert.Nil(t, got.RecordedBy)
}

func TestDonationRepository_UpdateStatus(t *testing.T) {
	d := testutil.SetupTestDB(t)
	repo := repository.NewDonationRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, newDonation("Bob", 20))
	require.NoError(t, err)

	out, err := repo.UpdateStatus(ctx, created.ID, model.DonationCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.DonationCompleted, out.Status)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DonationCompleted, got.Status)

	_, err = repo.UpdateStatus(ctx, 4242, model.DonationFailed)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.UpdateStatus(ctx, created.ID, "refunded")
	assert.ErrorIs(t, err, repository.ErrInvalidEnum)
}

func TestDonationRepository_UpdateKeepsStatusAndRecorder(t *testing.T) {
	d := testutil.SetupTestDB(t)
	repo := repository.NewDonationRepository(d)
	ctx := context.Background()
	u := testutil.CreateTestUser(t, d, "Clerk", "clerk@example.org")

	in := newDonation("Carol", 50)
	in.RecordedBy = &u.ID
	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, created.ID, model.DonationCompleted)
	require.NoError(t, err)

	upd := *created
	upd.Amount = decimal.NewFromInt(75)
	upd.Status = model.DonationPending
	upd.RecordedBy = nil
	out, err := repo.Update(ctx, &upd)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(75).Equal(out.Amount))
	assert.Equal(t, model.DonationCompleted, out.Status)
	require.NotNil(t, out.RecordedBy)
	assert.Equal(t, u.ID, *out.RecordedBy)
}

func TestDonationRepository_Delete(t *testing.T) {
	d := testutil.SetupTestDB(t)
	repo := repository.NewDonationRepository(d)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Delete(ctx, 1), repository.ErrNotFound)

	created, err := repo.Create(ctx, newDonation("Dan", 5))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, created.ID))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
