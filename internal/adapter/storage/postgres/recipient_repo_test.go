package postgres

import (
	"context"
	"testing"
	"time"

	"restaurant-bot-dashboard/internal/core/domain"
	"restaurant-bot-dashboard/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipientColumnsList() []string {
	return []string{"id", "campaign_id", "phone_number", "provider_message_id", "status", "error_message", "created_at", "updated_at"}
}

func newTestRecipient(campaignID uuid.UUID, sid string, status domain.RecipientStatus) *domain.Recipient {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Recipient{
		ID:                uuid.New(),
		CampaignID:        campaignID,
		PhoneNumber:       "+5511999990000",
		ProviderMessageID: &sid,
		Status:            status,
		ErrorMessage:      nil,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func addRecipientRow(rows *pgxmock.Rows, r *domain.Recipient) *pgxmock.Rows {
	return rows.AddRow(
		r.ID, r.CampaignID, r.PhoneNumber, r.ProviderMessageID,
		r.Status, r.ErrorMessage, r.CreatedAt, r.UpdatedAt,
	)
}

func TestRecipientRepo_ListCancellable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecipientRepo(mock)
	campaignID := uuid.New()
	r1 := newTestRecipient(campaignID, "SM1", domain.RecipientStatusSent)
	r2 := newTestRecipient(campaignID, "SM2", domain.RecipientStatusSent)

	rows := pgxmock.NewRows(recipientColumnsList())
	addRecipientRow(rows, r1)
	addRecipientRow(rows, r2)

	cursor := ports.RecipientCursor{}
	mock.ExpectQuery("SELECT .+ FROM campaign_recipients WHERE campaign_id").
		WithArgs(campaignID, domain.RecipientStatusSent, cursor.CreatedAt, cursor.ID, 100).
		WillReturnRows(rows)

	result, err := repo.ListCancellable(context.Background(), campaignID, cursor, 100)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "SM1", *result[0].ProviderMessageID)
	assert.Equal(t, "SM2", *result[1].ProviderMessageID)
	assert.Equal(t, r2.ID, cursor.After(result[1]).ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipientRepo_ListCancellable_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecipientRepo(mock)
	campaignID := uuid.New()
	after := ports.RecipientCursor{CreatedAt: time.Now().UTC(), ID: uuid.New()}

	mock.ExpectQuery("SELECT .+ FROM campaign_recipients").
		WithArgs(campaignID, domain.RecipientStatusSent, after.CreatedAt, after.ID, 10).
		WillReturnRows(pgxmock.NewRows(recipientColumnsList()))

	result, err := repo.ListCancellable(context.Background(), campaignID, after, 10)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipientRepo_GetByProviderMessageID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecipientRepo(mock)
	r := newTestRecipient(uuid.New(), "SMabc", domain.RecipientStatusSent)

	mock.ExpectQuery("SELECT .+ FROM campaign_recipients WHERE provider_message_id").
		WithArgs("SMabc").
		WillReturnRows(addRecipientRow(pgxmock.NewRows(recipientColumnsList()), r))

	result, err := repo.GetByProviderMessageID(context.Background(), "SMabc")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, r.ID, result.ID)
	assert.Equal(t, domain.RecipientStatusSent, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipientRepo_GetByProviderMessageID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecipientRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM campaign_recipients WHERE provider_message_id").
		WithArgs("SMunknown").
		WillReturnRows(pgxmock.NewRows(recipientColumnsList()))

	result, err := repo.GetByProviderMessageID(context.Background(), "SMunknown")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestRecipientRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecipientRepo(mock)
	r := newTestRecipient(uuid.New(), "SM9", domain.RecipientStatusSent)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM campaign_recipients WHERE id .+ FOR UPDATE").
		WithArgs(r.ID).
		WillReturnRows(addRecipientRow(pgxmock.NewRows(recipientColumnsList()), r))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, r.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipientRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecipientRepo(mock)
	id := uuid.New()
	msg := "failed: 30008"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE campaign_recipients SET status").
		WithArgs(domain.RecipientStatusFailed, &msg, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), tx, id, domain.RecipientStatusFailed, &msg)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipientRepo_UpdateStatus_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRecipientRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE campaign_recipients SET status").
		WithArgs(domain.RecipientStatusDelivered, (*string)(nil), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), tx, id, domain.RecipientStatusDelivered, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "recipient not found")
}
