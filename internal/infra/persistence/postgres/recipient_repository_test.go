package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"hyperlocal/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recipientColumns = []string{
	"id", "name", "email", "push_token", "locality", "town",
	"blood_group", "profession_category", "created_at", "updated_at", "deleted_at",
}

func TestRecipientRepository_FindRecipientsByQuery(t *testing.T) {
	ctx := context.Background()
	excludeID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		query     repository.RecipientQuery
		setupMock func(sqlmock.Sqlmock)
		wantIDs   []uuid.UUID
		wantErr   bool
	}{
		{
			name:      "empty scope issues no query",
			query:     repository.RecipientQuery{},
			setupMock: func(sqlmock.Sqlmock) {},
			wantIDs:   []uuid.UUID{},
		},
		{
			name: "localities or town with filters",
			query: repository.RecipientQuery{
				Localities:           []string{"kakkanad", "edappally"},
				Town:                 "kochi",
				ProfessionCategories: []string{"nurse"},
				BloodGroup:           " o+ ",
				ExcludeID:            excludeID,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE deleted_at IS NULL AND .*LOWER\(TRIM\(locality\)\) IN .*LOWER\(TRIM\(town\)\) = .*LOWER\(TRIM\(profession_category\)\) IN .*UPPER\(TRIM\(blood_group\)\) = .*id <> .*ORDER BY created_at ASC`).
					WithArgs("kakkanad", "edappally", "kochi", "nurse", "O+", sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows(recipientColumns).
						AddRow(firstID.String(), "Asha", "asha@example.com", "tok-1", "Kakkanad", "Kochi", "O+", "Nurse", now, now, nil).
						AddRow(secondID.String(), "Ravi", "", "tok-2", "Edappally", "Kochi", "o+", "nurse", now, now, nil))
			},
			wantIDs: []uuid.UUID{firstID, secondID},
		},
		{
			name:  "town only",
			query: repository.RecipientQuery{Town: "kochi"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE deleted_at IS NULL AND .*LOWER\(TRIM\(town\)\) = `).
					WithArgs("kochi").
					WillReturnRows(sqlmock.NewRows(recipientColumns))
			},
			wantIDs: []uuid.UUID{},
		},
		{
			name:  "directory failure",
			query: repository.RecipientQuery{Localities: []string{"kakkanad"}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM "users"`).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewRecipientRepository(db)
			tt.setupMock(mock)

			recipients, err := repo.FindRecipientsByQuery(ctx, tt.query)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				ids := make([]uuid.UUID, 0, len(recipients))
				for _, r := range recipients {
					ids = append(ids, r.ID)
				}
				assert.Equal(t, tt.wantIDs, ids)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecipientRepository_FindRecipientByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecipientRepository(db)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = .* AND deleted_at IS NULL`).
			WillReturnRows(sqlmock.NewRows(recipientColumns).
				AddRow(id.String(), "Asha", "asha@example.com", "tok-1", "Kakkanad", "Kochi", "O+", "nurse", now, now, nil))

		recipient, err := repo.FindRecipientByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, recipient.ID)
		assert.Equal(t, "asha@example.com", recipient.EmailAddress)
		assert.Equal(t, "tok-1", recipient.PushToken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecipientRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows(recipientColumns))

		recipient, err := repo.FindRecipientByID(ctx, uuid.New())

		assert.Nil(t, recipient)
		assert.ErrorIs(t, err, repository.ErrRecipientNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
