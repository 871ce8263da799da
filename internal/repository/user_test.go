package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"pescart/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		userID        string
		mockBehavior  func()
		expectedUser  *models.User
		expectedError string
	}{
		{
			name:   "Success",
			userID: "u-1",
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"id", "username", "email", "role"}).
					AddRow("u-1", "pescar", "pescar@example.com", "user")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs("u-1", 1).
					WillReturnRows(rows)
			},
			expectedUser: &models.User{ID: "u-1", Username: "pescar", Email: "pescar@example.com"},
		},
		{
			name:   "Not Found",
			userID: "ghost",
			mockBehavior: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1`)).
					WithArgs("ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedError: models.CodeNotFound,
		},
		{
			name:   "Database Error",
			userID: "u-2",
			mockBehavior: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1`)).
					WithArgs("u-2", 1).
					WillReturnError(errors.New("connection timeout"))
			},
			expectedError: models.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			user, err := repo.GetByID(ctx, tt.userID)

			if tt.expectedError != "" {
				assert.True(t, models.HasCode(err, tt.expectedError), "got %v", err)
				assert.Nil(t, user)
			} else if assert.NotNil(t, user) {
				assert.Equal(t, tt.expectedUser.Username, user.Username)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		email := "pescar@example.com"
		rows := sqlmock.NewRows([]string{"id", "email"}).AddRow("u-1", email)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 ORDER BY "users"."id" LIMIT $2`)).
			WithArgs(email, 1).
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, email)
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, email, user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		email := "ghost@example.com"
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
			WithArgs(email, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		user, err := repo.GetByEmail(ctx, email)
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_SetRole(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "role"=$1`)).
		WithArgs(models.RoleAdmin, sqlmock.AnyArg(), "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SetRole(ctx, "u-1", models.RoleAdmin))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "role"=$1`)).
		WithArgs(models.RoleAdmin, sqlmock.AnyArg(), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.SetRole(ctx, "ghost", models.RoleAdmin)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Conflicts(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Username: "pescar", Email: "pescar@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, models.RoleUser, first.Role)

	err := repo.Create(ctx, &models.User{Username: "other", Email: "pescar@example.com", Password: "hash"})
	require.True(t, models.HasCode(err, models.CodeConflict), "got %v", err)
	assert.Contains(t, err.Error(), "email")

	err = repo.Create(ctx, &models.User{Username: "pescar", Email: "other@example.com", Password: "hash"})
	require.True(t, models.HasCode(err, models.CodeConflict), "got %v", err)
	assert.Contains(t, err.Error(), "Username")

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
