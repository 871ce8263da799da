package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"pescart/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRepository_ListVerified(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "species", "weight", "verified"}).
		AddRow("r-2", "u-1", "Crap", "10.00", true).
		AddRow("r-1", "u-1", "Stiuca", "4.10", true)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "fishing_records" WHERE verified = $1 ORDER BY created_at DESC`)).
		WithArgs(true).
		WillReturnRows(rows)

	records, err := repo.ListVerified(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r-2", records[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_ListPending_PreloadsUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "fishing_records" WHERE verified = $1 ORDER BY created_at ASC`)).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "species", "verified"}).
			AddRow("r-1", "u-1", "Crap", false))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "first_name", "last_name"}).
			AddRow("u-1", "ion@example.com", "Ion", "Popescu"))

	records, err := repo.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].User)
	assert.Equal(t, "Ion", records[0].User.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_MarkVerified(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "fishing_records" SET "verified"=$1`)).
		WithArgs(true, sqlmock.AnyArg(), "r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.MarkVerified(ctx, "r-1"))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "fishing_records" SET "verified"=$1`)).
		WithArgs(true, sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	err := repo.MarkVerified(ctx, "missing")
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_CountVerified(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "fishing_records" WHERE verified = $1`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.CountVerified(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_SQLite(t *testing.T) {
	db := setupSQLiteDB(t)
	users := NewUserRepository(db)
	repo := NewRecordRepository(db)
	ctx := context.Background()

	owner := &models.User{Username: "pescar", Email: "pescar@example.com", Password: "hash", FirstName: "Ion"}
	require.NoError(t, users.Create(ctx, owner))

	caught := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	newRecord := func(species, weight, county string, verified bool) *models.FishingRecord {
		r := &models.FishingRecord{
			UserID:     owner.ID,
			Species:    species,
			Weight:     weight,
			Location:   "Lacul Snagov",
			County:     county,
			WaterType:  models.WaterTypeLake,
			DateCaught: caught,
			Verified:   verified,
		}
		require.NoError(t, repo.Create(ctx, r))
		return r
	}

	pike := newRecord("Stiuca", "4.10", "Ilfov", true)
	carp := newRecord("Crap", "10.00", "Tulcea", true)
	pending := newRecord("Crap", "12.00", "Tulcea", false)

	t.Run("ListByUser keeps creation order and includes unverified", func(t *testing.T) {
		records, err := repo.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []string{pike.ID, carp.ID, pending.ID},
			[]string{records[0].ID, records[1].ID, records[2].ID})
	})

	t.Run("ListVerifiedWithUsers filters and preloads", func(t *testing.T) {
		records, err := repo.ListVerifiedWithUsers(ctx, models.LeaderboardFilter{Species: "Crap", County: "all"})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, carp.ID, records[0].ID)
		require.NotNil(t, records[0].User)
		assert.Equal(t, "pescar", records[0].User.Username)

		records, err = repo.ListVerifiedWithUsers(ctx, models.LeaderboardFilter{County: "Ilfov", WaterType: models.WaterTypeLake})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, pike.ID, records[0].ID)
	})

	t.Run("DeleteUnverified refuses verified records", func(t *testing.T) {
		err := repo.DeleteUnverified(ctx, carp.ID)
		assert.True(t, models.HasCode(err, models.CodeNotFound))

		require.NoError(t, repo.DeleteUnverified(ctx, pending.ID))
		_, err = repo.GetByID(ctx, pending.ID)
		assert.True(t, models.HasCode(err, models.CodeNotFound))
	})

	t.Run("CountVerified", func(t *testing.T) {
		n, err := repo.CountVerified(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
}
