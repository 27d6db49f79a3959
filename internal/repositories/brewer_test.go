package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var brewerColumns = []string{
	"id", "email", "username", "password_hash", "role_id", "confirmed", "name", "location",
	"about_me", "member_since", "last_seen", "avatar_hash", "role_name", "role_permissions",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestBrewerRepository_GetByUsernameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrewerRepository(db, nil)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE b.username = $1 OR b.email = $1 LIMIT 1")).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(brewerColumns).AddRow(
				7, "alice@example.com", "alice", "hash", 1, true, "Alice", "Lab", "",
				now, now, "abc", "User", 3,
			))

		b, err := repo.GetByUsernameOrEmail(context.Background(), "alice")
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, int64(7), b.ID)
		assert.Equal(t, "User", b.RoleName)
		assert.True(t, b.Can(models.PermissionBrew))
		assert.False(t, b.Can(models.PermissionModerate))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE b.username = $1 OR b.email = $1")).
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows(brewerColumns))

		b, err := repo.GetByUsernameOrEmail(context.Background(), "nobody")
		assert.NoError(t, err)
		assert.Nil(t, b)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrewerRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrewerRepository(db, nil)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	b := &models.Brewer{
		Email:        "bob@example.com",
		Username:     "bob",
		PasswordHash: "hash",
		RoleID:       1,
		AvatarHash:   models.AvatarHash("bob@example.com"),
		MemberSince:  now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO brewers")).
		WithArgs(b.Email, b.Username, b.PasswordHash, int64(1), false, "", "", "", b.AvatarHash, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_since", "last_seen"}).AddRow(11, now, now))

	err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, int64(11), b.ID)
	assert.Equal(t, now, b.LastSeen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrewerRepository_UpdateUsesRequestTx(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE brewers")).
		WithArgs(int64(3), "c@example.com", "carol", "hash", nil, true, "Carol", "", "", "h").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)
	repo := NewBrewerRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	err = repo.Update(context.Background(), &models.Brewer{
		ID: 3, Email: "c@example.com", Username: "carol", PasswordHash: "hash",
		Confirmed: true, Name: "Carol", AvatarHash: "h",
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrewerRepository_ListByRole(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrewerRepository(db, nil)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM brewers WHERE role_id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.role_id = $3 ORDER BY b.member_since DESC")).
		WithArgs(10, 0, int64(2)).
		WillReturnRows(sqlmock.NewRows(brewerColumns).AddRow(
			4, "d@example.com", "dave", "hash", 2, false, "", "", "", now, now, "", "Moderator", 11,
		))

	n, err := repo.CountByRole(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	brewers, err := repo.ListByRole(context.Background(), 2, 10, 0)
	require.NoError(t, err)
	require.Len(t, brewers, 1)
	assert.Equal(t, "dave", brewers[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrewerRepository_TouchLastSeen(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrewerRepository(db, nil)
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE brewers SET last_seen = $2 WHERE id = $1")).
		WithArgs(int64(5), at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.TouchLastSeen(context.Background(), 5, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
