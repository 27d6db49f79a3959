package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var potColumns = []string{
	"id", "brewed_at", "drank_at", "tea_id", "brewer_id", "tea_name", "brewer_username", "brewer_name",
}

func TestPotWhere(t *testing.T) {
	tests := []struct {
		name   string
		filter models.PotFilter
		offset int
		want   string
		args   []any
	}{
		{name: "empty", filter: models.PotFilter{}, want: "", args: nil},
		{name: "tea", filter: models.PotFilter{TeaID: 3}, want: " WHERE p.tea_id = $1", args: []any{int64(3)}},
		{
			name:   "both after limit and offset",
			filter: models.PotFilter{TeaID: 3, BrewerID: 4},
			offset: 2,
			want:   " WHERE p.tea_id = $3 AND p.brewer_id = $4",
			args:   []any{int64(3), int64(4)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, args := potWhere(tt.filter, tt.offset)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestPotRepository_MarkDrunk(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPotRepository(db, nil)
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE pots SET drank_at = $2 WHERE id = $1 AND drank_at IS NULL")).
		WithArgs(int64(1), at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE pots SET drank_at = $2 WHERE id = $1 AND drank_at IS NULL")).
		WithArgs(int64(1), at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.MarkDrunk(context.Background(), 1, at)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkDrunk(context.Background(), 1, at)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPotRepository_CreateAndCurrent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPotRepository(db, nil)
	brewed := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO pots")).
		WithArgs(brewed, int64(2), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.drank_at IS NULL ORDER BY p.brewed_at DESC")).
		WillReturnRows(sqlmock.NewRows(potColumns).AddRow(9, brewed, nil, 2, 3, "Sencha", "bob", ""))

	p := &models.Pot{BrewedAt: brewed, TeaID: 2, BrewerID: 3}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, int64(9), p.ID)

	current, err := repo.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.True(t, current.Drinkable())
	assert.Equal(t, "bob", current.BrewerDisplayName())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPotRepository_CurrentNone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPotRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.drank_at IS NULL")).
		WillReturnRows(sqlmock.NewRows(potColumns))

	current, err := repo.Current(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, current)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPotRepository_ListByBrewer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPotRepository(db, nil)
	brewed := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	drank := brewed.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM pots p WHERE p.brewer_id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.brewer_id = $3 ORDER BY p.brewed_at DESC, p.id DESC LIMIT $1 OFFSET $2")).
		WithArgs(2, 0, int64(3)).
		WillReturnRows(sqlmock.NewRows(potColumns).AddRow(1, brewed, drank, 2, 3, "Sencha", "bob", "Bob"))

	n, err := repo.Count(context.Background(), models.PotFilter{BrewerID: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	pots, err := repo.List(context.Background(), models.PotFilter{BrewerID: 3}, 2, 0)
	require.NoError(t, err)
	require.Len(t, pots, 1)
	assert.Equal(t, models.PotDrunk, pots[0].State())
	assert.Equal(t, "Bob", pots[0].BrewerDisplayName())
	assert.NoError(t, mock.ExpectationsWereMet())
}
