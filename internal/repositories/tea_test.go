package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var teaColumns = []string{
	"id", "name", "category", "location", "image_url", "description", "brewing_methods", "tasting_notes",
}

func TestTeaRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeaRepository(db, nil)

	tea := &models.Tea{Name: "Sencha", Category: "Green", Location: "Japan"}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO teas")).
		WithArgs("Sencha", "Green", "Japan", "", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	require.NoError(t, repo.Create(context.Background(), tea))
	assert.Equal(t, int64(5), tea.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeaRepository_CreateError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeaRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO teas")).
		WillReturnError(errors.New("duplicate key"))

	err := repo.Create(context.Background(), &models.Tea{Name: "Sencha"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeaRepository_Popular(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeaRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY COUNT(p.id) DESC, t.name")).
		WillReturnRows(sqlmock.NewRows(teaColumns).
			AddRow(2, "Assam", "Black", "India", "", "", "", "").
			AddRow(1, "Sencha", "Green", "Japan", "", "", "", ""))

	teas, err := repo.Popular(context.Background())
	require.NoError(t, err)
	require.Len(t, teas, 2)
	assert.Equal(t, "Assam", teas[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeaRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeaRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY t.id DESC LIMIT $1 OFFSET $2")).
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows(teaColumns))

	teas, err := repo.List(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.NotNil(t, teas)
	assert.Empty(t, teas)
	assert.NoError(t, mock.ExpectationsWereMet())
}
