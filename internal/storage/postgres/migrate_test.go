package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	for _, stmt := range schema {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(schema[0])).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(schema[1])).WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err = Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration step 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchema_ProjectsRestrictDeletes(t *testing.T) {
	var projects string
	for _, stmt := range schema {
		if regexp.MustCompile(`TABLE IF NOT EXISTS projects`).MatchString(stmt) {
			projects = stmt
		}
	}
	require.NotEmpty(t, projects)
	assert.Contains(t, projects, "REFERENCES countries(id) ON DELETE RESTRICT")
	assert.Contains(t, projects, "REFERENCES industries(id) ON DELETE RESTRICT")
	assert.Contains(t, projects, "seq         bigserial")
}
