package database_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/package_pricing/internal/platform/database"
)

func TestConfig_DSN(t *testing.T) {
	cfg := database.Config{Host: "db", Port: "5432", User: "app", Password: "secret", DBName: "pricing"}

	assert.Equal(t, "postgres://app:secret@db:5432/pricing?sslmode=disable", cfg.DSN())
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS rule_sets")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, database.Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

	err = database.Migrate(context.Background(), db)

	assert.ErrorContains(t, err, "apply schema")
}
