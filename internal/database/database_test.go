package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_RequiresURL(t *testing.T) {
	db, err := Connect("")
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrNoDatabaseURL)
}

func TestPing_NilDatabase(t *testing.T) {
	assert.ErrorIs(t, Ping(nil), ErrNoDatabaseURL)
}

func TestConnectAndMigrate(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := Connect(url)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	assert.NoError(t, Ping(db))
}
