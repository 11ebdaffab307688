package database

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN("seat", "s3cret", "db.local", "3306", "seatmap")

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "seat", cfg.User)
	assert.Equal(t, "s3cret", cfg.Passwd)
	assert.Equal(t, "db.local:3306", cfg.Addr)
	assert.Equal(t, "seatmap", cfg.DBName)
	assert.True(t, cfg.ParseTime)
	assert.Equal(t, "UTC", cfg.Loc.String())
}

func TestDSNWithoutPassword(t *testing.T) {
	dsn := DSN("seat", "", "127.0.0.1", "3306", "seatmap")
	assert.Contains(t, dsn, "seat@tcp(127.0.0.1:3306)/seatmap")
}
