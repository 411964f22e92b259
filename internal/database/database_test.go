package database

import (
	"context"
	"path/filepath"
	"testing"

	"cropai-modelhub/config"
	"cropai-modelhub/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver: config.DBDriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "nested", "hub.db"),
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	assert.Same(t, db, DB)
	assert.True(t, db.Migrator().HasTable(&models.Document{}))
}

func TestConnectUnsupportedDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestConnectRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := &config.Config{RedisAddr: mr.Host(), RedisPort: mr.Port()}
	client, err := ConnectRedis(context.Background(), cfg)
	require.NoError(t, err)
	assert.Same(t, client, RedisClient)
}

func TestConnectRedisUnreachable(t *testing.T) {
	RedisClient = nil
	cfg := &config.Config{RedisAddr: "127.0.0.1", RedisPort: "1"}

	client, err := ConnectRedis(context.Background(), cfg)
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Nil(t, RedisClient)
}
