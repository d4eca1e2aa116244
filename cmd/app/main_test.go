package main

import (
	"context"
	"io"
	"testing"

	"user-directory-service/internal/config"
	"user-directory-service/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserRepository_Memory(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo, db, err := newUserRepository(config.Config{StorageDriver: config.StorageMemory}, logger)

	require.NoError(t, err)
	assert.Nil(t, db)
	assert.IsType(t, &repository.MemoryUserRepository{}, repo)
}

func TestNewUserRepository_SQLite(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo, db, err := newUserRepository(config.Config{StorageDriver: config.StorageSQLite, SQLitePath: ":memory:"}, logger)
	require.NoError(t, err)
	require.NotNil(t, db)
	defer db.Close()

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}
