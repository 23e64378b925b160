package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTestDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TASKREPO_DATABASE_URL", "")
	assert.Empty(t, GetTestDatabaseURL())
	assert.True(t, ShouldSkipDatabaseTest())

	t.Setenv("TASKREPO_DATABASE_URL", "postgres://localhost/fallback")
	assert.Equal(t, "postgres://localhost/fallback", GetTestDatabaseURL())

	t.Setenv("DATABASE_URL", "postgres://localhost/primary")
	assert.Equal(t, "postgres://localhost/primary", GetTestDatabaseURL())
	assert.True(t, IsIntegrationTestEnvironment())
}
