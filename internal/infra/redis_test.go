package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis_URLVacia(t *testing.T) {
	client, err := NewRedis("")
	require.NoError(t, err)
	assert.Nil(t, client, "sin URL no hay cliente; el caller degrada a rollups inline")
}

func TestNewRedis_URLInvalida(t *testing.T) {
	_, err := NewRedis("not-a-redis-url")
	assert.Error(t, err)
}
