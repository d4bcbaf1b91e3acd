package cli

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/config"
)

func configRedis(url string) config.RedisConfig {
	return config.RedisConfig{URL: url}
}

func TestNewRoot(t *testing.T) {
	root := NewRoot()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, defaultConfigPath, flag.DefValue)
}

func TestOpenRedis_Disabled(t *testing.T) {
	client, err := openRedis(context.Background(), configRedis(""))
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestOpenRedis_InvalidURL(t *testing.T) {
	_, err := openRedis(context.Background(), configRedis("http://not-redis"))
	assert.Error(t, err)
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := openRedis(context.Background(), configRedis("redis://"+mr.Addr()+"/0"))
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	assert.True(t, mr.Exists("k"))
}
