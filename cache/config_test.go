package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultCacheConfig()

	assert.Equal(t, 60*time.Second, config.GoCache.DefaultExpiration)
	assert.Equal(t, 5*time.Minute, config.GoCache.CleanupInterval)
	assert.True(t, config.GoCache.Enabled)
}

func TestConfig_YAMLDeserialization(t *testing.T) {
	yamlData := `
go_cache:
  default_expiration: 15m
  cleanup_interval: 30m
  enabled: false
`

	var config Config
	err := yaml.Unmarshal([]byte(yamlData), &config)
	assert.NoError(t, err)

	assert.Equal(t, 15*time.Minute, config.GoCache.DefaultExpiration)
	assert.Equal(t, 30*time.Minute, config.GoCache.CleanupInterval)
	assert.False(t, config.GoCache.Enabled)
}
