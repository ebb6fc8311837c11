package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriGen/internal/config"
)

func TestProfileNamesSortedAndSkipped(t *testing.T) {
	cfg := &config.Config{Profiles: map[string]config.Profile{
		"work":    {},
		"default": {},
		"local":   {},
	}}

	assert.Equal(t, []string{"default", "local", "work"}, profileNames(cfg, ""))
	assert.Equal(t, []string{"default", "work"}, profileNames(cfg, "local"))
}

func TestSelectProfileUsesArgument(t *testing.T) {
	cfg := &config.Config{Profiles: map[string]config.Profile{}}

	name, err := selectProfile(cfg, []string{" Work "}, "pick", "")
	require.NoError(t, err)
	assert.Equal(t, "work", name)

	_, err = selectProfile(cfg, nil, "pick", "")
	assert.Error(t, err)
}

func TestProviderOrDefault(t *testing.T) {
	assert.Equal(t, config.ProviderGenerate, providerOrDefault(""))
	assert.Equal(t, config.ProviderOpenAI, providerOrDefault(config.ProviderOpenAI))
}
