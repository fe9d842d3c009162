package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenariosFile = `[retirement]
Capital      = 16000
Interest     = 1.07
Contribution = 5000
Years        = 38

[college]
capital      = 0
interest     = 1.10
contribution = 1000
years        = 3

[broken]
Capital      = many
Interest     = 1.07
Contribution = 5000
Years        = 38

[partial]
Capital = 100
`

func TestScenarioRegistry_GetScenarios(t *testing.T) {
	registry, err := NewScenarioRegistry(writeFile(t, "scenarios.ini", scenariosFile))
	require.NoError(t, err)

	scenarios, err := registry.GetScenarios(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"retirement", "college", "broken", "partial"}, scenarios)
}

func TestScenarioRegistry_GetScenario(t *testing.T) {
	registry, err := NewScenarioRegistry(writeFile(t, "scenarios.ini", scenariosFile))
	require.NoError(t, err)
	ctx := context.Background()

	in, err := registry.GetScenario(ctx, "retirement")
	require.NoError(t, err)
	assert.Equal(t, DefaultInput(), in)

	in, err = registry.GetScenario(ctx, "college")
	require.NoError(t, err)
	assert.Equal(t, Input{Capital: 0, Interest: 1.10, Contribution: 1000, Years: 3}, in)

	_, err = registry.GetScenario(ctx, "broken")
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = registry.GetScenario(ctx, "partial")
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = registry.GetScenario(ctx, "unknown")
	assert.ErrorIs(t, err, ErrScenarioNotFound)
}

func TestNewScenarioRegistry_MissingFile(t *testing.T) {
	_, err := NewScenarioRegistry(filepath.Join(t.TempDir(), "missing.ini"))

	assert.Error(t, err)
}
