package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetSeedCmd verifies the seed command definition.
func TestGetSeedCmd(t *testing.T) {
	cmd := getSeedCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "seed", cmd.Name())
	assert.Contains(t, cmd.Long, "catalog.yaml")

	quiet := cmd.Flags().Lookup("quiet")
	require.NotNil(t, quiet)
	assert.Equal(t, "q", quiet.Shorthand)

	assert.NoError(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"a.yaml"}))
	assert.Error(t, cmd.Args(cmd, []string{"a.yaml", "b.yaml"}))
}
