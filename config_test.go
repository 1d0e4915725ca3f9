package arena

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
name: Connect Four
game: connect4
seed: 42
pit:
  games: 20
  reset_every: 5
  colours: contender-white
contender:
  iterations: 50
  temperature:
    - from: 0
      temperature: 1
    - from: 10
      temperature: 0.1
  dirichlet_alpha: 0.3
  dirichlet_weight: 0.25
mcts:
  puct: 1.5
`

func TestLoadConfig(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	dir := t.TempDir()
	filename := filepath.Join(dir, "arena.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(testConfig), 0644))

	conf, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, "Connect Four", conf.Name)
	assert.Equal(t, "connect4", conf.Game)
	assert.Equal(t, uint64(42), conf.Seed)
	assert.Equal(t, PitConfig{Games: 20, ResetEvery: 5, Colours: ContenderWhite}, conf.Pit)
	assert.Equal(t, 50, conf.Contender.Iterations)
	assert.Equal(t, float32(0.1), conf.Contender.Temperature.At(12))
	assert.Equal(t, 0.25, conf.Contender.DirichletWeight)
	assert.Equal(t, float32(1.5), conf.MCTS.PUCT)
	assert.Equal(t, DefaultConfig().MCTS.MaxNodes, conf.MCTS.MaxNodes, "missing fields keep their defaults")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("pit:\n  colours: purple\n"), 0644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("pit:\n  games: 0\n"), 0644))
	_, err = LoadConfig(invalid)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
