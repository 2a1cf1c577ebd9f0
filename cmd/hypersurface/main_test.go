package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// run executes the CLI with a silent logger and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newApp(&out, zap.NewNop()).root()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()

	return out.String(), err
}

// TestInfo_JSON checks counts of the square skeleton N=2, side=1, k=1.
func TestInfo_JSON(t *testing.T) {
	out, err := run(t, "info", "--axes", "2", "--side", "1", "--max-dim", "1", "--format", "json")
	require.NoError(t, err)

	var res infoResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 8, res.Faces)
	assert.Equal(t, 8, res.Points)
	assert.Equal(t, 16, res.Arcs)
	assert.Equal(t, 4, res.CornerRadius)
	assert.Equal(t, float64(9), res.Volume)
	assert.Equal(t, []dimStat{{Dim: 0, Faces: 4, Points: 4}, {Dim: 1, Faces: 4, Points: 4}}, res.ByDim)
}

// TestInfo_Text checks the tabular rendering mentions the totals.
func TestInfo_Text(t *testing.T) {
	out, err := run(t, "info", "--axes", "3", "--side", "2", "--max-dim", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "faces")
	assert.Contains(t, out, "dim 0")
	assert.Contains(t, out, "8 faces, 8 points")
}

// TestFaces_YAML lists faces and checks the first key.
func TestFaces_YAML(t *testing.T) {
	out, err := run(t, "faces", "--axes", "2", "--side", "1", "--max-dim", "1", "--format", "yaml")
	require.NoError(t, err)

	var rows []faceRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 8)
	assert.Equal(t, "0x5", rows[0].Key)
	assert.Equal(t, "(-,-)", rows[0].Pattern)
	assert.Equal(t, []int{0}, rows[4].Free)
}

// TestWave_JSON runs a short wave and checks the summary.
func TestWave_JSON(t *testing.T) {
	out, err := run(t, "wave", "--axes", "3", "--side", "4", "--steps", "3", "--dt", "0.1",
		"--impulse", "(1,2,-)", "--log-every", "1", "--format", "json")
	require.NoError(t, err)

	var res waveResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Steps)
	assert.Equal(t, "(1,2,-)", res.Impulse)
	assert.Greater(t, res.Energy, 0.0)
	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err)
}

// TestWave_DefaultImpulse picks a point on the last face.
func TestWave_DefaultImpulse(t *testing.T) {
	out, err := run(t, "wave", "--axes", "2", "--side", "3", "--max-dim", "1", "--steps", "1", "--format", "yaml")
	require.NoError(t, err)
	var res waveResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, "(+,1)", res.Impulse)
}

// TestWave_BadImpulse rejects coordinates outside the skeleton.
func TestWave_BadImpulse(t *testing.T) {
	_, err := run(t, "wave", "--axes", "3", "--max-dim", "1", "--impulse", "(1,1,-)")
	assert.Error(t, err)
	_, err = run(t, "wave", "--impulse", "nonsense")
	assert.Error(t, err)
}

// TestPoints_CSV checks one row per point with N+1 columns.
func TestPoints_CSV(t *testing.T) {
	out, err := run(t, "points", "--axes", "3", "--side", "2", "--max-dim", "1", "--steps", "2", "--format", "csv")
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 8+12*2)
	for _, r := range rows {
		assert.Len(t, r, 4)
	}
}

// TestLife_YAML checks generation bookkeeping.
func TestLife_YAML(t *testing.T) {
	out, err := run(t, "life", "--axes", "3", "--side", "4", "--steps", "5", "--seed", "7", "--format", "yaml")
	require.NoError(t, err)
	var res lifeResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, 5, res.Generation)
	assert.Len(t, res.Alive, 6)
	assert.Equal(t, int64(7), res.Seed)
}

// TestConfig_Env reads parameters from the environment.
func TestConfig_Env(t *testing.T) {
	t.Setenv("HYPERSURFACE_AXES", "2")
	t.Setenv("HYPERSURFACE_SIDE", "1")
	t.Setenv("HYPERSURFACE_MAX_DIM", "1")
	out, err := run(t, "info", "--format", "json")
	require.NoError(t, err)
	var res infoResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Axes)
	assert.Equal(t, 8, res.Points)
}

// TestConfig_File reads parameters from a YAML file; flags still win.
func TestConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hypersurface.yaml")
	require.NoError(t, os.WriteFile(path, []byte("axes: 2\nside: 1\nmax_dim: 1\nformat: json\n"), 0o644))

	out, err := run(t, "info", "--config", path)
	require.NoError(t, err)
	var res infoResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 8, res.Points)

	out, err = run(t, "info", "--config", path, "--side", "2")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Side)
	assert.Equal(t, 4+4*2, res.Points)
}

// TestConfig_Errors covers invalid settings.
func TestConfig_Errors(t *testing.T) {
	_, err := run(t, "info", "--format", "xml")
	assert.ErrorIs(t, err, ErrBadFormat)

	_, err = run(t, "info", "--format", "csv")
	assert.ErrorIs(t, err, ErrBadFormat)

	_, err = run(t, "info", "--axes", "2", "--max-dim", "3")
	assert.Error(t, err)

	_, err = run(t, "info", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
