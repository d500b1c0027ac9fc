package manifest

import (
	"bytes"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/qrship/pkg/qrship"
	"github.com/bft-labs/qrship/pkg/symbol"
)

func grid(size int) [][]bool {
	g := make([][]bool, size)
	for i := range g {
		g[i] = make([]bool, size)
	}
	return g
}

func sequence(t *testing.T) []*qrship.Symbol {
	t.Helper()
	first, err := symbol.New(grid(21), 1, 3)
	require.NoError(t, err)
	failed, err := symbol.Sentinel(2, 3)
	require.NoError(t, err)
	last, err := symbol.New(grid(25), 3, 3)
	require.NoError(t, err)
	return []*qrship.Symbol{first, failed, last}
}

func TestBuild(t *testing.T) {
	m := Build("batch-1", qrship.DefaultConfig(), sequence(t), 250)

	assert.Equal(t, "batch-1", m.BatchID)
	assert.Equal(t, 250, m.PayloadBytes)
	assert.Equal(t, 100, m.ChunkLen)
	assert.Equal(t, "quartile", m.ECC)
	assert.Equal(t, "text", m.Framing)
	assert.Equal(t, 3, m.TotalParts)
	assert.False(t, m.Scannable)
	assert.Equal(t, []int{2}, m.Failed)
	assert.Equal(t, Part{Part: 2, Total: 3, Size: 0, OK: false}, m.Parts[1])
}

func TestBuild_ZeroConfigUsesDefaults(t *testing.T) {
	m := Build("b", qrship.Config{MaxChunkLen: 4}, nil, 0)

	assert.Equal(t, 10, m.ChunkLen)
	assert.Equal(t, "quartile", m.ECC)
	assert.Empty(t, m.Parts)
	assert.False(t, m.Scannable)
}

func TestWrite_JSONGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Build("batch-1", qrship.DefaultConfig(), sequence(t), 250), JSON))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "manifest_json", buf.Bytes())
}

func TestWrite_YAML(t *testing.T) {
	want := Build("batch-1", qrship.DefaultConfig(), sequence(t), 250)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, want, YAML))
	assert.Contains(t, buf.String(), "batch_id: batch-1\n")

	var got Manifest
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestWrite_TOML(t *testing.T) {
	want := Build("batch-1", qrship.DefaultConfig(), sequence(t), 250)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, want, TOML))
	assert.Contains(t, buf.String(), "[[parts]]")

	var got Manifest
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{"": YAML, "yml": YAML, "YAML": YAML, "json": JSON, " toml ": TOML}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
	assert.Error(t, Write(&bytes.Buffer{}, Manifest{}, Format("xml")))
}
