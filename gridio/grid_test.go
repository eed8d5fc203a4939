package gridio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ransoing/AoC24/gridio"
	"github.com/ransoing/AoC24/xyz"
)

// TestParse_Errors verifies that Parse rejects empty or ragged inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", gridio.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", gridio.ErrEmptyGrid},
		{"EmptyFirstLine", "\nab", gridio.ErrEmptyGrid},
		{"NonRectangular", "abc\nab\n", gridio.ErrNonRectangular},
		{"BlankInside", "ab\n\nab", gridio.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridio.ParseString(tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParse_Layout(t *testing.T) {
	g, err := gridio.ParseString("#S.\r\n.#E\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())

	v, ok := xyz.ValueIn(xyz.V(1, 0), g)
	require.True(t, ok)
	assert.Equal(t, 'S', v)
	v, _ = xyz.ValueIn(xyz.V(2, 1), g)
	assert.Equal(t, 'E', v)
	_, ok = xyz.ValueIn(xyz.V(0, 2), g)
	assert.False(t, ok)

	assert.Equal(t, "#S.\n.#E", g.String())
}

func TestParse_Unicode(t *testing.T) {
	g, err := gridio.ParseString("█·\n·█")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, '·', g[1][0])
}

func TestGrid_Find(t *testing.T) {
	g, err := gridio.ParseString("a.a\n.a.\n")
	require.NoError(t, err)

	p, ok := g.Find('a')
	assert.True(t, ok)
	assert.Equal(t, xyz.V(0, 0), p)
	assert.Equal(t, []xyz.Vec{xyz.V(0, 0), xyz.V(2, 0), xyz.V(1, 1)}, g.FindAll('a'))

	_, ok = g.Find('z')
	assert.False(t, ok)
	assert.Empty(t, g.FindAll('z'))
	assert.Len(t, g.Points(), 6)
}

func TestGrid_Digits(t *testing.T) {
	g, err := gridio.ParseString("09\n.5")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, -1}, {9, 5}}, g.Digits())
}

func TestLoad(t *testing.T) {
	const text = "S..\n.#.\n..E\n"
	dir := t.TempDir()

	plain := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(plain, []byte(text), 0o644))

	packed := filepath.Join(dir, "maze.txt.zst")
	f, err := os.Create(packed)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = enc.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	want, err := gridio.ParseString(text)
	require.NoError(t, err)
	for _, path := range []string{plain, packed} {
		g, err := gridio.Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, g, path)
	}

	_, err = gridio.Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	ragged := filepath.Join(dir, "ragged.txt")
	require.NoError(t, os.WriteFile(ragged, []byte("ab\nc\n"), 0o644))
	_, err = gridio.Load(ragged)
	assert.ErrorIs(t, err, gridio.ErrNonRectangular)
	assert.True(t, strings.HasPrefix(err.Error(), ragged))
}
