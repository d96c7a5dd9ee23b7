package parse_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/valveflow/internal/testnet"
	"github.com/katalvlaran/valveflow/parse"
	"github.com/stretchr/testify/require"
)

// TestParse_Canonical reads the worked example into the expected records.
func TestParse_Canonical(t *testing.T) {
	got, err := parse.Parse(strings.NewReader(testnet.CanonicalText))
	require.NoError(t, err)
	require.Equal(t, testnet.Canonical(), got)
}

// TestParse_BlankLines ignores surrounding whitespace and empty lines.
func TestParse_BlankLines(t *testing.T) {
	in := "\n  Valve AA has flow rate=3; tunnel leads to valve BB  \n\nValve BB has flow rate=0; tunnels lead to valves AA\n"
	got, err := parse.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 3, got[0].Flow)
	require.Equal(t, []string{"BB"}, got[0].Neighbors)
}

// TestParse_Errors reports the offending line.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		line string
	}{
		{"garbage", "Valve AA flows", parse.ErrSyntax, "line 1"},
		{"bad flow", "Valve AA has flow rate=x; tunnel leads to valve BB", parse.ErrBadFlow, "line 1"},
		{"negative flow", "\nValve AA has flow rate=-2; tunnel leads to valve BB", parse.ErrBadFlow, "line 2"},
		{"empty target", "Valve AA has flow rate=1; tunnels lead to valves BB, ", parse.ErrSyntax, "line 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse.Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			require.Contains(t, err.Error(), tc.line)
		})
	}
}

// TestParseFile reads from disk and reports missing files.
func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, []byte(testnet.CanonicalText), 0o600))

	got, err := parse.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, got, 10)

	_, err = parse.ParseFile(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
