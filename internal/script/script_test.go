package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const demoScript = `
build "a(b|c)*" to "out.tbl" as table;
build "x+|y" to "out.csv" as csv;
build "(0|1)*" to "bits.dot" as dot;
build "ab+" to "matcher.go" as go;
`

func TestParse(t *testing.T) {
	prog, err := Parse(demoScript)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 4)

	first := prog.Statements[0].Build
	require.Equal(t, "a(b|c)*", first.Pattern)
	require.Equal(t, "out.tbl", first.Out)
	require.Equal(t, "table", first.Format)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		`build "a" to "x.tbl" as table`,     // missing ;
		`build "a" to "x.tbl" as nothing;`,  // unknown format
		`build "a" as table;`,               // missing destination
		`compile "a" to "x.tbl" as table;`,  // unknown verb
	} {
		_, err := Parse(src)
		require.Error(t, err, "script %q", src)
	}
}

func TestExec(t *testing.T) {
	prog, err := Parse(demoScript)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, prog.Exec(&Context{Dir: dir}))

	tbl, err := os.ReadFile(filepath.Join(dir, "out.tbl"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(tbl), ";"), "table starts with the marker row")
	require.Contains(t, string(tbl), "ε;")

	csvOut, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	require.Contains(t, strings.Split(string(csvOut), "\n")[0], "F")

	dot, err := os.ReadFile(filepath.Join(dir, "bits.dot"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(dot), "digraph NFA {"))

	gen, err := os.ReadFile(filepath.Join(dir, "matcher.go"))
	require.NoError(t, err)
	require.Contains(t, string(gen), "func MatchMatcher(input string) bool")
}

func TestExecBadPattern(t *testing.T) {
	prog, err := Parse(`build "(a" to "x.tbl" as table;`)
	require.NoError(t, err)

	err = prog.Exec(&Context{Dir: t.TempDir()})
	require.Error(t, err)
	require.Contains(t, err.Error(), `"(a"`)
}

func TestMatcherName(t *testing.T) {
	require.Equal(t, "Matcher", matcherName("out/matcher.go"))
	require.Equal(t, "TokenIds", matcherName("token-ids.go"))
	require.Equal(t, "Pattern", matcherName("123.go"))
}
