package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseSQLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SQLMode
		err      string
	}{
		{name: "empty", input: "", expected: 0},
		{name: "single", input: "ANSI_QUOTES", expected: ModeANSIQuotes},
		{name: "case and spaces", input: " ansi_quotes , no_backslash_escapes", expected: ModeANSIQuotes | ModeNoBackslashEscapes},
		{name: "combination", input: "ANSI", expected: ModeANSI | ModeRealAsFloat | ModePipesAsConcat | ModeANSIQuotes | ModeIgnoreSpace | ModeOnlyFullGroupBy},
		{name: "unknown", input: "ANSI_QUOTES,NOPE", err: `unknown sql_mode "NOPE"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseSQLMode(tt.input)
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestSQLMode_String(t *testing.T) {
	assert.Equal(t, "", SQLMode(0).String())
	assert.Equal(t, "ANSI_QUOTES,PIPES_AS_CONCAT", (ModePipesAsConcat | ModeANSIQuotes).String())

	mode, err := ParseSQLMode("ANSI")
	require.NoError(t, err)
	again, err := ParseSQLMode(mode.String())
	require.NoError(t, err)
	assert.Equal(t, mode, again)
}

func TestOptions_YAML(t *testing.T) {
	var opts Options
	err := yaml.Unmarshal([]byte(`
server_version: 50700
sql_mode: ANSI_QUOTES,HIGH_NOT_PRECEDENCE
charset: latin1
multi_statements: true
body_utf8: true
`), &opts)
	require.NoError(t, err)
	assert.Equal(t, 50700, opts.ServerVersion)
	assert.True(t, opts.SQLMode.Has(ModeANSIQuotes|ModeHighNotPrecedence))
	assert.Equal(t, "latin1", opts.Charset)
	assert.True(t, opts.MultiStatements)
	assert.True(t, opts.BodyUTF8)

	out, err := yaml.Marshal(Options{SQLMode: ModeANSIQuotes})
	require.NoError(t, err)
	assert.Contains(t, string(out), "sql_mode: ANSI_QUOTES\n")

	err = yaml.Unmarshal([]byte("sql_mode: BOGUS\n"), &opts)
	assert.Error(t, err)
}

func TestOptions_Defaults(t *testing.T) {
	opts, cs, err := Options{SQLMode: ModeIgnoreSpace}.withDefaults()
	require.NoError(t, err)
	assert.Equal(t, DefaultServerVersion, opts.ServerVersion)
	assert.True(t, opts.IgnoreSpace)
	assert.NotNil(t, opts.Logger)
	assert.IsType(t, CommentHintParser{}, opts.HintParser)
	assert.Equal(t, opts.Charset, cs.Name())

	_, _, err = Options{Charset: "klingon"}.withDefaults()
	assert.EqualError(t, err, `unknown character set "klingon"`)
}
