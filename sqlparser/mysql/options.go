package mysql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vippsas/sqllex/sqlparser/charset"
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

// DefaultServerVersion is the version /*!NNNNN comments are compared with
// when none is configured: 8.1.0.
const DefaultServerVersion = 80100

// SQLMode is the sql_mode bit set. Only a few bits change how text is
// lexed; the rest are accepted so that a server's sql_mode can be pasted
// into the configuration unchanged.
type SQLMode uint64

const (
	ModeRealAsFloat            SQLMode = 1 << 0
	ModePipesAsConcat          SQLMode = 1 << 1
	ModeANSIQuotes             SQLMode = 1 << 2
	ModeIgnoreSpace            SQLMode = 1 << 3
	ModeOnlyFullGroupBy        SQLMode = 1 << 5
	ModeNoUnsignedSubtraction  SQLMode = 1 << 6
	ModeNoDirInCreate          SQLMode = 1 << 7
	ModeANSI                   SQLMode = 1 << 18
	ModeNoAutoValueOnZero      SQLMode = 1 << 19
	ModeNoBackslashEscapes     SQLMode = 1 << 20
	ModeStrictTransTables      SQLMode = 1 << 21
	ModeStrictAllTables        SQLMode = 1 << 22
	ModeNoZeroInDate           SQLMode = 1 << 23
	ModeNoZeroDate             SQLMode = 1 << 24
	ModeAllowInvalidDates      SQLMode = 1 << 25
	ModeErrorForDivisionByZero SQLMode = 1 << 26
	ModeTraditional            SQLMode = 1 << 27
	ModeHighNotPrecedence      SQLMode = 1 << 29
	ModeNoEngineSubstitution   SQLMode = 1 << 30
	ModePadCharToFullLength    SQLMode = 1 << 31
	ModeTimeTruncateFractional SQLMode = 1 << 32
)

var sqlModeNames = map[string]SQLMode{
	"REAL_AS_FLOAT":              ModeRealAsFloat,
	"PIPES_AS_CONCAT":            ModePipesAsConcat,
	"ANSI_QUOTES":                ModeANSIQuotes,
	"IGNORE_SPACE":               ModeIgnoreSpace,
	"ONLY_FULL_GROUP_BY":         ModeOnlyFullGroupBy,
	"NO_UNSIGNED_SUBTRACTION":    ModeNoUnsignedSubtraction,
	"NO_DIR_IN_CREATE":           ModeNoDirInCreate,
	"NO_AUTO_VALUE_ON_ZERO":      ModeNoAutoValueOnZero,
	"NO_BACKSLASH_ESCAPES":       ModeNoBackslashEscapes,
	"STRICT_TRANS_TABLES":        ModeStrictTransTables,
	"STRICT_ALL_TABLES":          ModeStrictAllTables,
	"NO_ZERO_IN_DATE":            ModeNoZeroInDate,
	"NO_ZERO_DATE":               ModeNoZeroDate,
	"ALLOW_INVALID_DATES":        ModeAllowInvalidDates,
	"ERROR_FOR_DIVISION_BY_ZERO": ModeErrorForDivisionByZero,
	"HIGH_NOT_PRECEDENCE":        ModeHighNotPrecedence,
	"NO_ENGINE_SUBSTITUTION":     ModeNoEngineSubstitution,
	"PAD_CHAR_TO_FULL_LENGTH":    ModePadCharToFullLength,
	"TIME_TRUNCATE_FRACTIONAL":   ModeTimeTruncateFractional,

	// combinations
	"ANSI": ModeANSI | ModeRealAsFloat | ModePipesAsConcat | ModeANSIQuotes |
		ModeIgnoreSpace | ModeOnlyFullGroupBy,
	"TRADITIONAL": ModeTraditional | ModeStrictTransTables | ModeStrictAllTables |
		ModeNoZeroInDate | ModeNoZeroDate | ModeErrorForDivisionByZero | ModeNoEngineSubstitution,
}

// ParseSQLMode parses a comma separated sql_mode value such as
// "ANSI_QUOTES,NO_BACKSLASH_ESCAPES". Names are case insensitive.
func ParseSQLMode(s string) (SQLMode, error) {
	var mode SQLMode
	for _, name := range strings.Split(s, ",") {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		bits, ok := sqlModeNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown sql_mode %q", name)
		}
		mode |= bits
	}
	return mode, nil
}

func (m SQLMode) Has(bits SQLMode) bool {
	return m&bits == bits
}

// String lists the single bits that are set, sorted, comma separated.
func (m SQLMode) String() string {
	var names []string
	for name, bits := range sqlModeNames {
		if bits&(bits-1) == 0 && m&bits != 0 {
			names = append(names, name)
		}
	}
	if m.Has(ModeANSI) {
		names = append(names, "ANSI")
	}
	if m.Has(ModeTraditional) {
		names = append(names, "TRADITIONAL")
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

func (m *SQLMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	mode, err := ParseSQLMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m SQLMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// Options configure a Scanner. The zero value lexes utf8mb4 text for a
// server of DefaultServerVersion with the default sql_mode.
type Options struct {
	ServerVersion   int     `yaml:"server_version"`
	SQLMode         SQLMode `yaml:"sql_mode"`
	Charset         string  `yaml:"charset"`
	MultiStatements bool    `yaml:"multi_statements"`
	IgnoreSpace     bool    `yaml:"ignore_space"`
	// PrepareMode makes '?' a PARAM_MARKER.
	PrepareMode bool `yaml:"prepare_mode"`
	// DigestMaxLength is the digest storage size; 0 means the default and
	// a negative value turns digests off.
	DigestMaxLength int  `yaml:"digest_max_length"`
	BodyUTF8        bool `yaml:"body_utf8"`

	File       sqldocument.FileRef `yaml:"-"`
	Logger     logrus.FieldLogger  `yaml:"-"`
	HintParser HintParser          `yaml:"-"`
	// DigestSink replaces the built in digest.State when set.
	DigestSink DigestSink `yaml:"-"`
}

func (o Options) withDefaults() (Options, charset.Charset, error) {
	if o.ServerVersion == 0 {
		o.ServerVersion = DefaultServerVersion
	}
	if o.Charset == "" {
		o.Charset = charset.DefaultName
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if o.HintParser == nil {
		o.HintParser = CommentHintParser{}
	}
	if o.SQLMode.Has(ModeIgnoreSpace) {
		o.IgnoreSpace = true
	}
	cs, ok := charset.ByName(o.Charset)
	if !ok {
		return o, nil, fmt.Errorf("unknown character set %q", o.Charset)
	}
	return o, cs, nil
}
