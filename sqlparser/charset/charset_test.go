package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name     string
		lookup   string
		expected string
		found    bool
	}{
		{"canonical", "utf8mb4", "utf8mb4", true},
		{"case insensitive", "LATIN1", "latin1", true},
		{"alias", "utf8", "utf8mb3", true},
		{"binary", "binary", "binary", true},
		{"unknown", "klingon", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, ok := ByName(tt.lookup)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, cs.Name())
			}
		})
	}
}

func TestAllIsSortedAndComplete(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name(), all[i].Name())
	}
	for _, cs := range all {
		got, ok := ByName(cs.Name())
		require.True(t, ok, cs.Name())
		assert.Same(t, cs, got)
	}
}

func TestASCIIClassification(t *testing.T) {
	for _, cs := range All() {
		t.Run(cs.Name(), func(t *testing.T) {
			assert.True(t, cs.IsAlpha('a'))
			assert.True(t, cs.IsAlpha('Z'))
			assert.False(t, cs.IsAlpha('_'))
			assert.True(t, cs.IsDigit('7'))
			assert.True(t, cs.IsXDigit('f'))
			assert.False(t, cs.IsXDigit('g'))
			assert.True(t, cs.IsAlnum('q'))
			assert.True(t, cs.IsSpace(' '))
			assert.True(t, cs.IsSpace('\n'))
			assert.True(t, cs.IsCntrl('\n'))
			assert.False(t, cs.IsCntrl(' '))
			assert.True(t, cs.IsCntrl(0))
			assert.Equal(t, byte('Q'), cs.ToUpper('q'))
		})
	}
}

func TestUTF8MbCharLen(t *testing.T) {
	mb4 := MustByName("utf8mb4")
	mb3 := MustByName("utf8mb3")

	assert.Equal(t, 1, mb4.MbCharLen('a'))
	assert.Equal(t, 2, mb4.MbCharLen(0xC3))
	assert.Equal(t, 3, mb4.MbCharLen(0xE2))
	assert.Equal(t, 4, mb4.MbCharLen(0xF0))
	assert.Equal(t, 0, mb4.MbCharLen(0x80))
	assert.Equal(t, 0, mb3.MbCharLen(0xF0))

	assert.Equal(t, 2, mb4.IsMbChar([]byte("é")))
	assert.Equal(t, 3, mb4.IsMbChar([]byte("€x")))
	assert.Equal(t, 4, mb4.IsMbChar([]byte("😀")))
	assert.Equal(t, 0, mb3.IsMbChar([]byte("😀")))
	assert.Equal(t, 0, mb4.IsMbChar([]byte{0xC3}))
	assert.Equal(t, 0, mb4.IsMbChar([]byte("a")))

	assert.True(t, mb4.IsAlpha(0xC3))
	assert.True(t, mb4.IsAlpha(0xA9))
	assert.True(t, UseMb(mb4))
	assert.True(t, IsUTF8(mb3))
}

func TestSingleByte(t *testing.T) {
	latin1 := MustByName("latin1")
	assert.False(t, UseMb(latin1))
	// 0xE9 is é in cp1252
	assert.True(t, latin1.IsAlpha(0xE9))
	assert.Equal(t, byte(0xC9), latin1.ToUpper(0xE9))
	assert.False(t, latin1.IsDigit(0xB2))

	out, err := latin1.ToUTF8([]byte{'c', 'a', 'f', 0xE9})
	require.NoError(t, err)
	assert.Equal(t, "café", string(out))

	koi8r := MustByName("koi8r")
	out, err = koi8r.ToUTF8([]byte{0xD0, 0xD2, 0xC9})
	require.NoError(t, err)
	assert.Equal(t, "при", string(out))
}

func TestMultiByte(t *testing.T) {
	tests := []struct {
		charset string
		input   []byte
		length  int
		utf8    string
	}{
		// 中 in GBK; the trail byte 0x5C is a backslash
		{"gbk", []byte{0xD6, 0xD0}, 2, "中"},
		{"gbk", []byte{0x95, 0x5C}, 2, "昞"},
		// 表 in Shift_JIS, trail byte is also 0x5C
		{"sjis", []byte{0x95, 0x5C}, 2, "表"},
		{"big5", []byte{0xA4, 0xA4}, 2, "中"},
		{"ujis", []byte{0xB0, 0xA1}, 2, "亜"},
	}
	for _, tt := range tests {
		t.Run(tt.charset, func(t *testing.T) {
			cs := MustByName(tt.charset)
			assert.Equal(t, tt.length, cs.MbCharLen(tt.input[0]))
			assert.Equal(t, tt.length, cs.IsMbChar(tt.input))
			assert.True(t, cs.IsAlpha(tt.input[0]))
			out, err := cs.ToUTF8(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.utf8, string(out))
		})
	}

	gbk := MustByName("gbk")
	assert.Equal(t, 0, gbk.IsMbChar([]byte{0xD6}))
	assert.Equal(t, 0, gbk.IsMbChar([]byte{0xD6, 0x20}))
	assert.Equal(t, 3, MustByName("ujis").MbCharLen(0x8F))
}

func TestASCIIConversionReplacesHighBytes(t *testing.T) {
	out, err := MustByName("ascii").ToUTF8([]byte{'a', 0xE9, 'b'})
	require.NoError(t, err)
	assert.Equal(t, "a?b", string(out))
}
