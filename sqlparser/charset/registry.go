package charset

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// DefaultName is the character set used when none is configured.
const DefaultName = "utf8mb4"

var (
	initOnce sync.Once
	registry map[string]Charset
	aliases  = map[string]string{
		"utf8":     "utf8mb3",
		"utf-8":    "utf8mb4",
		"latin":    "latin1",
		"cp1252":   "latin1",
		"eucjp":    "ujis",
		"shiftjis": "sjis",
	}
)

// Init builds the registry. It is safe to call from several goroutines and
// only does work the first time.
func Init() {
	initOnce.Do(func() {
		registry = map[string]Charset{}
		add := func(cs Charset) {
			registry[cs.Name()] = cs
		}
		add(newUTF8("utf8mb4", 4))
		add(newUTF8("utf8mb3", 3))
		add(&binaryCharset{ctypeTable: newASCIITable(), name: "binary"})
		add(&asciiCharset{binaryCharset{ctypeTable: newASCIITable(), name: "ascii"}})

		for name, cm := range map[string]*charmap.Charmap{
			"latin1":   charmap.Windows1252,
			"latin2":   charmap.ISO8859_2,
			"latin5":   charmap.ISO8859_9,
			"latin7":   charmap.ISO8859_13,
			"cp1250":   charmap.Windows1250,
			"cp1251":   charmap.Windows1251,
			"cp1256":   charmap.Windows1256,
			"cp1257":   charmap.Windows1257,
			"cp850":    charmap.CodePage850,
			"cp852":    charmap.CodePage852,
			"cp866":    charmap.CodePage866,
			"koi8r":    charmap.KOI8R,
			"koi8u":    charmap.KOI8U,
			"greek":    charmap.ISO8859_7,
			"hebrew":   charmap.ISO8859_8,
			"macroman": charmap.Macintosh,
		} {
			add(newSingleByte(name, cm))
		}

		add(newMultiByte(&multiByte{
			name:  "gbk",
			enc:   simplifiedchinese.GBK,
			lead2: []byteRange{{0x81, 0xFE}},
			trail: []byteRange{{0x40, 0x7E}, {0x80, 0xFE}},
		}))
		add(newMultiByte(&multiByte{
			name:  "gb2312",
			enc:   simplifiedchinese.GBK,
			lead2: []byteRange{{0xA1, 0xF7}},
			trail: []byteRange{{0xA1, 0xFE}},
		}))
		for _, name := range []string{"sjis", "cp932"} {
			add(newMultiByte(&multiByte{
				name:  name,
				enc:   japanese.ShiftJIS,
				lead2: []byteRange{{0x81, 0x9F}, {0xE0, 0xFC}},
				trail: []byteRange{{0x40, 0x7E}, {0x80, 0xFC}},
			}))
		}
		for _, name := range []string{"ujis", "eucjpms"} {
			add(newMultiByte(&multiByte{
				name:   name,
				maxLen: 3,
				enc:    japanese.EUCJP,
				lead2:  []byteRange{{0x8E, 0x8E}, {0xA1, 0xFE}},
				lead3:  []byteRange{{0x8F, 0x8F}},
				trail:  []byteRange{{0xA1, 0xFE}},
			}))
		}
		add(newMultiByte(&multiByte{
			name:  "big5",
			enc:   traditionalchinese.Big5,
			lead2: []byteRange{{0xA1, 0xF9}},
			trail: []byteRange{{0x40, 0x7E}, {0xA1, 0xFE}},
		}))
		add(newMultiByte(&multiByte{
			name:  "euckr",
			enc:   korean.EUCKR,
			lead2: []byteRange{{0x81, 0xFE}},
			trail: []byteRange{{0x41, 0x5A}, {0x61, 0x7A}, {0x81, 0xFE}},
		}))
	})
}

// ByName looks up a character set by its MySQL name or an alias, ignoring
// case. It never fails loudly; unknown names return false.
func ByName(name string) (Charset, bool) {
	Init()
	name = strings.ToLower(name)
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	cs, ok := registry[name]
	return cs, ok
}

// MustByName is ByName for names known at compile time.
func MustByName(name string) Charset {
	cs, ok := ByName(name)
	if !ok {
		panic("unknown character set " + name)
	}
	return cs
}

// Default returns utf8mb4.
func Default() Charset {
	return MustByName(DefaultName)
}

// All returns every registered character set ordered by name.
func All() []Charset {
	Init()
	result := make([]Charset, 0, len(registry))
	for _, cs := range registry {
		result = append(result, cs)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}
