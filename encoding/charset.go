package encoding

//go:generate go tool errtrace -w .

import (
	"unicode/utf8"

	"braces.dev/errtrace"
	textencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/syncutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// ErrUnknownCharset is returned by [LookupCharset] when the charset name
// cannot be resolved to a supported encoding.
const ErrUnknownCharset errorutil.Error = "unknown charset"

// Charset is a resolved character set handle used to convert between
// unicode text and the octets behind percent escapes.
//
// The zero value behaves as UTF-8.
type Charset struct {
	name string
	enc  textencoding.Encoding
}

// UTF8 is the default charset.
var UTF8 = Charset{name: "UTF-8"}

// charsets caches charsets resolved through the IANA index, keyed by
// folded name.
var charsets syncutil.RWMap[string, Charset]

// LookupCharset resolves an IANA charset name ("UTF-8", "ISO-8859-1", ...)
// to a [Charset]. Matching is case-insensitive.
func LookupCharset(name string) (Charset, error) {
	if name == "" || util.EqFold(name, "utf-8") || util.EqFold(name, "utf8") {
		return UTF8, nil
	}
	key := util.LCase(name)
	if cs, ok := charsets.Get(key); ok {
		return cs, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return Charset{}, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownCharset, err))
	}
	if enc == nil {
		// known IANA name without a supported encoding
		return Charset{}, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownCharset, name))
	}
	cs, _ := charsets.GetOrSet(key, Charset{name: name, enc: enc})
	return cs, nil
}

// CharsetOrDefault resolves name like [LookupCharset] but falls back
// to [UTF8] instead of failing.
func CharsetOrDefault(name string) Charset {
	cs, err := LookupCharset(name)
	if err != nil {
		return UTF8
	}
	return cs
}

// Name returns the charset name the value was resolved from.
func (cs Charset) Name() string {
	if cs.name == "" {
		return "UTF-8"
	}
	return cs.name
}

// String returns the charset name.
func (cs Charset) String() string { return cs.Name() }

// AppendBytes appends the charset representation of r to dst.
// Runes the charset cannot represent fall back to their UTF-8 bytes,
// so rendering never fails.
func (cs Charset) AppendBytes(dst []byte, r rune) []byte {
	if cs.enc == nil {
		return utf8.AppendRune(dst, r)
	}
	b, err := cs.enc.NewEncoder().Bytes(utf8.AppendRune(nil, r))
	if err != nil || len(b) == 0 {
		return utf8.AppendRune(dst, r)
	}
	return append(dst, b...)
}

// DecodeBytes converts charset octets to a string. Undecodable input is
// returned as is.
func (cs Charset) DecodeBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if cs.enc == nil {
		return string(b)
	}
	out, err := cs.enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
