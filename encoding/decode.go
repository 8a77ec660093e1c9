package encoding

import (
	"strings"

	"github.com/ghettovoice/gouri/internal/util"
)

// Decoder converts wire text back to its raw form under the given charset.
// It is applied once to every token extracted by the parser.
//
// Decoder implementations are immutable values, safe for concurrent use.
type Decoder interface {
	Decode(src string, cs Charset) string
}

// PercentDecoder reverses percent-encoding. Consecutive "%XX" escapes are
// decoded as one octet group through the charset; malformed escapes are
// copied as is, so decoding never fails.
type PercentDecoder struct{}

// PercentDec is the shared percent decoder.
var PercentDec PercentDecoder

// Decode implements [Decoder].
func (PercentDecoder) Decode(src string, cs Charset) string {
	if !strings.Contains(src, "%") {
		return src
	}

	b := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(b)
	b.Grow(len(src))
	grp := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(grp)

	for i := 0; i < len(src); {
		if src[i] == '%' && i+2 < len(src) && ishex(src[i+1]) && ishex(src[i+2]) {
			grp.WriteByte(unhex(src[i+1])<<4 | unhex(src[i+2]))
			i += 3
			continue
		}
		if grp.Len() > 0 {
			b.WriteString(cs.DecodeBytes(grp.Bytes()))
			grp.Reset()
		}
		b.WriteByte(src[i])
		i++
	}
	if grp.Len() > 0 {
		b.WriteString(cs.DecodeBytes(grp.Bytes()))
	}
	return b.String()
}
