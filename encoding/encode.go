package encoding

//go:generate go tool mockgen -destination=../internal/testutil/encodingmock/encoding.go -package=encodingmock github.com/ghettovoice/gouri/encoding Encoder,Decoder

import (
	"unicode/utf8"

	"github.com/ghettovoice/gouri/internal/util"
)

// Encoder converts a raw text token to its wire-safe form under the given charset.
//
// Encoder implementations are immutable values, safe for concurrent use.
type Encoder interface {
	Encode(src string, cs Charset) string
}

// PercentEncoder escapes every char rejected by its predicate to the
// "% HEXDIG HEXDIG" form. Chars outside ASCII are converted to charset
// octets first and each octet is escaped separately.
//
// The zero value escapes everything outside the unreserved set.
type PercentEncoder struct {
	shouldEscape func(c byte) bool
}

// Percent returns a [PercentEncoder] over the given escape predicate.
// Without arguments the unreserved profile is used. When several predicates
// are given a char is escaped if any of them reports it.
func Percent(shouldEscape ...func(c byte) bool) PercentEncoder {
	switch len(shouldEscape) {
	case 0:
		return PercentEncoder{}
	case 1:
		return PercentEncoder{shouldEscape: shouldEscape[0]}
	default:
		preds := make([]func(c byte) bool, len(shouldEscape))
		copy(preds, shouldEscape)
		return PercentEncoder{shouldEscape: func(c byte) bool {
			for _, pred := range preds {
				if pred != nil && pred(c) {
					return true
				}
			}
			return false
		}}
	}
}

// Encode implements [Encoder]. A '%' opening a valid escape sequence is copied
// as is, so already escaped input is not escaped twice.
func (e PercentEncoder) Encode(src string, cs Charset) string {
	if src == "" {
		return src
	}

	shouldEscape := e.shouldEscape
	if shouldEscape == nil {
		shouldEscape = ShouldEscapeChar
	}

	b := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(b)
	b.Grow(len(src))

	var octets []byte
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '%' && i+2 < len(src) && ishex(src[i+1]) && ishex(src[i+2]):
			b.WriteByte(c)
			b.WriteByte(src[i+1])
			b.WriteByte(src[i+2])
			i += 3
		case c < utf8.RuneSelf:
			if shouldEscape(c) {
				b.WriteByte('%')
				b.WriteByte(upperhex[c>>4])
				b.WriteByte(upperhex[c&15])
			} else {
				b.WriteByte(c)
			}
			i++
		default:
			r, size := utf8.DecodeRuneInString(src[i:])
			if r == utf8.RuneError && size == 1 {
				// stray byte, escape it raw
				b.WriteByte('%')
				b.WriteByte(upperhex[c>>4])
				b.WriteByte(upperhex[c&15])
				i++
				continue
			}
			octets = cs.AppendBytes(octets[:0], r)
			for _, oc := range octets {
				b.WriteByte('%')
				b.WriteByte(upperhex[oc>>4])
				b.WriteByte(upperhex[oc&15])
			}
			i += size
		}
	}
	return b.String()
}

// NoopEncoder passes text through unchanged. It implements both [Encoder]
// and [Decoder] and is used to obtain the raw form of a rendered URI.
type NoopEncoder struct{}

// Noop is the shared identity encoder/decoder.
var Noop NoopEncoder

// Encode implements [Encoder].
func (NoopEncoder) Encode(src string, _ Charset) string { return src }

// Decode implements [Decoder].
func (NoopEncoder) Decode(src string, _ Charset) string { return src }

// ChainedEncoder applies its encoders in order, each one consuming the
// output of the previous.
type ChainedEncoder []Encoder

// Chain combines encoders into a single [Encoder]. Nested chains are
// flattened and nil entries dropped; a single remaining encoder is
// returned as is.
func Chain(encs ...Encoder) Encoder {
	out := make(ChainedEncoder, 0, len(encs))
	for _, e := range encs {
		switch v := e.(type) {
		case nil:
		case ChainedEncoder:
			out = append(out, v...)
		default:
			out = append(out, e)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

// Encode implements [Encoder].
func (ce ChainedEncoder) Encode(src string, cs Charset) string {
	for _, e := range ce {
		if e == nil {
			continue
		}
		src = e.Encode(src, cs)
	}
	return src
}

// Then returns a new encoder chain with next appended after the receiver.
func (ce ChainedEncoder) Then(next Encoder) Encoder {
	return Chain(ce, next)
}
