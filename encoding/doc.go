// Package encoding provides the pluggable encoding subsystem used on the
// boundary between raw URI component values and their wire text.
//
// # Encoders and decoders
//
// An [Encoder] turns a raw token into wire-safe text, a [Decoder] reverses it:
//
//	enc := encoding.Percent(encoding.ShouldEscapeQueryChar)
//	enc.Encode("a b&c", encoding.UTF8) // "a%20b%26c"
//
//	encoding.PercentDec.Decode("a%20b%26c", encoding.UTF8) // "a b&c"
//
// [PercentEncoder] escapes chars rejected by a configurable predicate,
// [NoopEncoder] passes text through untouched and [ChainedEncoder] applies
// several encoders in sequence:
//
//	enc := encoding.Chain(custom, encoding.Percent())
//
// Chains built with [Chain] flatten, so combining chains keeps a single
// flat encoder list regardless of grouping.
//
// # Safe sets
//
// Per-context predicates (IsPathCharSafe, IsQueryCharSafe, ...) describe
// which chars survive unescaped in each URI component. The matching
// ShouldEscape* helpers are accepted by [Percent].
//
// # Charsets
//
// A [Charset] resolves an IANA charset name and converts between runes and
// the octets behind percent escapes. [LookupCharset] fails with
// [ErrUnknownCharset] on unresolvable names, [CharsetOrDefault] falls back
// to [UTF8]. Chars a charset cannot represent keep their UTF-8 octets, so
// encoding never fails.
//
// All types in this package are immutable values, safe for concurrent use.
package encoding
