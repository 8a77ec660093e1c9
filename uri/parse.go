package uri

import (
	"strings"

	"github.com/ghettovoice/gouri/encoding"
	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/types"
)

// Parse parses a URI from the given input src (string or []byte) using
// percent decoding and the UTF-8 charset.
//
// It never fails: splitting is best effort and anything that does not look
// like a recognizable component is kept as literal text of the enclosing
// one. See [ParseWith] for the exact splitting order.
func Parse[T constraints.Byteseq](src T) *URI {
	return ParseWith(src, nil, encoding.UTF8)
}

// ParseWith parses a URI from the given input src (string or []byte) with an
// explicit decoder and charset. A nil dec falls back to percent decoding.
//
// Splitting happens on the raw input, decoding is applied per token
// afterwards, so an escaped delimiter never splits:
//
//  1. the first "#" opens the fragment, wherever it appears;
//  2. the first "?" of the remainder opens the query;
//  3. a scheme is recognized only as text before "://" with no "/" in it,
//     a leading "//" starts an authority without a scheme;
//  4. the authority runs to the next "/", its last "@" closes the user
//     credentials and the first ":" inside them separates the password,
//     a trailing decimal port is split off the host;
//  5. the rest is the path, split on "/" with empty segments dropped, each
//     segment splitting matrix parameters off at ";".
func ParseWith[T constraints.Byteseq](src T, dec encoding.Decoder, cs encoding.Charset) *URI {
	if dec == nil {
		dec = encoding.PercentDec
	}

	var u URI
	s := string(src)

	if i := strings.IndexByte(s, '#'); i >= 0 {
		u.Fragment = Frag(dec.Decode(s[i+1:], cs))
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		u.Query = parseParams(s[i+1:], '&', dec, cs)
		s = s[:i]
	}

	switch i := strings.Index(s, "://"); {
	case strings.HasPrefix(s, "//"):
		s = parseAuthority(&u, s[2:], dec, cs)
	case i >= 0 && !strings.Contains(s[:i], "/"):
		u.Scheme = dec.Decode(s[:i], cs)
		s = parseAuthority(&u, s[i+3:], dec, cs)
	}

	u.Path = parsePath(s, dec, cs)
	return &u
}

// parseAuthority consumes the authority block of s and returns the
// unconsumed tail.
func parseAuthority(u *URI, s string, dec encoding.Decoder, cs encoding.Charset) string {
	var tail string
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s, tail = s[:i], s[i:]
	}
	if i := strings.LastIndexByte(s, '@'); i >= 0 {
		u.User = parseUserInfo(s[:i], dec, cs)
		s = s[i+1:]
	}
	addr := types.ParseAddr(s)
	host := dec.Decode(addr.Host(), cs)
	if port, ok := addr.Port(); ok {
		u.Addr = HostPort(host, port)
	} else if host != "" {
		u.Addr = Host(host)
	}
	return tail
}

// parseUserInfo splits user credentials on the first ":". An empty chunk
// yields the zero UserInfo, user and password decode independently.
func parseUserInfo(s string, dec encoding.Decoder, cs encoding.Charset) UserInfo {
	if s == "" {
		return UserInfo{}
	}
	if name, passwd, found := strings.Cut(s, ":"); found {
		return UserPassword(dec.Decode(name, cs), dec.Decode(passwd, cs))
	}
	return User(dec.Decode(s, cs))
}

// parsePath splits s on "/" dropping empty segments, so "/a//b/" and "a/b"
// carry the same two segments.
func parsePath(s string, dec encoding.Decoder, cs encoding.Charset) []PathPart {
	if s == "" {
		return nil
	}
	var parts []PathPart
	for _, seg := range strings.Split(s, "/") {
		if seg == "" {
			continue
		}
		parts = append(parts, parsePart(seg, dec, cs))
	}
	return parts
}

// parsePart splits matrix parameters off a path segment at the first ";".
// A segment without parameter pieces stays a PlainPart.
func parsePart(seg string, dec encoding.Decoder, cs encoding.Charset) PathPart {
	name, rest, found := strings.Cut(seg, ";")
	if !found {
		return Part(dec.Decode(seg, cs))
	}
	params := parseParams(rest, ';', dec, cs)
	if len(params) == 0 {
		return Part(dec.Decode(name, cs))
	}
	return MatrixPart{name: dec.Decode(name, cs), params: params}
}

// parseParams splits s on sep into key/value pairs, keys and values
// separating on the first "=". Empty pieces are skipped, a piece without
// "=" becomes a pair with an empty value.
func parseParams(s string, sep byte, dec encoding.Decoder, cs encoding.Charset) Params {
	var params Params
	for _, piece := range strings.Split(s, string(rune(sep))) {
		if piece == "" {
			continue
		}
		key, val, _ := strings.Cut(piece, "=")
		params = append(params, Param{Key: dec.Decode(key, cs), Value: dec.Decode(val, cs)})
	}
	return params
}
