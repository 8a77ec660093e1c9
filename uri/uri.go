package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/encoding"
	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/types"
	"github.com/ghettovoice/gouri/internal/util"
)

// Addr represents a network address consisting of a host and an optional port.
type Addr = types.Addr

// Host creates an [Addr] from a hostname without a port.
func Host(host string) Addr { return types.Host(host) }

// HostPort creates an [Addr] from a hostname and a port.
func HostPort(host string, port uint16) Addr { return types.HostPort(host, port) }

// ParseAddr parses a network address from the given input s (string or []byte).
// It never fails.
func ParseAddr[T constraints.Byteseq](s T) Addr { return types.ParseAddr(s) }

// RenderOptions contains options for rendering URIs and their parts.
type RenderOptions = types.RenderOptions

// Default safe sets per encoded component.
var (
	pathEnc     = encoding.Percent(encoding.ShouldEscapePathChar)
	queryEnc    = encoding.Percent(encoding.ShouldEscapeQueryChar)
	fragmentEnc = encoding.Percent(encoding.ShouldEscapeFragmentChar)
)

// componentCodec resolves the encoder and charset for one rendered component.
// The options' encoder, when set, overrides the component's default safe set.
func componentCodec(opts *RenderOptions, dflt encoding.Encoder) (encoding.Encoder, encoding.Charset) {
	if opts == nil {
		return dflt, encoding.UTF8
	}
	enc := opts.Encoder
	if enc == nil {
		enc = dflt
	}
	return enc, encoding.CharsetOrDefault(opts.Charset)
}

func sepEncoder(sep byte) encoding.Encoder {
	if sep == ';' {
		return pathEnc
	}
	return queryEnc
}

// URI is a generic URI broken into its components. The zero value is the
// empty URI.
//
// URI values are treated as immutable: the With* builders and Clone return
// modified copies and never touch the receiver, so a URI may be shared
// between goroutines once built. The exported fields exist for construction
// by literal and for read access, code holding a shared URI must not assign
// through them.
type URI struct {
	// Scheme is the URI scheme, empty when absent.
	Scheme string
	// User holds the user credentials of the authority.
	User UserInfo
	// Addr holds the host and optional port of the authority.
	Addr Addr
	// Path is the ordered list of path segments.
	Path []PathPart
	// Query is the ordered list of query parameters.
	Query Params
	// Fragment is the optional fragment.
	Fragment Fragment
}

var _ interface {
	types.Renderer
	types.ValidFlag
	types.Equalable
	types.Cloneable[*URI]
} = (*URI)(nil)

// RenderTo writes the URI to the provided writer.
//
// Scheme, user credentials and address render raw. Path segments, query
// parameters and the fragment pass through their component safe sets, or
// through the options' encoder when one is set.
func (u *URI) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.Scheme != "" {
		cw.Fprint(u.Scheme, "://")
	} else if !u.Addr.IsZero() {
		cw.WriteString("//")
	}
	if !u.User.IsZero() {
		cw.Fprint(u.User, "@")
	}
	cw.Fprint(u.Addr)
	for _, p := range u.Path {
		if p == nil {
			continue
		}
		cw.WriteString("/")
		p.RenderTo(cw, opts) //nolint:errcheck
	}
	if len(u.Query) > 0 {
		cw.WriteString("?")
		u.Query.RenderTo(cw, '&', opts) //nolint:errcheck
	}
	if frag, ok := u.Fragment.Value(); ok {
		enc, cs := componentCodec(opts, fragmentEnc)
		cw.WriteString("#")
		cw.WriteString(enc.Encode(frag, cs))
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URI.
func (u *URI) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// RenderRaw returns the string representation of the URI with all components
// left unencoded. The result may not parse back to an equal URI.
func (u *URI) RenderRaw() string {
	return u.Render(&RenderOptions{Encoder: encoding.Noop})
}

// String returns the string representation of the URI with default options.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}

		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// Equal compares this URI with another for equality, accepting URI and *URI.
// Scheme and host compare case-insensitively, all other components exactly.
// Path parts compare strictly by variant, see [PathPart].
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return util.EqFold(u.Scheme, other.Scheme) &&
		u.User.Equal(other.User) &&
		u.Addr.Equal(other.Addr) &&
		u.equalPath(other.Path) &&
		u.Query.Equal(other.Query) &&
		u.Fragment.Equal(other.Fragment)
}

func (u *URI) equalPath(parts []PathPart) bool {
	if len(u.Path) != len(parts) {
		return false
	}
	for i, p := range u.Path {
		switch {
		case p == nil:
			if parts[i] != nil {
				return false
			}
		case !p.Equal(parts[i]):
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.Addr = u.Addr.Clone()
	if u.Path != nil {
		u2.Path = make([]PathPart, len(u.Path))
		for i, p := range u.Path {
			if p != nil {
				u2.Path[i] = p.Clone()
			}
		}
	}
	u2.Query = u.Query.Clone()
	return &u2
}

// IsValid reports whether the URI carries at least a host or a path.
func (u *URI) IsValid() bool {
	return u != nil && (!u.Addr.IsZero() || len(u.Path) > 0)
}

// IsZero reports whether all URI components are absent.
func (u *URI) IsZero() bool {
	return u == nil || u.Scheme == "" && u.User.IsZero() && u.Addr.IsZero() &&
		len(u.Path) == 0 && len(u.Query) == 0 && u.Fragment.IsZero()
}

// HostParts returns the host split on "." in order, nil when the host is absent.
func (u *URI) HostParts() []string {
	if u == nil || u.Addr.Host() == "" {
		return nil
	}
	return strings.Split(u.Addr.Host(), ".")
}

// Subdomain returns the leftmost host part, in case the host is present,
// and a bool flag indicating whether it is present.
func (u *URI) Subdomain() (string, bool) {
	parts := u.HostParts()
	if len(parts) == 0 {
		return "", false
	}
	return parts[0], true
}

// MarshalText implements the encoding.TextMarshaler interface.
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// It never fails, malformed text yields the recognizable pieces.
func (u *URI) UnmarshalText(text []byte) error {
	*u = *Parse(text)
	return nil
}
