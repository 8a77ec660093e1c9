package uri

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/types"
	"github.com/ghettovoice/gouri/internal/util"
)

// PathPart is one "/"-delimited component of a URI path.
//
// Two variants exist: [PlainPart] for a bare segment and [MatrixPart] for a
// segment carrying matrix parameters. Parts are immutable, AddParam returns
// a widened copy. Equal is strict about the variant: a [PlainPart] never
// equals a [MatrixPart], not even one with an empty parameter list.
type PathPart interface {
	types.Renderer
	types.Cloneable[PathPart]
	types.Equalable

	// Part returns the bare segment name.
	Part() string
	// Params returns the matrix parameters of the segment, empty for a plain part.
	Params() Params
	// AddParam returns a [MatrixPart] with the (key, value) matrix parameter appended.
	AddParam(key, value string) PathPart
}

var (
	_ PathPart = PlainPart{}
	_ PathPart = MatrixPart{}
)

// PlainPart is a bare path segment without matrix parameters.
type PlainPart struct {
	name string
}

// Part returns a [PlainPart] with the given segment name.
func Part(name string) PlainPart { return PlainPart{name: name} }

// Part returns the segment name.
func (p PlainPart) Part() string { return p.name }

// Params returns nil, a plain part carries no matrix parameters.
func (p PlainPart) Params() Params { return nil }

// AddParam widens the part to a [MatrixPart] carrying a single matrix parameter.
func (p PlainPart) AddParam(key, value string) PathPart {
	return MatrixPart{name: p.name, params: Params{{Key: key, Value: value}}}
}

// Render returns the encoded segment.
func (p PlainPart) Render(opts *RenderOptions) string {
	enc, cs := componentCodec(opts, pathEnc)
	return enc.Encode(p.name, cs)
}

// RenderTo writes the encoded segment to w.
func (p PlainPart) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(io.WriteString(w, p.Render(opts)))
}

// Clone returns the part itself, a plain part holds no shared state.
func (p PlainPart) Clone() PathPart { return p }

// Equal reports whether val is a [PlainPart] with the same segment name.
func (p PlainPart) Equal(val any) bool {
	switch v := val.(type) {
	case PlainPart:
		return p.name == v.name
	case *PlainPart:
		return v != nil && p.name == v.name
	default:
		return false
	}
}

// String returns the encoded segment with default options.
func (p PlainPart) String() string {
	return p.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the path part.
func (p PlainPart) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, p.String())
	case 'q':
		fmt.Fprintf(f, "%q", p.String())
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, p.String())
			return
		}

		type hideMethods PlainPart
		type PlainPart hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), PlainPart(p))
	}
}

// MatrixPart is a path segment carrying matrix parameters after its name.
type MatrixPart struct {
	name   string
	params Params
}

// PartParams returns a [MatrixPart] with the given segment name and matrix parameters.
func PartParams(name string, params ...Param) MatrixPart {
	return MatrixPart{name: name, params: slices.Clone(params)}
}

// Part returns the segment name.
func (p MatrixPart) Part() string { return p.name }

// Params returns the matrix parameters in insertion order.
func (p MatrixPart) Params() Params { return p.params }

// AddParam returns a [MatrixPart] with the (key, value) matrix parameter appended.
func (p MatrixPart) AddParam(key, value string) PathPart {
	return MatrixPart{name: p.name, params: p.params.Add(key, value)}
}

// Render returns the encoded segment with its matrix parameters.
func (p MatrixPart) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// RenderTo writes the encoded segment to w: the name, then ";" and the
// parameters when any are present.
func (p MatrixPart) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	enc, cs := componentCodec(opts, pathEnc)

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(enc.Encode(p.name, cs))
	if len(p.params) > 0 {
		cw.WriteString(";")
		p.params.RenderTo(cw, ';', opts) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// Clone returns a deep copy of the part.
func (p MatrixPart) Clone() PathPart {
	return MatrixPart{name: p.name, params: p.params.Clone()}
}

// Equal reports whether val is a [MatrixPart] with the same segment name and
// the same parameter pairs in the same order.
func (p MatrixPart) Equal(val any) bool {
	switch v := val.(type) {
	case MatrixPart:
		return p.name == v.name && p.params.Equal(v.params)
	case *MatrixPart:
		return v != nil && p.Equal(*v)
	default:
		return false
	}
}

// String returns the encoded segment with default options.
func (p MatrixPart) String() string {
	return p.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the path part.
func (p MatrixPart) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, p.String())
	case 'q':
		fmt.Fprintf(f, "%q", p.String())
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, p.String())
			return
		}

		type hideMethods MatrixPart
		type MatrixPart hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), MatrixPart(p))
	}
}
