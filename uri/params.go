package uri

import (
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/types"
	"github.com/ghettovoice/gouri/internal/util"
)

// Param is a single key/value parameter pair.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered multi-map of URI parameters: a key may repeat and
// insertion order is preserved. It backs both query strings and matrix
// parameters. Keys are case-sensitive and never folded.
//
// All methods leave the receiver untouched and return new slices, so Params
// values may be shared freely.
type Params []Param

// Add returns a new Params with the (key, value) pair appended.
func (ps Params) Add(key, value string) Params {
	out := make(Params, len(ps), len(ps)+1)
	copy(out, ps)
	return append(out, Param{Key: key, Value: value})
}

// AddAll returns a new Params with all given pairs appended in order.
func (ps Params) AddAll(params ...Param) Params {
	if len(params) == 0 {
		return ps
	}
	out := make(Params, len(ps), len(ps)+len(params))
	copy(out, ps)
	return append(out, params...)
}

// Replace returns a new Params with every pair keyed key removed and a single
// (key, value) pair appended at the end.
func (ps Params) Replace(key, value string) Params {
	out := make(Params, 0, len(ps)+1)
	for _, p := range ps {
		if p.Key != key {
			out = append(out, p)
		}
	}
	return append(out, Param{Key: key, Value: value})
}

// RemoveAll returns a new Params without pairs keyed key, order of the
// remaining pairs preserved.
func (ps Params) RemoveAll(key string) Params {
	if !ps.Has(key) {
		return ps
	}
	out := make(Params, 0, len(ps))
	for _, p := range ps {
		if p.Key != key {
			out = append(out, p)
		}
	}
	return out
}

// Values returns all values stored under key in insertion order.
func (ps Params) Values(key string) []string {
	var vals []string
	for _, p := range ps {
		if p.Key == key {
			vals = append(vals, p.Value)
		}
	}
	return vals
}

// First returns the first value stored under key, in case the key is present,
// and a bool flag indicating whether it is present.
func (ps Params) First(key string) (string, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Has reports whether at least one pair is keyed key.
func (ps Params) Has(key string) bool {
	for _, p := range ps {
		if p.Key == key {
			return true
		}
	}
	return false
}

// Clone returns a copy of the params.
func (ps Params) Clone() Params { return slices.Clone(ps) }

// Equal reports whether the params equal the provided value, accepting Params,
// *Params and []Param. Pairs compare exactly, in order.
func (ps Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case *Params:
		if v == nil {
			return false
		}
		other = *v
	case []Param:
		other = v
	default:
		return false
	}
	// nil and empty both mean no parameters
	if len(ps) == 0 && len(other) == 0 {
		return true
	}
	return types.IsEqual([]Param(ps), []Param(other))
}

// Render returns the encoded form of the params with pairs joined by sep.
// An empty collection renders to an empty string.
func (ps Params) Render(sep byte, opts *RenderOptions) string {
	if len(ps) == 0 {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ps.RenderTo(sb, sep, opts) //nolint:errcheck
	return sb.String()
}

// RenderTo writes the encoded form of the params to w. Key and value of every
// pair pass through the options' encoder, join with "=" and pairs separate by
// sep. Separator ';' selects the path safe set, any other the query safe set.
func (ps Params) RenderTo(w io.Writer, sep byte, opts *RenderOptions) (num int, err error) {
	if len(ps) == 0 {
		return 0, nil
	}

	enc, cs := componentCodec(opts, sepEncoder(sep))
	sep1 := [1]byte{sep}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, p := range ps {
		if i > 0 {
			cw.Write(sep1[:])
		}
		cw.WriteString(enc.Encode(p.Key, cs))
		cw.WriteString("=")
		cw.WriteString(enc.Encode(p.Value, cs))
	}
	return errtrace.Wrap2(cw.Result())
}
