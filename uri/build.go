package uri

import (
	"fmt"
	"slices"
)

// with returns a shallow copy of the URI to derive a new value from,
// treating a nil receiver as the zero URI.
func (u *URI) with() URI {
	if u == nil {
		return URI{}
	}
	return *u
}

// WithScheme returns a new URI with the scheme replaced. An empty scheme
// makes the URI protocol-relative.
func (u *URI) WithScheme(scheme string) *URI {
	u2 := u.with()
	u2.Scheme = scheme
	return &u2
}

// WithHost returns a new URI with the host replaced, the port is kept.
func (u *URI) WithHost(host string) *URI {
	u2 := u.with()
	if port, ok := u2.Addr.Port(); ok {
		u2.Addr = HostPort(host, port)
	} else {
		u2.Addr = Host(host)
	}
	return &u2
}

// WithPort returns a new URI with the port replaced, the host is kept.
func (u *URI) WithPort(port uint16) *URI {
	u2 := u.with()
	u2.Addr = HostPort(u2.Addr.Host(), port)
	return &u2
}

// WithUser returns a new URI with the username replaced, the password is kept.
func (u *URI) WithUser(name string) *URI {
	u2 := u.with()
	if passwd, ok := u2.User.Password(); ok {
		u2.User = UserPassword(name, passwd)
	} else {
		u2.User = User(name)
	}
	return &u2
}

// WithPassword returns a new URI with the password replaced, the username
// is kept.
func (u *URI) WithPassword(passwd string) *URI {
	u2 := u.with()
	u2.User = UserPassword(u2.User.Username(), passwd)
	return &u2
}

// WithFragment returns a new URI with a present fragment carrying the given
// value. An empty value still renders the "#" terminator.
func (u *URI) WithFragment(frag string) *URI {
	u2 := u.with()
	u2.Fragment = Frag(frag)
	return &u2
}

// WithoutFragment returns a new URI with the fragment absent.
func (u *URI) WithoutFragment() *URI {
	u2 := u.with()
	u2.Fragment = Fragment{}
	return &u2
}

// WithPath returns a new URI with the path replaced by the given parts.
func (u *URI) WithPath(parts ...PathPart) *URI {
	u2 := u.with()
	u2.Path = slices.Clone(parts)
	return &u2
}

// AppendPath returns a new URI with the given parts appended to the path.
func (u *URI) AppendPath(parts ...PathPart) *URI {
	u2 := u.with()
	if len(parts) > 0 {
		path := make([]PathPart, 0, len(u2.Path)+len(parts))
		path = append(path, u2.Path...)
		u2.Path = append(path, parts...)
	}
	return &u2
}

// WithParam returns a new URI with the (key, value) pair appended to the
// query. The value formats through [fmt.Sprint], a nil value marks the
// parameter absent and the query is left untouched.
func (u *URI) WithParam(key string, value any) *URI {
	u2 := u.with()
	if value != nil {
		u2.Query = u2.Query.Add(key, fmt.Sprint(value))
	}
	return &u2
}

// WithParams returns a new URI with all given pairs appended to the query.
func (u *URI) WithParams(params ...Param) *URI {
	u2 := u.with()
	u2.Query = u2.Query.AddAll(params...)
	return &u2
}

// ReplaceParam returns a new URI with every query pair keyed key replaced by
// a single (key, value) pair at the end of the query. A nil value removes
// the key entirely.
func (u *URI) ReplaceParam(key string, value any) *URI {
	u2 := u.with()
	if value == nil {
		u2.Query = u2.Query.RemoveAll(key)
	} else {
		u2.Query = u2.Query.Replace(key, fmt.Sprint(value))
	}
	return &u2
}

// RemoveParams returns a new URI with every query pair keyed key removed.
func (u *URI) RemoveParams(key string) *URI {
	u2 := u.with()
	u2.Query = u2.Query.RemoveAll(key)
	return &u2
}

// WithMatrixParam returns a new URI with the (key, value) matrix parameter
// appended to every path segment named part. Segments with other names are
// left untouched.
func (u *URI) WithMatrixParam(part, key, value string) *URI {
	u2 := u.with()
	var path []PathPart
	for i, p := range u2.Path {
		if p == nil || p.Part() != part {
			continue
		}
		if path == nil {
			path = slices.Clone(u2.Path)
		}
		path[i] = p.AddParam(key, value)
	}
	if path != nil {
		u2.Path = path
	}
	return &u2
}

// WithLastMatrixParam returns a new URI with the (key, value) matrix
// parameter appended to the last path segment. Without a path the URI is
// returned unchanged.
func (u *URI) WithLastMatrixParam(key, value string) *URI {
	u2 := u.with()
	if n := len(u2.Path); n > 0 && u2.Path[n-1] != nil {
		path := slices.Clone(u2.Path)
		path[n-1] = path[n-1].AddParam(key, value)
		u2.Path = path
	}
	return &u2
}
