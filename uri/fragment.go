package uri

// Fragment is an optional URI fragment. A present fragment renders after "#"
// even when its value is empty, an absent one renders nothing, so "http://h#"
// and "http://h" stay distinct.
//
// The zero value is the absent fragment.
type Fragment struct {
	val string
	set bool
}

// Frag returns a present [Fragment] with the given value.
func Frag(val string) Fragment { return Fragment{val: val, set: true} }

// Value returns the fragment value, in case it is present, and a bool flag
// indicating whether it is present.
func (fr Fragment) Value() (string, bool) { return fr.val, fr.set }

// String returns the raw fragment value.
func (fr Fragment) String() string { return fr.val }

// Equal reports whether the fragment equals the provided value, accepting
// Fragment and *Fragment. An absent fragment equals only an absent one.
func (fr Fragment) Equal(val any) bool {
	switch v := val.(type) {
	case Fragment:
		return fr == v
	case *Fragment:
		return v != nil && fr == *v
	default:
		return false
	}
}

// IsZero reports whether the fragment is absent.
func (fr Fragment) IsZero() bool {
	return !fr.set && fr.val == ""
}
