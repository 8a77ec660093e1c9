package encoding

// IsAlphanumChar reports whether c is an ASCII letter or digit.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

var unreservedChars = map[byte]bool{
	'-': true,
	'.': true,
	'_': true,
	'~': true,
}

// IsUnreservedChar checks on the unreserved rule: ALPHA / DIGIT / "-" / "." / "_" / "~".
func IsUnreservedChar(c byte) bool {
	return unreservedChars[c] || IsAlphanumChar(c)
}

// ShouldEscapeChar is the strictest escape predicate: every char outside the
// unreserved set is escaped.
func ShouldEscapeChar(c byte) bool { return !IsUnreservedChar(c) }

// Path segment safe set: pchar without the ";" and "=" matrix delimiters,
// so segment names and matrix keys/values survive a reparse.
var pathSafeChars = map[byte]bool{
	'!':  true,
	'$':  true,
	'&':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	':':  true,
	'@':  true,
}

// IsPathCharSafe reports whether c may appear unescaped inside a path segment token.
func IsPathCharSafe(c byte) bool {
	return pathSafeChars[c] || IsUnreservedChar(c)
}

// ShouldEscapePathChar is the escape predicate for path segment tokens.
func ShouldEscapePathChar(c byte) bool { return !IsPathCharSafe(c) }

// Query safe set: pchar plus "/" and "?" without the "&" and "=" pair delimiters.
var querySafeChars = map[byte]bool{
	'!':  true,
	'$':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	';':  true,
	':':  true,
	'@':  true,
	'/':  true,
	'?':  true,
}

// IsQueryCharSafe reports whether c may appear unescaped inside a query key or value.
func IsQueryCharSafe(c byte) bool {
	return querySafeChars[c] || IsUnreservedChar(c)
}

// ShouldEscapeQueryChar is the escape predicate for query keys and values.
func ShouldEscapeQueryChar(c byte) bool { return !IsQueryCharSafe(c) }

// Fragment safe set: pchar plus "/" and "?".
var fragmentSafeChars = map[byte]bool{
	'!':  true,
	'$':  true,
	'&':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	';':  true,
	'=':  true,
	':':  true,
	'@':  true,
	'/':  true,
	'?':  true,
}

// IsFragmentCharSafe reports whether c may appear unescaped inside a fragment.
func IsFragmentCharSafe(c byte) bool {
	return fragmentSafeChars[c] || IsUnreservedChar(c)
}

// ShouldEscapeFragmentChar is the escape predicate for fragments.
func ShouldEscapeFragmentChar(c byte) bool { return !IsFragmentCharSafe(c) }

// Userinfo safe set: unreserved plus sub-delims without ":", which splits
// user from password.
var userinfoSafeChars = map[byte]bool{
	'!':  true,
	'$':  true,
	'&':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	';':  true,
	'=':  true,
}

// IsUserinfoCharSafe reports whether c may appear unescaped inside a user or password token.
func IsUserinfoCharSafe(c byte) bool {
	return userinfoSafeChars[c] || IsUnreservedChar(c)
}

// ShouldEscapeUserinfoChar is the escape predicate for user and password tokens.
func ShouldEscapeUserinfoChar(c byte) bool { return !IsUserinfoCharSafe(c) }
