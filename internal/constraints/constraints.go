// Package constraints defines type constraints shared by the generic
// parse and escape entry points.
package constraints

// Byteseq matches the string-like inputs accepted on the text boundary.
type Byteseq interface {
	~string | ~[]byte
}
