package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/ghettovoice/gouri/uri"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// uriCmpOpts opens the unexported component types for cmp-based assertions.
var uriCmpOpts = cmp.Options{
	cmp.AllowUnexported(uri.Addr{}, uri.UserInfo{}, uri.Fragment{}, uri.PlainPart{}, uri.MatrixPart{}),
}
