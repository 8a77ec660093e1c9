package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gouri/uri"
)

func TestURI_WithScheme(t *testing.T) {
	t.Parallel()

	base := uri.Parse("http://example.com/a")
	got := base.WithScheme("https")

	if want := "https://example.com/a"; got.String() != want {
		t.Errorf("base.WithScheme(\"https\").String() = %q, want %q", got.String(), want)
	}
	if want := "http://example.com/a"; base.String() != want {
		t.Errorf("base changed after WithScheme: %q, want %q", base.String(), want)
	}

	t.Run("nil receiver", func(t *testing.T) {
		t.Parallel()

		var none *uri.URI
		got := none.WithScheme("http")
		want := &uri.URI{Scheme: "http"}
		if diff := cmp.Diff(got, want, uriCmpOpts); diff != "" {
			t.Errorf("nil.WithScheme(\"http\") = %v, want %v\ndiff (-got +want):\n%v", got, want, diff)
		}
	})
}

func TestURI_WithHost(t *testing.T) {
	t.Parallel()

	t.Run("keeps port", func(t *testing.T) {
		t.Parallel()

		got := uri.Parse("http://old:8080/a").WithHost("new")
		if diff := cmp.Diff(got.Addr, uri.HostPort("new", 8080), uriCmpOpts); diff != "" {
			t.Errorf("u.WithHost(\"new\").Addr mismatch\ndiff (-got +want):\n%v", diff)
		}
	})

	t.Run("no port", func(t *testing.T) {
		t.Parallel()

		got := uri.Parse("http://old/a").WithHost("new")
		if diff := cmp.Diff(got.Addr, uri.Host("new"), uriCmpOpts); diff != "" {
			t.Errorf("u.WithHost(\"new\").Addr mismatch\ndiff (-got +want):\n%v", diff)
		}
	})
}

func TestURI_WithPort(t *testing.T) {
	t.Parallel()

	got := uri.Parse("http://h/a").WithPort(9090)
	if diff := cmp.Diff(got.Addr, uri.HostPort("h", 9090), uriCmpOpts); diff != "" {
		t.Errorf("u.WithPort(9090).Addr mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestURI_WithUser(t *testing.T) {
	t.Parallel()

	t.Run("keeps password", func(t *testing.T) {
		t.Parallel()

		got := uri.Parse("http://u:pw@h").WithUser("x")
		if diff := cmp.Diff(got.User, uri.UserPassword("x", "pw"), uriCmpOpts); diff != "" {
			t.Errorf("u.WithUser(\"x\").User mismatch\ndiff (-got +want):\n%v", diff)
		}
	})

	t.Run("no password", func(t *testing.T) {
		t.Parallel()

		got := uri.Parse("http://h").WithUser("x")
		if diff := cmp.Diff(got.User, uri.User("x"), uriCmpOpts); diff != "" {
			t.Errorf("u.WithUser(\"x\").User mismatch\ndiff (-got +want):\n%v", diff)
		}
	})
}

func TestURI_WithPassword(t *testing.T) {
	t.Parallel()

	got := uri.Parse("http://u@h").WithPassword("pw")
	if diff := cmp.Diff(got.User, uri.UserPassword("u", "pw"), uriCmpOpts); diff != "" {
		t.Errorf("u.WithPassword(\"pw\").User mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestURI_WithFragment(t *testing.T) {
	t.Parallel()

	base := uri.Parse("http://h/a")

	got := base.WithFragment("top")
	if want := "http://h/a#top"; got.String() != want {
		t.Errorf("base.WithFragment(\"top\").String() = %q, want %q", got.String(), want)
	}

	got = base.WithFragment("")
	if want := "http://h/a#"; got.String() != want {
		t.Errorf("base.WithFragment(\"\").String() = %q, want %q", got.String(), want)
	}

	got = got.WithoutFragment()
	if want := "http://h/a"; got.String() != want {
		t.Errorf("u.WithoutFragment().String() = %q, want %q", got.String(), want)
	}
}

func TestURI_WithPath(t *testing.T) {
	t.Parallel()

	base := uri.Parse("http://h/old")

	parts := []uri.PathPart{uri.Part("a"), uri.Part("b")}
	got := base.WithPath(parts...)
	if want := "http://h/a/b"; got.String() != want {
		t.Errorf("base.WithPath(a, b).String() = %q, want %q", got.String(), want)
	}

	// the input slice must be copied
	parts[0] = uri.Part("x")
	if want := "http://h/a/b"; got.String() != want {
		t.Errorf("u changed after mutating input slice: %q, want %q", got.String(), want)
	}
}

func TestURI_AppendPath(t *testing.T) {
	t.Parallel()

	base := uri.Parse("http://h/a")

	got := base.AppendPath(uri.Part("b"), uri.PartParams("c", uri.Param{Key: "k", Value: "v"}))
	if want := "http://h/a/b/c;k=v"; got.String() != want {
		t.Errorf("base.AppendPath(...).String() = %q, want %q", got.String(), want)
	}
	if want := "http://h/a"; base.String() != want {
		t.Errorf("base changed after AppendPath: %q, want %q", base.String(), want)
	}

	t.Run("nil receiver", func(t *testing.T) {
		t.Parallel()

		var none *uri.URI
		if got, want := none.AppendPath(uri.Part("a")).String(), "/a"; got != want {
			t.Errorf("nil.AppendPath(a).String() = %q, want %q", got, want)
		}
	})
}

func TestURI_WithParam(t *testing.T) {
	t.Parallel()

	base := uri.Parse("http://h?a=1")

	cases := []struct {
		name  string
		key   string
		value any
		want  string
	}{
		{"string value", "b", "2", "http://h?a=1&b=2"},
		{"int value", "page", 7, "http://h?a=1&page=7"},
		{"duplicate key appends", "a", "2", "http://h?a=1&a=2"},
		{"empty value", "b", "", "http://h?a=1&b="},
		{"nil value marks absent", "b", nil, "http://h?a=1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := base.WithParam(c.key, c.value).String(); got != c.want {
				t.Errorf("base.WithParam(%q, %v).String() = %q, want %q", c.key, c.value, got, c.want)
			}
		})
	}
}

func TestURI_WithParams(t *testing.T) {
	t.Parallel()

	got := uri.Parse("http://h").WithParams(
		uri.Param{Key: "a", Value: "1"},
		uri.Param{Key: "a", Value: "2"},
	)
	if want := "http://h?a=1&a=2"; got.String() != want {
		t.Errorf("u.WithParams(...).String() = %q, want %q", got.String(), want)
	}
}

func TestURI_ReplaceParam(t *testing.T) {
	t.Parallel()

	base := uri.Parse("http://h?k=1&k=2&j=x")

	// occurrences removed, the new pair appended at the end
	got := base.ReplaceParam("k", 9)
	if want := "http://h?j=x&k=9"; got.String() != want {
		t.Errorf("base.ReplaceParam(\"k\", 9).String() = %q, want %q", got.String(), want)
	}

	got = base.ReplaceParam("k", nil)
	if want := "http://h?j=x"; got.String() != want {
		t.Errorf("base.ReplaceParam(\"k\", nil).String() = %q, want %q", got.String(), want)
	}

	if want := "http://h?k=1&k=2&j=x"; base.String() != want {
		t.Errorf("base changed after ReplaceParam: %q, want %q", base.String(), want)
	}
}

func TestURI_RemoveParams(t *testing.T) {
	t.Parallel()

	got := uri.Parse("http://h?k=1&j=x&k=2").RemoveParams("k")
	if want := "http://h?j=x"; got.String() != want {
		t.Errorf("u.RemoveParams(\"k\").String() = %q, want %q", got.String(), want)
	}
}

func TestURI_WithMatrixParam(t *testing.T) {
	t.Parallel()

	base := uri.Parse("http://h/a/b/a")

	// every segment with the requested name gains the parameter
	got := base.WithMatrixParam("a", "k", "v")
	if want := "http://h/a;k=v/b/a;k=v"; got.String() != want {
		t.Errorf("base.WithMatrixParam(\"a\", \"k\", \"v\").String() = %q, want %q", got.String(), want)
	}
	if want := "http://h/a/b/a"; base.String() != want {
		t.Errorf("base changed after WithMatrixParam: %q, want %q", base.String(), want)
	}

	t.Run("no matching segment", func(t *testing.T) {
		t.Parallel()

		got := base.WithMatrixParam("zzz", "k", "v")
		if !got.Equal(base) {
			t.Errorf("base.WithMatrixParam(\"zzz\", ...) = %v, want %v", got, base)
		}
	})
}

func TestURI_WithLastMatrixParam(t *testing.T) {
	t.Parallel()

	base := uri.Parse("http://h/a/b;k=1")

	got := base.WithLastMatrixParam("k", "2")
	if want := "http://h/a/b;k=1;k=2"; got.String() != want {
		t.Errorf("base.WithLastMatrixParam(\"k\", \"2\").String() = %q, want %q", got.String(), want)
	}

	t.Run("plain last widens", func(t *testing.T) {
		t.Parallel()

		got := uri.Parse("http://h/a/b").WithLastMatrixParam("k", "v")
		if want := "http://h/a/b;k=v"; got.String() != want {
			t.Errorf("u.WithLastMatrixParam(\"k\", \"v\").String() = %q, want %q", got.String(), want)
		}
	})

	t.Run("empty path unchanged", func(t *testing.T) {
		t.Parallel()

		base := uri.Parse("http://h")
		got := base.WithLastMatrixParam("k", "v")
		if !got.Equal(base) {
			t.Errorf("base.WithLastMatrixParam(...) = %v, want %v", got, base)
		}
	})
}

func TestURI_BuildChain(t *testing.T) {
	t.Parallel()

	got := uri.Parse("http://example.com/api").
		WithScheme("https").
		WithParam("page", 2).
		WithLastMatrixParam("format", "json").
		WithFragment("top")

	if want := "https://example.com/api;format=json?page=2#top"; got.String() != want {
		t.Errorf("build chain = %q, want %q", got.String(), want)
	}
}
