package uri

import "fmt"

// UserInfo is a container for the user credentials part of a URI authority.
// It distinguishes an absent password from an empty one: User("u") renders
// "u", UserPassword("u", "") renders "u:".
//
// Credentials render raw, exactly as stored. Use [URI.RenderRaw] or a custom
// encoder when the surrounding URI must stay machine-readable.
type UserInfo struct {
	usrname, passwd string
	hasPasswd       bool
}

// User returns a [UserInfo] containing the provided username and no password.
func User(usrname string) UserInfo {
	return UserInfo{usrname: usrname}
}

// UserPassword returns a [UserInfo] containing the provided username and password.
func UserPassword(usrname, passwd string) UserInfo {
	return UserInfo{usrname: usrname, passwd: passwd, hasPasswd: true}
}

// Username returns the username from the UserInfo.
func (ui UserInfo) Username() string { return ui.usrname }

// Password returns the password, in case it is set, and a bool flag
// indicating whether it is set.
func (ui UserInfo) Password() (string, bool) { return ui.passwd, ui.hasPasswd }

// String returns the raw "username[:password]" form.
func (ui UserInfo) String() string {
	if !ui.hasPasswd {
		return ui.usrname
	}
	return ui.usrname + ":" + ui.passwd
}

// Format implements fmt.Formatter for custom formatting of the user info.
func (ui UserInfo) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, ui.String())
	case 'q':
		fmt.Fprintf(f, "%q", ui.String())
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, ui.String())
			return
		}

		type hideMethods UserInfo
		type UserInfo hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), UserInfo(ui))
	}
}

// Clone returns a copy of the user info.
func (ui UserInfo) Clone() UserInfo { return ui }

// Equal reports whether the user info equals the provided value, accepting
// UserInfo and *UserInfo. All fields compare exactly, an absent password
// differs from an empty one.
func (ui UserInfo) Equal(val any) bool {
	switch v := val.(type) {
	case UserInfo:
		return ui == v
	case *UserInfo:
		return v != nil && ui == *v
	default:
		return false
	}
}

// IsValid reports whether the user info carries a username.
func (ui UserInfo) IsValid() bool { return ui.usrname != "" }

// IsZero reports whether all user info fields are empty.
func (ui UserInfo) IsZero() bool {
	return ui.usrname == "" && ui.passwd == "" && !ui.hasPasswd
}
