package types

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/ghettovoice/gouri/internal/constraints"
	"github.com/ghettovoice/gouri/internal/util"
)

// Addr is a container for host and optional port.
type Addr struct {
	host    string
	port    uint16
	hasPort bool
}

// Host returns an [Addr] containing the provided host and no port.
func Host(host string) Addr {
	return Addr{host: host}
}

// HostPort returns an [Addr] containing the provided host and port.
func HostPort(host string, port uint16) Addr {
	return Addr{host: host, port: port, hasPort: true}
}

// ParseAddr parses a "host:port" string into an [Addr]. The input splits on
// the last colon only when the suffix is a valid port number, otherwise the
// whole input is taken as host. It never fails.
//
// IPv6 literals with an explicit port are not recognized: bracket syntax is
// not supported and an all-digit suffix after the last colon parses as a port.
func ParseAddr[T constraints.Byteseq](s T) Addr {
	str := string(s)
	i := strings.LastIndexByte(str, ':')
	if i < 0 || !isPort(str[i+1:]) {
		return Host(str)
	}
	n, err := strconv.ParseUint(str[i+1:], 10, 64)
	if err != nil {
		return Host(str)
	}
	port, err := safecast.Conv[uint16](n)
	if err != nil {
		return Host(str)
	}
	return HostPort(str[:i], port)
}

func isPort(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Host returns the hostname portion of the address as provided during construction or parsing.
func (addr Addr) Host() string { return addr.host }

// Port returns the port, in case it is set, and bool flag indicating whether it is set.
func (addr Addr) Port() (uint16, bool) { return addr.port, addr.hasPort }

// String formats the address as host[:port].
func (addr Addr) String() string {
	if !addr.hasPort {
		return addr.host
	}
	return addr.host + ":" + strconv.Itoa(int(addr.port))
}

// Format implements fmt.Formatter to support custom formatting verbs for Addr values.
func (addr Addr) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, addr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(addr.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, addr.String())
			return
		}

		type hideMethods Addr
		type Addr hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Addr(addr))
		return
	}
}

// Clone returns a copy of the address.
func (addr Addr) Clone() Addr { return addr }

// Equal reports whether the address equals the provided value, accepting Addr and *Addr.
// Hosts compare case-insensitively.
func (addr Addr) Equal(val any) bool {
	var other Addr
	switch v := val.(type) {
	case Addr:
		other = v
	case *Addr:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	return util.EqFold(addr.host, other.host) &&
		addr.port == other.port &&
		addr.hasPort == other.hasPort
}

// IsValid reports whether the address contains a host.
func (addr Addr) IsValid() bool { return addr.host != "" }

// IsZero reports whether the address has zero host and port information.
func (addr Addr) IsZero() bool { return addr.host == "" && !addr.hasPort }

// MarshalText encodes the address into its textual representation suitable for JSON/Text marshalling.
func (addr Addr) MarshalText() (text []byte, err error) {
	return []byte(addr.String()), nil
}

// UnmarshalText parses a textual representation of an address into the receiver.
// It never fails.
func (addr *Addr) UnmarshalText(text []byte) error {
	*addr = ParseAddr(text)
	return nil
}
