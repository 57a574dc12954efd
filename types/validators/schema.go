package validators

import (
	"net"
	"regexp"
)

var hostnamePattern = regexp.MustCompile(
	`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?)*$`,
)

// BindHostFormatChecker accepts values usable as the host part of a listen
// address: empty (all interfaces), an IP literal or a DNS name.
type BindHostFormatChecker struct{}

func (f BindHostFormatChecker) IsFormat(input interface{}) bool {
	str, ok := input.(string)
	if !ok {
		return true
	}

	if str == "" || net.ParseIP(str) != nil {
		return true
	}

	return len(str) <= 253 && hostnamePattern.MatchString(str)
}
