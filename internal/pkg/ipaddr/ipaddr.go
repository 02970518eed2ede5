// Package ipaddr provides strict IPv4 address and netmask arithmetic.
package ipaddr

import (
	"fmt"
	"strings"
)

// maskBits maps a valid netmask octet to the number of set bits it carries.
var maskBits = map[int]int{
	255: 8,
	254: 7,
	252: 6,
	248: 5,
	240: 4,
	224: 3,
	192: 2,
	128: 1,
	0:   0,
}

// ValidIPv4 reports whether s is a well-formed dotted-quad IPv4 address:
// exactly four dot-separated groups, each parsing as an integer in [0,255].
// Leading zeros are rejected ("192.168.01.1" is not valid) so that every
// accepted string has exactly one canonical form.
func ValidIPv4(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		if len(g) > 1 && g[0] == '0' {
			return false
		}
		n, ok := parseOctet(g)
		if !ok || n > 255 {
			return false
		}
	}
	return true
}

// parseOctet parses a group of 1 to 3 decimal digits. Unlike strconv.Atoi
// it rejects sign characters, so "+4" and "-0" are not octets.
func parseOctet(g string) (int, bool) {
	if g == "" || len(g) > 3 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(g); i++ {
		c := g[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// MaskToPrefix converts a dotted-quad subnet mask to its prefix length.
// Each octet must be one of {0,128,192,224,240,248,252,254,255} and the set
// bits must be contiguous left to right: once an octet is not 255, every
// following octet must be 0. 255.255.255.0 -> 24, 255.255.255.252 -> 30.
func MaskToPrefix(mask string) (int, error) {
	groups := strings.Split(mask, ".")
	if len(groups) != 4 {
		return 0, fmt.Errorf("invalid mask %q: expected four octets", mask)
	}

	prefix := 0
	sealed := false // a non-255 octet was seen; only 0 is allowed after it
	for _, g := range groups {
		n, ok := parseOctet(g)
		if !ok {
			return 0, fmt.Errorf("invalid mask %q: octet %q is not a number", mask, g)
		}
		bits, ok := maskBits[n]
		if !ok {
			return 0, fmt.Errorf("invalid mask %q: octet %d is not a valid mask value", mask, n)
		}
		if sealed && n != 0 {
			return 0, fmt.Errorf("invalid mask %q: set bits are not contiguous", mask)
		}
		if n != 255 {
			sealed = true
		}
		prefix += bits
	}
	return prefix, nil
}

// CIDR formats ip and mask as "ip/prefix".
func CIDR(ip, mask string) (string, error) {
	prefix, err := MaskToPrefix(mask)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d", ip, prefix), nil
}

// PrefixToMask converts a prefix length in [0,32] to dotted-quad notation.
func PrefixToMask(prefix int) (string, error) {
	if prefix < 0 || prefix > 32 {
		return "", fmt.Errorf("invalid prefix length %d", prefix)
	}
	var octets [4]int
	for i := 0; i < 4; i++ {
		bits := prefix - i*8
		switch {
		case bits >= 8:
			octets[i] = 255
		case bits <= 0:
			octets[i] = 0
		default:
			octets[i] = 256 - (1 << (8 - bits))
		}
	}
	return fmt.Sprintf("%d.%d.%d.%d", octets[0], octets[1], octets[2], octets[3]), nil
}
