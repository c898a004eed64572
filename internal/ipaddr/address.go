// =============================================================================
// internal/ipaddr/address.go - IPv4 address and CIDR block value types
// =============================================================================
package ipaddr

import (
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Address is a parsed IPv4 address. Immutable once constructed.
type Address struct {
	ip net.IP // always 4-byte form
}

// Parse parses a textual IPv4 address. Malformed input is an error.
func Parse(s string) (Address, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return Address{}, fmt.Errorf("invalid IP address: %q", s)
	}
	v4 := ip.To4()
	if v4 == nil {
		return Address{}, fmt.Errorf("not an IPv4 address: %q", s)
	}
	return Address{ip: v4}, nil
}

// FromUint32 builds an Address from its 32-bit big-endian value.
func FromUint32(v uint32) Address {
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, v)
	return Address{ip: ip}
}

// IP returns the address as a net.IP.
func (a Address) IP() net.IP {
	return a.ip
}

// Uint32 returns the address as a 32-bit big-endian value.
func (a Address) Uint32() uint32 {
	return binary.BigEndian.Uint32(a.ip)
}

// String returns the dotted-quad form.
func (a Address) String() string {
	return a.ip.String()
}

// ReverseLabels returns the octets in reverse order, dot-joined
// ("3.2.1.10" for 10.1.2.3). This is the label form used by the DNS
// ASN registries.
func (a Address) ReverseLabels() string {
	return fmt.Sprintf("%d.%d.%d.%d", a.ip[3], a.ip[2], a.ip[1], a.ip[0])
}

// ReverseName returns the full reverse-mapping zone name for PTR queries.
func (a Address) ReverseName() string {
	return a.ReverseLabels() + ".in-addr.arpa."
}

// Block is an IPv4 CIDR block: a network prefix plus its length.
type Block struct {
	IP        net.IP
	PrefixLen int
}

// NewBlock builds a Block from a prefix address and length, normalizing
// the address to the network base.
func NewBlock(ip net.IP, prefixLen int) (Block, error) {
	v4 := ip.To4()
	if v4 == nil {
		return Block{}, fmt.Errorf("not an IPv4 address: %v", ip)
	}
	if prefixLen < 0 || prefixLen > 32 {
		return Block{}, fmt.Errorf("invalid prefix length: %d", prefixLen)
	}
	return Block{
		IP:        v4.Mask(net.CIDRMask(prefixLen, 32)),
		PrefixLen: prefixLen,
	}, nil
}

// ParseBlock parses a prefix address and a textual prefix width, as
// delivered by the ASN registries ("203.0.113.0", "24").
func ParseBlock(prefix, width string) (Block, error) {
	ip := net.ParseIP(strings.TrimSpace(prefix))
	if ip == nil {
		return Block{}, fmt.Errorf("invalid prefix address: %q", prefix)
	}
	plen, err := strconv.Atoi(strings.TrimSpace(width))
	if err != nil {
		return Block{}, fmt.Errorf("invalid prefix width: %q", width)
	}
	return NewBlock(ip, plen)
}

// ParseCIDR parses "prefix/width" notation.
func ParseCIDR(s string) (Block, error) {
	prefix, width, found := strings.Cut(s, "/")
	if !found {
		return Block{}, fmt.Errorf("invalid CIDR: %q", s)
	}
	return ParseBlock(prefix, width)
}

// Contains reports whether the address lies entirely within the block.
func (b Block) Contains(a Address) bool {
	mask := net.CIDRMask(b.PrefixLen, 32)
	return a.ip.Mask(mask).Equal(b.IP)
}

// First returns the first address of the block (the network base).
func (b Block) First() Address {
	return Address{ip: b.IP}
}

// Size returns the number of addresses in the block.
func (b Block) Size() uint64 {
	return 1 << (32 - b.PrefixLen)
}

// String returns the "network/length" form, e.g. "10.0.0.0/8".
func (b Block) String() string {
	return fmt.Sprintf("%s/%d", b.IP.String(), b.PrefixLen)
}
