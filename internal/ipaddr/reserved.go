// =============================================================================
// internal/ipaddr/reserved.go - IANA reserved block classification
// =============================================================================
package ipaddr

import "net"

// ReservedBlocks lists the IANA-reserved prefixes recognized by the
// classifier. Match order follows list order.
var ReservedBlocks = []Block{
	mustBlock("0.0.0.0", 8),
	mustBlock("10.0.0.0", 8),
	mustBlock("127.0.0.0", 8),
	mustBlock("169.254.0.0", 16),
	mustBlock("172.16.0.0", 12),
	mustBlock("192.168.0.0", 16),
}

// ClassifyReserved returns the first reserved block containing the
// address, if any.
func ClassifyReserved(a Address) (Block, bool) {
	for _, b := range ReservedBlocks {
		if b.Contains(a) {
			return b, true
		}
	}
	return Block{}, false
}

func mustBlock(prefix string, prefixLen int) Block {
	b, err := NewBlock(net.ParseIP(prefix), prefixLen)
	if err != nil {
		panic(err)
	}
	return b
}
