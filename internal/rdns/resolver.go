// =============================================================================
// internal/rdns/resolver.go - Reverse name resolution with scan fallback
// =============================================================================
package rdns

import (
	"context"
	"time"

	"github.com/bryanCE/ipowner/internal/ipaddr"

	"github.com/sirupsen/logrus"
)

// DefaultScanTimeout bounds the neighborhood scan. The bound is a
// wall-clock deadline from scan start, not a query count.
const DefaultScanTimeout = 60 * time.Second

// scanPrefixLen is the containing prefix scanned instead of blocks at
// /18 or wider.
const scanPrefixLen = 24

// PTRQuerier is the piece of the DNS transport the resolver needs.
type PTRQuerier interface {
	PTR(ctx context.Context, name string) (string, bool)
}

// Result carries the resolved names. PrimaryName comes from a direct
// PTR hit; AlternateName from the CIDR-base or neighborhood-scan
// fallback and is only meaningful when PrimaryName is empty.
type Result struct {
	PrimaryName   string
	AlternateName string
}

// Resolver resolves display names for addresses via PTR lookups.
type Resolver struct {
	client      PTRQuerier
	scanTimeout time.Duration
	logger      *logrus.Logger
}

// New creates a name resolver with the default scan deadline.
func New(client PTRQuerier, logger *logrus.Logger) *Resolver {
	return NewWithScanTimeout(client, DefaultScanTimeout, logger)
}

// NewWithScanTimeout creates a name resolver with a custom scan deadline.
func NewWithScanTimeout(client PTRQuerier, scanTimeout time.Duration, logger *logrus.Logger) *Resolver {
	return &Resolver{client: client, scanTimeout: scanTimeout, logger: logger}
}

// Lookup resolves a name for the address, falling back to the CIDR base
// address and then to a time-bounded scan of the surrounding block.
// Misses leave both fields empty; Lookup never fails.
func (r *Resolver) Lookup(ctx context.Context, addr ipaddr.Address, block *ipaddr.Block) Result {
	if name, ok := r.client.PTR(ctx, addr.ReverseName()); ok {
		return Result{PrimaryName: name}
	}
	if block == nil {
		return Result{}
	}
	if name, ok := r.client.PTR(ctx, block.First().ReverseName()); ok {
		return Result{AlternateName: name}
	}
	return Result{AlternateName: r.scan(ctx, addr, *block)}
}

// scan visits neighboring addresses in increasing order from the scanned
// block's first address and returns the first PTR answer found. Narrow
// blocks (prefix longer than /18) are scanned whole; for wider blocks
// only the /24 containing the address is scanned.
func (r *Resolver) scan(ctx context.Context, addr ipaddr.Address, block ipaddr.Block) string {
	scanBlock := block
	if block.PrefixLen <= 18 {
		narrowed, err := ipaddr.NewBlock(addr.IP(), scanPrefixLen)
		if err != nil {
			return ""
		}
		scanBlock = narrowed
	}

	ctx, cancel := context.WithTimeout(ctx, r.scanTimeout)
	defer cancel()

	r.logger.Debugf("Scanning %s for a neighbor of %s", scanBlock, addr)

	first := scanBlock.First().Uint32()
	for offset := uint64(0); offset < scanBlock.Size(); offset++ {
		if ctx.Err() != nil {
			r.logger.Debugf("Scan of %s stopped: %v", scanBlock, ctx.Err())
			return ""
		}
		candidate := ipaddr.FromUint32(first + uint32(offset))
		if candidate.Uint32() == addr.Uint32() {
			continue // already missed in the direct lookup
		}
		if name, ok := r.client.PTR(ctx, candidate.ReverseName()); ok {
			return name
		}
	}
	return ""
}
