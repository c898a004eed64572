// =============================================================================
// internal/asnres/resolver.go - ASN resolution via DNS registry mirrors
// =============================================================================
package asnres

import (
	"context"
	"strings"

	"github.com/bryanCE/ipowner/internal/ipaddr"
	"github.com/bryanCE/ipowner/pkg/registries"

	"github.com/sirupsen/logrus"
)

// TXTQuerier is the piece of the DNS transport the resolver needs.
type TXTQuerier interface {
	TXTFields(ctx context.Context, name string) ([]string, bool)
}

// Record is the outcome of an ASN lookup. Every field is independently
// optional: an empty Number or CountryCode and a nil CIDR mean the
// registries supplied no data for that field.
type Record struct {
	Number      string
	CIDR        *ipaddr.Block
	CountryCode string
}

// Resolver maps addresses to ASN records through the DNS registry
// mirrors, trying registry A first and registry B as fallback.
type Resolver struct {
	client  TXTQuerier
	catalog registries.Catalog
	logger  *logrus.Logger
}

// New creates an ASN resolver using the given transport and registry
// catalog.
func New(client TXTQuerier, catalog registries.Catalog, logger *logrus.Logger) *Resolver {
	return &Resolver{client: client, catalog: catalog, logger: logger}
}

// Lookup resolves the ASN record for an address. Registry misses and
// malformed answers leave the corresponding fields absent; Lookup never
// fails.
func (r *Resolver) Lookup(ctx context.Context, addr ipaddr.Address) Record {
	reversed := addr.ReverseLabels()

	rec := r.lookupOriginA(ctx, reversed)
	if rec.Number == "" {
		rec = r.lookupOriginB(ctx, reversed)
	}
	if rec.Number != "" {
		rec.CountryCode = r.lookupCountry(ctx, rec.Number)
	}
	return rec
}

// lookupOriginA queries registry A, which answers with exactly three
// text fields: asn, prefix, width.
func (r *Resolver) lookupOriginA(ctx context.Context, reversed string) Record {
	name := reversed + "." + r.catalog.OriginZoneA
	fields, ok := r.client.TXTFields(ctx, name)
	if !ok || len(fields) != 3 {
		return Record{}
	}

	rec := Record{Number: strings.TrimSpace(fields[0])}
	if block, err := ipaddr.ParseBlock(fields[1], fields[2]); err == nil {
		rec.CIDR = &block
	} else {
		r.logger.Debugf("Registry A returned unusable prefix for %s: %v", name, err)
	}
	return rec
}

// lookupOriginB queries registry B, which answers with one
// pipe-delimited text field: "ASN | PREFIX/WIDTH | ...". Only the first
// two fields are used.
func (r *Resolver) lookupOriginB(ctx context.Context, reversed string) Record {
	name := reversed + "." + r.catalog.OriginZoneB
	fields, ok := r.client.TXTFields(ctx, name)
	if !ok || len(fields) != 1 {
		return Record{}
	}

	parts := strings.Split(fields[0], "|")
	if len(parts) < 2 {
		return Record{}
	}

	rec := Record{Number: strings.TrimSpace(parts[0])}
	if block, err := ipaddr.ParseCIDR(strings.TrimSpace(parts[1])); err == nil {
		rec.CIDR = &block
	} else {
		r.logger.Debugf("Registry B returned unusable prefix for %s: %v", name, err)
	}
	return rec
}

// lookupCountry queries registry B's AS zone for the owning country:
// "ASN | CC | ...".
func (r *Resolver) lookupCountry(ctx context.Context, asn string) string {
	name := "as" + asn + "." + r.catalog.ASZone
	fields, ok := r.client.TXTFields(ctx, name)
	if !ok || len(fields) != 1 {
		return ""
	}

	parts := strings.Split(fields[0], "|")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
