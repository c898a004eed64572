// =============================================================================
// internal/resolve/resolver.go - Per-address resolution orchestration
// =============================================================================
package resolve

import (
	"context"
	"net"
	"strings"

	"github.com/bryanCE/ipowner/internal/asnres"
	"github.com/bryanCE/ipowner/internal/geo"
	"github.com/bryanCE/ipowner/internal/ipaddr"
	"github.com/bryanCE/ipowner/internal/rdns"
	"github.com/bryanCE/ipowner/internal/suffix"

	"github.com/sirupsen/logrus"
)

// Sentinel values reported for addresses inside reserved blocks.
const (
	ReservedASN     = "RESERVED"
	ReservedCountry = "--"
)

// unknownDomain is the placeholder keeping the domain field non-empty
// when neither a name nor an ASN was resolved.
const unknownDomain = "unknown"

// ASNLookup resolves ASN records for addresses.
type ASNLookup interface {
	Lookup(ctx context.Context, addr ipaddr.Address) asnres.Record
}

// NameLookup resolves display names for addresses.
type NameLookup interface {
	Lookup(ctx context.Context, addr ipaddr.Address, block *ipaddr.Block) rdns.Result
}

// GeoLookup returns geolocation for addresses, the zero Record on miss.
type GeoLookup interface {
	Lookup(ip net.IP) geo.Record
}

// ASNInfo is the ASN portion of a resolution result. Absent fields are
// empty strings.
type ASNInfo struct {
	CIDR        string `json:"cidr"`
	Number      string `json:"number"`
	CountryCode string `json:"country_code"`
}

// NameInfo is the naming portion of a resolution result. Domain and
// Host are always non-empty; Alt is empty unless the name came from a
// fallback lookup.
type NameInfo struct {
	Domain string `json:"domain"`
	Host   string `json:"host"`
	Alt    string `json:"alt"`
}

// Result is the final merged record for one queried address. It is
// built once and never mutated afterwards.
type Result struct {
	IP   string     `json:"ip"`
	Geo  geo.Record `json:"geo"`
	ASN  ASNInfo    `json:"asn"`
	Name NameInfo   `json:"name"`
}

// Resolver sequences the reserved-block classifier, the ASN and name
// resolvers, the domain-suffix matcher, and the geolocation merge.
type Resolver struct {
	asn    ASNLookup
	names  NameLookup
	tree   *suffix.Node
	geo    GeoLookup
	logger *logrus.Logger
}

// New creates an orchestrating resolver. All collaborators are
// read-only after construction and may be shared.
func New(asn ASNLookup, names NameLookup, tree *suffix.Node, geoDB GeoLookup, logger *logrus.Logger) *Resolver {
	return &Resolver{asn: asn, names: names, tree: tree, geo: geoDB, logger: logger}
}

// Resolve builds the merged record for one address. Addresses inside a
// reserved block short-circuit: no DNS queries are issued for them.
func (r *Resolver) Resolve(ctx context.Context, addr ipaddr.Address) Result {
	result := Result{IP: addr.String()}

	if block, reserved := ipaddr.ClassifyReserved(addr); reserved {
		r.logger.Debugf("%s is inside reserved block %s", addr, block)
		result.ASN = ASNInfo{
			CIDR:        block.String(),
			Number:      ReservedASN,
			CountryCode: ReservedCountry,
		}
		result.Name = NameInfo{
			Domain: block.String(),
			Host:   addr.String(),
		}
		result.Geo = r.geo.Lookup(addr.IP())
		return result
	}

	asnRec := r.asn.Lookup(ctx, addr)
	result.ASN = ASNInfo{
		Number:      asnRec.Number,
		CountryCode: asnRec.CountryCode,
	}
	if asnRec.CIDR != nil {
		result.ASN.CIDR = asnRec.CIDR.String()
	}

	names := r.names.Lookup(ctx, addr, asnRec.CIDR)
	result.Name = r.mergeNames(addr, asnRec, names)
	result.Geo = r.geo.Lookup(addr.IP())
	return result
}

// mergeNames applies the fallback policy: the domain derives from the
// primary name, else the alternate name, else the ASN number, else a
// placeholder; the host falls back to the address literal.
func (r *Resolver) mergeNames(addr ipaddr.Address, asnRec asnres.Record, names rdns.Result) NameInfo {
	info := NameInfo{
		Host: names.PrimaryName,
		Alt:  names.AlternateName,
	}

	switch {
	case names.PrimaryName != "":
		info.Domain = r.tree.RegistrableDomain(strings.ToLower(names.PrimaryName))
	case names.AlternateName != "":
		info.Domain = r.tree.RegistrableDomain(strings.ToLower(names.AlternateName))
	}
	if info.Domain == "" && asnRec.Number != "" {
		info.Domain = "#AS" + asnRec.Number
	}
	if info.Domain == "" {
		info.Domain = unknownDomain
	}
	if info.Host == "" {
		info.Host = addr.String()
	}
	return info
}
