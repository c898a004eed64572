package registries

import "net"

// Catalog names the DNS zones of the ASN-mapping registries. Query
// names are built by prepending the reversed address labels (or the
// "as<number>" label) to the zone.
type Catalog struct {
	// OriginZoneA answers <reversed-ip>.<zone> with three text fields:
	// asn, prefix, width.
	OriginZoneA string
	// OriginZoneB answers <reversed-ip>.<zone> with one pipe-delimited
	// text field: "ASN | PREFIX/WIDTH | ...".
	OriginZoneB string
	// ASZone answers as<asn>.<zone> with one pipe-delimited text field:
	// "ASN | CC | ...".
	ASZone string
}

// Default returns the catalog of the public RouteViews and Team Cymru
// DNS registry mirrors.
func Default() Catalog {
	return Catalog{
		OriginZoneA: "asn.routeviews.org",
		OriginZoneB: "origin.asn.cymru.com",
		ASZone:      "asn.cymru.com",
	}
}

// Resolver represents a public recursive DNS server.
type Resolver struct {
	Name     string `json:"name"`
	IP       net.IP `json:"ip"`
	Port     int    `json:"port"`
	Provider string `json:"provider"`
}

// PublicResolvers provides well-known public DNS servers used when the
// system resolver configuration cannot be read.
var PublicResolvers = map[string][]Resolver{
	"google": {
		{Name: "google-dns1", IP: net.ParseIP("8.8.8.8"), Port: 53, Provider: "Google"},
		{Name: "google-dns2", IP: net.ParseIP("8.8.4.4"), Port: 53, Provider: "Google"},
	},
	"cloudflare": {
		{Name: "cloudflare-dns1", IP: net.ParseIP("1.1.1.1"), Port: 53, Provider: "Cloudflare"},
		{Name: "cloudflare-dns2", IP: net.ParseIP("1.0.0.1"), Port: 53, Provider: "Cloudflare"},
	},
	"quad9": {
		{Name: "quad9-dns1", IP: net.ParseIP("9.9.9.9"), Port: 53, Provider: "Quad9"},
		{Name: "quad9-dns2", IP: net.ParseIP("149.112.112.112"), Port: 53, Provider: "Quad9"},
	},
}

// FallbackResolver returns the resolver used when no nameserver is
// configured and none can be read from the system.
func FallbackResolver() Resolver {
	return PublicResolvers["google"][0]
}
