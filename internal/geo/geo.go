// =============================================================================
// internal/geo/geo.go - GeoLite2 City database wrapper
// =============================================================================
package geo

import (
	"fmt"
	"net"

	geoip2 "github.com/oschwald/geoip2-golang"
	"github.com/sirupsen/logrus"
)

// Record holds the geolocation fields merged into a resolution result.
// The zero value is the canonical "no geolocation found".
type Record struct {
	CountryCode   string  `json:"country_code"`
	CountryName   string  `json:"country_name"`
	ContinentCode string  `json:"continent_code"`
	Region        string  `json:"region"`
	City          string  `json:"city"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// IsZero reports whether no geolocation was found.
func (r Record) IsZero() bool {
	return r == Record{}
}

// DB wraps a GeoLite2 City database reader.
type DB struct {
	reader *geoip2.Reader
	logger *logrus.Logger
}

// Open opens the City database at path. A missing or corrupt database
// is an error; callers treat it as fatal at startup.
func Open(path string, logger *logrus.Logger) (*DB, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open geolocation database: %w", err)
	}
	return &DB{reader: reader, logger: logger}, nil
}

// Lookup returns the geolocation record for an IP, or the zero Record
// when the database has no entry. Lookup never fails per-address.
func (d *DB) Lookup(ip net.IP) Record {
	city, err := d.reader.City(ip)
	if err != nil {
		d.logger.Debugf("Geolocation lookup for %s failed: %v", ip, err)
		return Record{}
	}

	rec := Record{
		CountryCode:   city.Country.IsoCode,
		CountryName:   city.Country.Names["en"],
		ContinentCode: city.Continent.Code,
		City:          city.City.Names["en"],
		Latitude:      city.Location.Latitude,
		Longitude:     city.Location.Longitude,
	}
	if len(city.Subdivisions) > 0 {
		rec.Region = city.Subdivisions[0].Names["en"]
	}
	return rec
}

// Close closes the underlying database reader.
func (d *DB) Close() error {
	return d.reader.Close()
}
