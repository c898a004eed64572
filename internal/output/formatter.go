// =============================================================================
// internal/output/formatter.go - Resolution result formatting
// =============================================================================
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bryanCE/ipowner/internal/resolve"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatLine  OutputFormat = "line"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// Placeholder stands in for every absent field in line and table output.
const Placeholder = "-"

// Formatter renders resolution results in the selected format.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new formatter with the specified format
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatResults writes all results to the writer.
func (f *Formatter) FormatResults(results []resolve.Result, writer io.Writer) error {
	switch f.format {
	case FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case FormatTable:
		return f.formatResultsTable(results, writer)
	default:
		for i := range results {
			if err := f.formatResultLine(&results[i], writer); err != nil {
				return err
			}
		}
		return nil
	}
}

// formatResultLine emits the one-line-per-address form:
// IP, country:ASN:CIDR, country code, domain, lat/lon, host, alt, location.
func (f *Formatter) formatResultLine(result *resolve.Result, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, "%s  %s:%s:%s  %s  %s  %s  %s  %s  %s\n",
		result.IP,
		orPlaceholder(result.ASN.CountryCode),
		orPlaceholder(result.ASN.Number),
		orPlaceholder(result.ASN.CIDR),
		orPlaceholder(result.Geo.CountryCode),
		orPlaceholder(result.Name.Domain),
		coordinates(result),
		orPlaceholder(result.Name.Host),
		orPlaceholder(result.Name.Alt),
		location(result),
	)
	return err
}

func (f *Formatter) formatResultsTable(results []resolve.Result, writer io.Writer) error {
	table := NewTable("IP", "ASN", "CC", "Domain", "Lat/Lon", "Host", "Alt", "Location")
	for i := range results {
		result := &results[i]
		asn := fmt.Sprintf("%s:%s:%s",
			orPlaceholder(result.ASN.CountryCode),
			orPlaceholder(result.ASN.Number),
			orPlaceholder(result.ASN.CIDR))
		table.AddRow(
			result.IP,
			asn,
			orPlaceholder(result.Geo.CountryCode),
			orPlaceholder(result.Name.Domain),
			coordinates(result),
			orPlaceholder(result.Name.Host),
			orPlaceholder(result.Name.Alt),
			location(result),
		)
	}
	return table.Render(writer)
}

// coordinates renders latitude/longitude in 4-decimal fixed point, or
// the placeholder when no geolocation was found.
func coordinates(result *resolve.Result) string {
	if result.Geo.IsZero() {
		return Placeholder
	}
	return fmt.Sprintf("%.4f,%.4f", result.Geo.Latitude, result.Geo.Longitude)
}

// location renders "country, region, city", dropping absent parts.
func location(result *resolve.Result) string {
	var parts []string
	for _, part := range []string{result.Geo.CountryName, result.Geo.Region, result.Geo.City} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, ", ")
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
