// =============================================================================
// internal/cli/commands.go - CLI command definitions
// =============================================================================
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/bryanCE/ipowner/internal/asnres"
	"github.com/bryanCE/ipowner/internal/dnsclient"
	"github.com/bryanCE/ipowner/internal/geo"
	"github.com/bryanCE/ipowner/internal/ipaddr"
	"github.com/bryanCE/ipowner/internal/output"
	"github.com/bryanCE/ipowner/internal/rdns"
	"github.com/bryanCE/ipowner/internal/resolve"
	"github.com/bryanCE/ipowner/internal/suffix"
	"github.com/bryanCE/ipowner/pkg/registries"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Default data-source locations, matching the Debian publicsuffix and
// geoipupdate packages.
const (
	DefaultSuffixList = "/usr/share/publicsuffix/public_suffix_list.dat"
	DefaultGeoIPDB    = "/var/lib/GeoIP/GeoLite2-City.mmdb"
)

// NewRootCommand creates the ipowner root command. Each positional
// argument is one IPv4 address, resolved sequentially.
func NewRootCommand(version string) *cobra.Command {
	var (
		geoipFlag      string
		suffixFlag     string
		nameserverFlag string
		formatFlag     string
		verboseFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "ipowner [flags] IP...",
		Short: "Resolve who owns an IP address and what it is called",
		Long: `Resolve the ownership and naming of IP addresses by combining
reserved-block classification, ASN lookups against the DNS registry
mirrors, reverse-name (PTR) resolution with a bounded neighborhood
scan, registrable-domain extraction, and geolocation.`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.New()
			logger.SetOutput(os.Stderr)
			if verboseFlag {
				logger.SetLevel(logrus.DebugLevel)
			}

			var format output.OutputFormat
			switch strings.ToLower(formatFlag) {
			case "json":
				format = output.FormatJSON
			case "table":
				format = output.FormatTable
			default:
				format = output.FormatLine
			}

			// Data-source failures are fatal: refuse to start rather
			// than silently degrade every lookup.
			tree, err := suffix.LoadFile(suffixFlag)
			if err != nil {
				return err
			}
			geoDB, err := geo.Open(geoipFlag, logger)
			if err != nil {
				return err
			}
			defer geoDB.Close()

			nameserver := nameserverFlag
			if nameserver == "" {
				nameserver = dnsclient.SystemServer()
			}
			client := dnsclient.New(nameserver, logger)

			resolver := resolve.New(
				asnres.New(client, registries.Default(), logger),
				rdns.New(client, logger),
				tree,
				geoDB,
				logger,
			)

			// One address at a time; the upstream registries are not
			// built for parallel hammering.
			var results []resolve.Result
			var failed bool
			for _, arg := range args {
				addr, err := ipaddr.Parse(arg)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					failed = true
					continue
				}
				results = append(results, resolver.Resolve(cmd.Context(), addr))
			}

			formatter := output.NewFormatter(format)
			if err := formatter.FormatResults(results, os.Stdout); err != nil {
				return err
			}
			if failed {
				return fmt.Errorf("some addresses could not be parsed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&geoipFlag, "geoip-db", DefaultGeoIPDB, "GeoLite2 City database path")
	cmd.Flags().StringVar(&suffixFlag, "suffix-list", DefaultSuffixList, "Public suffix list path")
	cmd.Flags().StringVarP(&nameserverFlag, "nameserver", "n", "", "Nameserver to query (defaults to the system resolver)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "line", "Output format (line, table, json)")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	return cmd
}
