// =============================================================================
// internal/dnsclient/client.go - DNS transport for registry and PTR queries
// =============================================================================
package dnsclient

import (
	"context"
	"strings"
	"time"

	"github.com/bryanCE/ipowner/pkg/registries"

	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"
)

// QueryTimeout is the fixed per-query timeout, applied to both the UDP
// and TCP transports.
const QueryTimeout = 30 * time.Second

// Client issues TXT and PTR queries against a single nameserver. Lookup
// misses (timeouts, NXDOMAIN, empty answers) are reported as "not
// found", never as errors.
type Client struct {
	udp    *dns.Client
	tcp    *dns.Client
	server string
	logger *logrus.Logger
}

// New creates a client querying the given nameserver ("ip" or "ip:port").
func New(server string, logger *logrus.Logger) *Client {
	if !strings.Contains(server, ":") {
		server += ":53"
	}
	return &Client{
		udp:    &dns.Client{Timeout: QueryTimeout},
		tcp:    &dns.Client{Net: "tcp", Timeout: QueryTimeout},
		server: server,
		logger: logger,
	}
}

// SystemServer returns the first nameserver from the system resolver
// configuration, or a public fallback if it cannot be read.
func SystemServer() string {
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err == nil && len(conf.Servers) > 0 {
		return conf.Servers[0]
	}
	return registries.FallbackResolver().IP.String()
}

// TXTFields queries a TXT record and returns the text fields of the
// first answer. The second return value is false on any miss.
func (c *Client) TXTFields(ctx context.Context, name string) ([]string, bool) {
	response, ok := c.exchange(ctx, name, dns.TypeTXT)
	if !ok {
		return nil, false
	}
	for _, answer := range response.Answer {
		if txt, isTXT := answer.(*dns.TXT); isTXT {
			return txt.Txt, true
		}
	}
	return nil, false
}

// PTR queries a PTR record for a reverse-mapping name and returns the
// first answer's target with the trailing dot removed.
func (c *Client) PTR(ctx context.Context, name string) (string, bool) {
	response, ok := c.exchange(ctx, name, dns.TypePTR)
	if !ok {
		return "", false
	}
	for _, answer := range response.Answer {
		if ptr, isPTR := answer.(*dns.PTR); isPTR {
			return strings.TrimSuffix(ptr.Ptr, "."), true
		}
	}
	return "", false
}

// exchange performs one query over UDP, retrying over TCP when the
// response is truncated.
func (c *Client) exchange(ctx context.Context, name string, qtype uint16) (*dns.Msg, bool) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true

	response, _, err := c.udp.ExchangeContext(ctx, msg, c.server)
	if err == nil && response != nil && response.Truncated {
		response, _, err = c.tcp.ExchangeContext(ctx, msg, c.server)
	}
	if err != nil {
		c.logger.Debugf("DNS query %s %s failed: %v", dns.TypeToString[qtype], name, err)
		return nil, false
	}
	if response == nil || response.Rcode != dns.RcodeSuccess || len(response.Answer) == 0 {
		return nil, false
	}
	return response, true
}
