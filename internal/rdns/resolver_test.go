package rdns

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bryanCE/ipowner/internal/ipaddr"

	"github.com/sirupsen/logrus"
)

// fakePTR answers PTR queries from a fixed map and records the order of
// names queried. An optional per-query delay simulates slow upstreams.
type fakePTR struct {
	answers map[string]string
	delay   time.Duration
	queried []string
}

func (f *fakePTR) PTR(ctx context.Context, name string) (string, bool) {
	f.queried = append(f.queried, name)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", false
		}
	}
	target, ok := f.answers[name]
	return target, ok
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func mustAddr(t *testing.T, s string) ipaddr.Address {
	t.Helper()
	addr, err := ipaddr.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return addr
}

func mustBlock(t *testing.T, s string) *ipaddr.Block {
	t.Helper()
	block, err := ipaddr.ParseCIDR(s)
	if err != nil {
		t.Fatalf("ParseCIDR(%q) failed: %v", s, err)
	}
	return &block
}

func TestResolver_Lookup_DirectPTR(t *testing.T) {
	client := &fakePTR{answers: map[string]string{
		"7.113.0.203.in-addr.arpa.": "host7.example.com",
		"0.113.0.203.in-addr.arpa.": "base.example.com",
	}}
	resolver := New(client, testLogger())

	result := resolver.Lookup(context.Background(), mustAddr(t, "203.0.113.7"), mustBlock(t, "203.0.113.0/24"))

	if result.PrimaryName != "host7.example.com" {
		t.Errorf("PrimaryName = %q, want %q", result.PrimaryName, "host7.example.com")
	}
	if result.AlternateName != "" {
		t.Errorf("AlternateName = %q, want empty: direct hit must short-circuit fallback", result.AlternateName)
	}
	if len(client.queried) != 1 {
		t.Errorf("Expected exactly one query, got %v", client.queried)
	}
}

func TestResolver_Lookup_CIDRBaseFallback(t *testing.T) {
	client := &fakePTR{answers: map[string]string{
		"0.113.0.203.in-addr.arpa.": "base.example.com",
	}}
	resolver := New(client, testLogger())

	result := resolver.Lookup(context.Background(), mustAddr(t, "203.0.113.7"), mustBlock(t, "203.0.113.0/24"))

	if result.PrimaryName != "" {
		t.Errorf("PrimaryName = %q, want empty", result.PrimaryName)
	}
	if result.AlternateName != "base.example.com" {
		t.Errorf("AlternateName = %q, want %q", result.AlternateName, "base.example.com")
	}
}

func TestResolver_Lookup_NoBlock(t *testing.T) {
	client := &fakePTR{}
	resolver := New(client, testLogger())

	result := resolver.Lookup(context.Background(), mustAddr(t, "203.0.113.7"), nil)

	if result.PrimaryName != "" || result.AlternateName != "" {
		t.Errorf("Expected empty result, got %+v", result)
	}
	if len(client.queried) != 1 {
		t.Errorf("Expected only the direct query, got %v", client.queried)
	}
}

func TestResolver_Lookup_ScanFindsNeighbor(t *testing.T) {
	// Narrow block (/28, prefix > /18): the whole block is scanned in
	// increasing order from its first address.
	client := &fakePTR{answers: map[string]string{
		"5.113.0.203.in-addr.arpa.": "neighbor5.example.com",
		"9.113.0.203.in-addr.arpa.": "neighbor9.example.com",
	}}
	resolver := New(client, testLogger())

	result := resolver.Lookup(context.Background(), mustAddr(t, "203.0.113.7"), mustBlock(t, "203.0.113.0/28"))

	if result.AlternateName != "neighbor5.example.com" {
		t.Errorf("AlternateName = %q, want first neighbor in address order", result.AlternateName)
	}
	last := client.queried[len(client.queried)-1]
	if last != "5.113.0.203.in-addr.arpa." {
		t.Errorf("Scan did not stop at the first answer: %v", client.queried)
	}
	for _, name := range client.queried {
		if name == "9.113.0.203.in-addr.arpa." {
			t.Errorf("Scan visited .9 after .5 answered")
		}
	}
}

func TestResolver_Lookup_WideBlockScansSlash24(t *testing.T) {
	client := &fakePTR{answers: map[string]string{
		"1.42.16.172.in-addr.arpa.": "near.example.com",
	}}
	resolver := New(client, testLogger())

	// /12 block, but the address sits in 172.16.42.0/24: the scan must
	// stay inside that /24 rather than walk a million addresses.
	result := resolver.Lookup(context.Background(), mustAddr(t, "172.16.42.200"), mustBlock(t, "172.16.0.0/12"))

	if result.AlternateName != "near.example.com" {
		t.Errorf("AlternateName = %q, want %q", result.AlternateName, "near.example.com")
	}
	// Skip the direct and CIDR-base queries; everything after must stay
	// inside 172.16.42.0/24.
	for _, name := range client.queried[2:] {
		if !strings.HasSuffix(name, ".42.16.172.in-addr.arpa.") {
			t.Errorf("Scan left the containing /24: queried %q", name)
		}
	}
}

func TestResolver_Lookup_ScanDeadline(t *testing.T) {
	// Silent upstream with a per-query delay; the scan must stop at its
	// deadline, not after visiting every candidate.
	client := &fakePTR{delay: 20 * time.Millisecond}
	resolver := NewWithScanTimeout(client, 50*time.Millisecond, testLogger())

	start := time.Now()
	result := resolver.Lookup(context.Background(), mustAddr(t, "203.0.113.7"), mustBlock(t, "203.0.113.0/20"))
	elapsed := time.Since(start)

	if result.AlternateName != "" {
		t.Errorf("AlternateName = %q, want empty", result.AlternateName)
	}
	if elapsed > 2*time.Second {
		t.Errorf("Scan ran %v, deadline not honored", elapsed)
	}
	if len(client.queried) >= 4096 {
		t.Errorf("Scan visited %d candidates, deadline not honored", len(client.queried))
	}
}
