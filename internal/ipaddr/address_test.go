package ipaddr

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Valid address", input: "203.0.113.7"},
		{name: "Loopback", input: "127.0.0.1"},
		{name: "Empty string", input: "", wantErr: true},
		{name: "Garbage", input: "not-an-ip", wantErr: true},
		{name: "Out of range octet", input: "256.1.2.3", wantErr: true},
		{name: "IPv6 rejected", input: "2001:db8::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, addr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if addr.String() != tt.input {
				t.Errorf("Expected %q, got %q", tt.input, addr.String())
			}
		})
	}
}

func TestAddress_ReverseLabels(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "10.1.2.3", want: "3.2.1.10"},
		{input: "203.0.113.7", want: "7.113.0.203"},
		{input: "8.8.8.8", want: "8.8.8.8"},
	}

	for _, tt := range tests {
		addr, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.input, err)
		}
		if got := addr.ReverseLabels(); got != tt.want {
			t.Errorf("ReverseLabels(%s) = %q, want %q", tt.input, got, tt.want)
		}
		wantName := tt.want + ".in-addr.arpa."
		if got := addr.ReverseName(); got != wantName {
			t.Errorf("ReverseName(%s) = %q, want %q", tt.input, got, wantName)
		}
	}
}

func TestAddress_Uint32RoundTrip(t *testing.T) {
	addr, err := Parse("192.0.2.130")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	back := FromUint32(addr.Uint32())
	if back.String() != "192.0.2.130" {
		t.Errorf("Round trip gave %q", back.String())
	}
	next := FromUint32(addr.Uint32() + 1)
	if next.String() != "192.0.2.131" {
		t.Errorf("Increment gave %q", next.String())
	}
}

func TestParseBlock(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		width   string
		want    string
		wantErr bool
	}{
		{name: "Registry style", prefix: "203.0.113.0", width: "24", want: "203.0.113.0/24"},
		{name: "Whitespace trimmed", prefix: " 198.51.100.0 ", width: " 22 ", want: "198.51.100.0/22"},
		{name: "Non-base address normalized", prefix: "10.1.2.3", width: "8", want: "10.0.0.0/8"},
		{name: "Bad width", prefix: "10.0.0.0", width: "nope", wantErr: true},
		{name: "Width out of range", prefix: "10.0.0.0", width: "40", wantErr: true},
		{name: "Bad prefix", prefix: "weird", width: "8", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBlock(tt.prefix, tt.width)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got %v", b)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBlock failed: %v", err)
			}
			if b.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, b.String())
			}
		})
	}
}

func TestBlock_Contains(t *testing.T) {
	b, err := ParseCIDR("172.16.0.0/12")
	if err != nil {
		t.Fatalf("ParseCIDR failed: %v", err)
	}

	tests := []struct {
		addr string
		want bool
	}{
		{addr: "172.16.0.1", want: true},
		{addr: "172.31.255.255", want: true},
		{addr: "172.32.0.0", want: false},
		{addr: "10.0.0.1", want: false},
	}

	for _, tt := range tests {
		addr, err := Parse(tt.addr)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.addr, err)
		}
		if got := b.Contains(addr); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.addr, got, tt.want)
		}
	}
}

func TestClassifyReserved(t *testing.T) {
	tests := []struct {
		addr  string
		block string
		found bool
	}{
		{addr: "10.1.2.3", block: "10.0.0.0/8", found: true},
		{addr: "127.0.0.1", block: "127.0.0.0/8", found: true},
		{addr: "169.254.33.44", block: "169.254.0.0/16", found: true},
		{addr: "172.20.0.9", block: "172.16.0.0/12", found: true},
		{addr: "192.168.1.1", block: "192.168.0.0/16", found: true},
		{addr: "0.255.0.1", block: "0.0.0.0/8", found: true},
		{addr: "8.8.8.8", found: false},
		{addr: "172.32.0.1", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			addr, err := Parse(tt.addr)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.addr, err)
			}
			block, found := ClassifyReserved(addr)
			if found != tt.found {
				t.Fatalf("ClassifyReserved(%s) found = %v, want %v", tt.addr, found, tt.found)
			}
			if found && block.String() != tt.block {
				t.Errorf("Expected block %q, got %q", tt.block, block.String())
			}
		})
	}
}
