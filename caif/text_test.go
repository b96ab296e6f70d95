package caif

import "testing"

func TestParseAddress_RoundTrip(t *testing.T) {
	addrs := []Address{
		ATAddress{Type: AtTypePlain},
		ATAddress{Type: 9},
		UtilAddress{Service: "modem_fs"},
		UtilAddress{Service: "ns:svc"},
		DatagramConnID(4294967295),
		DatagramPDP(5),
		DatagramAddress{Loop: true, Kind: DatagramNSAPI, NSAPI: 1},
		RFMAddress{ConnectionID: 42, Volume: "disk0"},
		RFMAddress{ConnectionID: 0, Volume: "a:b"},
	}
	for _, addr := range addrs {
		s := addr.String()
		got, err := ParseAddress(s)
		if err != nil {
			t.Fatalf("ParseAddress(%q): %v", s, err)
		}
		if got != addr {
			t.Fatalf("%q: got %#v want %#v", s, got, addr)
		}
	}
}

func TestParseAddress_Plain(t *testing.T) {
	got, err := ParseAddress("at:2")
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	if got.(ATAddress).Type != AtTypePlain {
		t.Fatalf("at:2 must be the plain endpoint, got %#v", got)
	}
}

func TestParseAddress_Errors(t *testing.T) {
	cases := []struct {
		in   string
		rule string
	}{
		{"", RuleTextSyntax},
		{"noscheme", RuleTextSyntax},
		{"tcp:foo", RuleTextSyntax},
		{"at:many", RuleTextNumber},
		{"at:256", RuleTextNumber},
		{"dgm:7", RuleTextSyntax},
		{"dgm:flow:7", RuleTextSyntax},
		{"dgm:connid:abc", RuleTextNumber},
		{"dgm:nsapi:300", RuleTextNumber},
		{"rfm:42", RuleTextSyntax},
		{"rfm:x:vol", RuleTextNumber},
	}
	for _, tc := range cases {
		_, err := ParseAddress(tc.in)
		if RuleID(err) != tc.rule {
			t.Fatalf("%q: expected %s, got %v", tc.in, tc.rule, err)
		}
	}
}
