package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCapture(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_EncodeDecodeRoundTrip(t *testing.T) {
	code, out, errOut := runCapture(t, "encode", "rfm:42:disk0")
	if code != 0 {
		t.Fatalf("encode exited %d: %s", code, errOut)
	}
	hexRec := strings.TrimSpace(out)
	if hexRec != "042a0000006469736b300000000000000000000000" {
		t.Fatalf("record hex: %s", hexRec)
	}

	code, out, errOut = runCapture(t, "decode", hexRec)
	if code != 0 {
		t.Fatalf("decode exited %d: %s", code, errOut)
	}
	if strings.TrimSpace(out) != "rfm:42:disk0" {
		t.Fatalf("decode output: %q", out)
	}
}

func TestRun_EncodeSockaddr(t *testing.T) {
	code, out, errOut := runCapture(t, "encode", "--sockaddr", "at:plain")
	if code != 0 {
		t.Fatalf("exited %d: %s", code, errOut)
	}
	got := strings.TrimSpace(out)
	// AF_CAIF=37 little-endian, two alignment bytes, AT arm, zero fill to 24.
	want := "2500" + "0000" + "02" + strings.Repeat("00", 19)
	if got != want {
		t.Fatalf("sockaddr hex:\n got %s\nwant %s", got, want)
	}
}

func TestRun_DecodeNSAPIInterpretation(t *testing.T) {
	code, out, errOut := runCapture(t, "decode", "--nsapi", "0105000000")
	if code != 0 {
		t.Fatalf("exited %d: %s", code, errOut)
	}
	if strings.TrimSpace(out) != "dgm:nsapi:5" {
		t.Fatalf("output: %q", out)
	}
}

func TestRun_ValidateStrict(t *testing.T) {
	if code, _, _ := runCapture(t, "validate", "at:plain"); code != 0 {
		t.Fatalf("at:plain should validate")
	}
	code, _, errOut := runCapture(t, "validate", "at:7")
	if code != 1 {
		t.Fatalf("at:7 should fail strict validation")
	}
	if !strings.Contains(errOut, "CAIF-VAL-101") {
		t.Fatalf("expected rule id in output: %s", errOut)
	}
}

func TestRun_Option(t *testing.T) {
	if code, _, _ := runCapture(t, "option", "--opt", "link-select", "--value-hex", "01000000"); code != 0 {
		t.Fatalf("low-latency selector should pass")
	}
	code, _, errOut := runCapture(t, "option", "--opt", "link-select", "--value-hex", "02000000")
	if code != 1 {
		t.Fatalf("selector 2 should fail")
	}
	if !strings.Contains(errOut, "CAIF-OPT-001") {
		t.Fatalf("expected rule id in output: %s", errOut)
	}
	if code, _, _ := runCapture(t, "option", "--opt", "req-param", "--value-hex", strings.Repeat("00", 257)); code != 1 {
		t.Fatalf("257-byte request parameter should fail")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	if code, _, _ := runCapture(t, "bogus"); code != 2 {
		t.Fatalf("unknown command should exit 2")
	}
}
