package caif

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestValidateOption_LinkSelect(t *testing.T) {
	for _, v := range []uint32{0, 1} {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, v)
		if err := ValidateOption(OptLinkSelect, b); err != nil {
			t.Fatalf("value %d: unexpected error %v", v, err)
		}
	}
	for _, v := range []uint32{2, 3, 127, 0xFFFFFFFF} {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, v)
		if err := ValidateOption(OptLinkSelect, b); RuleID(err) != RuleInvalidLinkSelector {
			t.Fatalf("value %d: expected %s, got %v", v, RuleInvalidLinkSelector, err)
		}
	}
}

func TestValidateOption_LinkSelect_WrongWidth(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 8} {
		if err := ValidateOption(OptLinkSelect, make([]byte, n)); RuleID(err) != RuleLengthMismatch {
			t.Fatalf("%d bytes: expected %s, got %v", n, RuleLengthMismatch, err)
		}
	}
}

func TestValidateOption_Params(t *testing.T) {
	for _, opt := range []SocketOpt{OptReqParam, OptRspParam} {
		if err := ValidateOption(opt, nil); err != nil {
			t.Fatalf("%s empty: %v", opt, err)
		}
		if err := ValidateOption(opt, make([]byte, MaxParamSize)); err != nil {
			t.Fatalf("%s 256 bytes: %v", opt, err)
		}
		if err := ValidateOption(opt, make([]byte, MaxParamSize+1)); RuleID(err) != RuleParamTooLong {
			t.Fatalf("%s 257 bytes: expected %s, got %v", opt, RuleParamTooLong, err)
		}
	}
}

func TestValidateOption_Unknown(t *testing.T) {
	if err := ValidateOption(SocketOpt(1), nil); RuleID(err) != RuleUnknownOption {
		t.Fatalf("expected %s, got %v", RuleUnknownOption, err)
	}
}

func TestLinkSelect_RoundTrip(t *testing.T) {
	for _, s := range []LinkSelector{LinkHighBandwidth, LinkLowLatency} {
		b := EncodeLinkSelect(s)
		if !bytes.Equal(b[1:], []byte{0, 0, 0}) {
			t.Fatalf("%s: high bytes must be zero: % x", s, b)
		}
		got, err := DecodeLinkSelect(b)
		if err != nil {
			t.Fatalf("%s: DecodeLinkSelect: %v", s, err)
		}
		if got != s {
			t.Fatalf("round trip mismatch: got %s want %s", got, s)
		}
	}
}
