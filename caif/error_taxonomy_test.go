package caif

import (
	"errors"
	"strings"
	"testing"
)

func TestDecode_ErrorTaxonomy_UnknownProtocolType(t *testing.T) {
	_, err := Decode(ProtocolType(200), nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *caif.Error, got %T", err)
	}
	if e.Kind != KindAddress {
		t.Fatalf("expected KindAddress, got %s", e.Kind)
	}
	if e.RuleID != RuleUnknownProtocolType {
		t.Fatalf("expected RuleID %s, got %s", RuleUnknownProtocolType, e.RuleID)
	}
}

func TestEncode_ErrorTaxonomy_FieldTooLongRuleID(t *testing.T) {
	_, err := Encode(UtilAddress{Service: strings.Repeat("q", 32)})
	if err == nil {
		t.Fatalf("expected error")
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *caif.Error, got %T", err)
	}
	if e.Kind != KindAddress || e.RuleID != RuleFieldTooLong {
		t.Fatalf("expected %s/%s, got %s/%s", KindAddress, RuleFieldTooLong, e.Kind, e.RuleID)
	}
}

func TestValidateOption_ErrorTaxonomy_OptionKind(t *testing.T) {
	err := ValidateOption(OptLinkSelect, []byte{9, 0, 0, 0})
	if !IsKind(err, KindOption) {
		t.Fatalf("expected KindOption, got %v", err)
	}
	if RuleID(err) != RuleInvalidLinkSelector {
		t.Fatalf("expected RuleID %s, got %s", RuleInvalidLinkSelector, RuleID(err))
	}
}

func TestRuleID_NonStructuredError(t *testing.T) {
	if got := RuleID(errors.New("plain")); got != "" {
		t.Fatalf("expected empty RuleID, got %q", got)
	}
	if IsKind(errors.New("plain"), KindAddress) {
		t.Fatalf("plain error must not match a Kind")
	}
}
