package model

import (
	"encoding/json"
	"testing"

	"github.com/modemlink/caif/caif"
)

func TestSnapshot_AddressRecord_JSONShape(t *testing.T) {
	rec := FromAddress(caif.RFMAddress{ConnectionID: 42, Volume: "disk0"})

	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent failed: %v", err)
	}

	const want = "{\n" +
		"  \"protocol\": \"rfm\",\n" +
		"  \"text\": \"rfm:42:disk0\",\n" +
		"  \"rfm\": {\n" +
		"    \"connectionId\": 42,\n" +
		"    \"volume\": \"disk0\"\n" +
		"  }\n" +
		"}"

	if string(b) != want {
		t.Fatalf("snapshot mismatch:\n%s", string(b))
	}
}

func TestSnapshot_DatagramRecord_ActiveArmOnly(t *testing.T) {
	rec := FromAddress(caif.DatagramPDP(5))
	if rec.Datagram == nil {
		t.Fatalf("expected datagram projection")
	}
	if rec.Datagram.ConnectionID != nil {
		t.Fatalf("inactive arm must be omitted")
	}
	if rec.Datagram.NSAPI == nil || *rec.Datagram.NSAPI != 5 {
		t.Fatalf("active arm missing: %+v", rec.Datagram)
	}

	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	const want = `{"protocol":"dgm","text":"dgm:nsapi:5","dgm":{"kind":"nsapi","nsapi":5}}`
	if string(b) != want {
		t.Fatalf("snapshot mismatch:\n%s", b)
	}
}

func TestCheckOption_Projection(t *testing.T) {
	chk := CheckOption(caif.OptLinkSelect, []byte{9, 0, 0, 0})
	if chk.Valid {
		t.Fatalf("selector 9 must be invalid")
	}
	if chk.RuleID != caif.RuleInvalidLinkSelector {
		t.Fatalf("unexpected rule id: %s", chk.RuleID)
	}
	if chk.Option != "link-select" || chk.Size != 4 {
		t.Fatalf("projection fields: %+v", chk)
	}

	ok := CheckOption(caif.OptReqParam, make([]byte, 256))
	if !ok.Valid || ok.RuleID != "" {
		t.Fatalf("256-byte request parameter must be valid: %+v", ok)
	}
}
