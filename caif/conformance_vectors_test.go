package caif

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Golden vectors pin the record layout: one protocol-type byte followed by
// the fixed payload arm. Regenerate with internal/tools/caif_vector_gen.
func TestConformanceVectors_RecordLayout(t *testing.T) {
	root := filepath.Join("..", "testdata", "conformance", "caif", "caif-1")

	vectors := []struct {
		name string
		opts []DecodeOption
	}{
		{name: "at_plain"},
		{name: "at_reserved"},
		{name: "dgm_connid"},
		{name: "dgm_nsapi", opts: []DecodeOption{WithDatagramKind(DatagramNSAPI)}},
		{name: "dgmloop_connid"},
		{name: "util_basic"},
		{name: "util_full16"},
		{name: "rfm_disk0"},
	}

	for _, v := range vectors {
		wantBin, err := os.ReadFile(filepath.Join(root, v.name+".bin"))
		if err != nil {
			t.Fatalf("%s: read bin: %v", v.name, err)
		}
		addrBytes, err := os.ReadFile(filepath.Join(root, v.name+".addr"))
		if err != nil {
			t.Fatalf("%s: read addr: %v", v.name, err)
		}
		wantText := strings.TrimSpace(string(addrBytes))
		if wantText == "" {
			t.Fatalf("%s: empty expected address", v.name)
		}

		addr, err := ParseAddress(wantText)
		if err != nil {
			t.Fatalf("%s: ParseAddress(%q): %v", v.name, wantText, err)
		}
		rec, err := EncodeRecord(addr)
		if err != nil {
			t.Fatalf("%s: EncodeRecord: %v", v.name, err)
		}
		if !bytes.Equal(rec, wantBin) {
			t.Fatalf("%s: record bytes mismatch:\n got % x\nwant % x", v.name, rec, wantBin)
		}

		decoded, err := DecodeRecord(wantBin, v.opts...)
		if err != nil {
			t.Fatalf("%s: DecodeRecord: %v", v.name, err)
		}
		if decoded.String() != wantText {
			t.Fatalf("%s: text mismatch: got %q want %q", v.name, decoded.String(), wantText)
		}
	}
}
