// Command caif_vector_gen regenerates the golden conformance vectors under
// testdata/conformance/caif/caif-1. Run it from the repo root after any
// intentional layout change and review the diff.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modemlink/caif/caif"
)

func main() {
	outDir := flag.String("out", filepath.Join("testdata", "conformance", "caif", "caif-1"), "output directory")
	flag.Parse()

	vectors := []struct {
		name string
		addr caif.Address
	}{
		{name: "at_plain", addr: caif.ATAddress{Type: caif.AtTypePlain}},
		{name: "at_reserved", addr: caif.ATAddress{Type: 7}},
		{name: "dgm_connid", addr: caif.DatagramConnID(42)},
		{name: "dgm_nsapi", addr: caif.DatagramPDP(5)},
		{name: "dgmloop_connid", addr: caif.DatagramAddress{Loop: true, Kind: caif.DatagramConnectionID, ConnectionID: 3}},
		{name: "util_basic", addr: caif.UtilAddress{Service: "modem_fs"}},
		{name: "util_full16", addr: caif.UtilAddress{Service: strings.Repeat("a", 16)}},
		{name: "rfm_disk0", addr: caif.RFMAddress{ConnectionID: 42, Volume: "disk0"}},
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, v := range vectors {
		rec, err := caif.EncodeRecord(v.addr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", v.name, err)
			os.Exit(1)
		}
		if err := os.WriteFile(filepath.Join(*outDir, v.name+".bin"), rec, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		text := v.addr.String() + "\n"
		if err := os.WriteFile(filepath.Join(*outDir, v.name+".addr"), []byte(text), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s\t%d bytes\n", v.name, len(rec))
	}
}
