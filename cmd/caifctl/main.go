package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/modemlink/caif/caif"
	"github.com/modemlink/caif/model"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "encode":
		return cmdEncode(args[1:], out, errOut)
	case "decode":
		return cmdDecode(args[1:], out, errOut)
	case "validate":
		return cmdValidate(args[1:], out, errOut)
	case "option":
		return cmdOption(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "caifctl: CAIF channel address and socket-option codec CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  caifctl encode [--sockaddr] <address>")
	fmt.Fprintln(w, "  caifctl decode [--nsapi] [--json] <hex-record>")
	fmt.Fprintln(w, "  caifctl validate <address>")
	fmt.Fprintln(w, "  caifctl option --opt link-select|req-param|rsp-param [--value-hex <hex>] [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Addresses:")
	fmt.Fprintln(w, "  at:plain | at:<0..255>")
	fmt.Fprintln(w, "  util:<service>                      (service <= 16 bytes)")
	fmt.Fprintln(w, "  dgm:connid:<u32> | dgm:nsapi:<u8>   (dgmloop: for loopback)")
	fmt.Fprintln(w, "  rfm:<connid>:<volume>               (volume <= 16 bytes)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - encode prints hex of the framed record (proto byte + payload arm)")
	fmt.Fprintln(w, "  - --sockaddr prints the full 24-byte sockaddr_caif layout instead")
	fmt.Fprintln(w, "  - decode reads the framed record form; --nsapi picks the NSAPI")
	fmt.Fprintln(w, "    interpretation of the overlapping datagram union")
}

func cmdEncode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var sockaddr bool
	fs.BoolVar(&sockaddr, "sockaddr", false, "Emit the full sockaddr_caif layout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: caifctl encode [--sockaddr] <address>")
		return 2
	}

	addr, err := caif.ParseAddress(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid address: %v\n", err)
		return 1
	}

	var b []byte
	if sockaddr {
		b, err = caif.EncodeSockaddr(addr)
	} else {
		b, err = caif.EncodeRecord(addr)
	}
	if err != nil {
		fmt.Fprintf(errOut, "encode: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, hex.EncodeToString(b))
	return 0
}

func cmdDecode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var nsapi bool
	var asJSON bool
	fs.BoolVar(&nsapi, "nsapi", false, "Use the NSAPI interpretation for datagram payloads")
	fs.BoolVar(&asJSON, "json", false, "Emit a JSON projection instead of the textual form")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: caifctl decode [--nsapi] [--json] <hex-record>")
		return 2
	}

	b, err := hex.DecodeString(strings.TrimSpace(fs.Arg(0)))
	if err != nil {
		fmt.Fprintf(errOut, "invalid hex: %v\n", err)
		return 2
	}

	var opts []caif.DecodeOption
	if nsapi {
		opts = append(opts, caif.WithDatagramKind(caif.DatagramNSAPI))
	}
	addr, err := caif.DecodeRecord(b, opts...)
	if err != nil {
		fmt.Fprintf(errOut, "decode: %v\n", err)
		return 1
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(model.FromAddress(addr)); err != nil {
			fmt.Fprintf(errOut, "encode json: %v\n", err)
			return 1
		}
		return 0
	}
	_, _ = fmt.Fprintln(out, addr.String())
	return 0
}

func cmdValidate(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: caifctl validate <address>")
		return 2
	}

	addr, err := caif.ParseAddress(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid address: %v\n", err)
		return 1
	}
	if err := caif.ValidateStrict(addr); err != nil {
		fmt.Fprintf(errOut, "invalid: %v (%s)\n", err, caif.RuleID(err))
		return 1
	}
	_, _ = fmt.Fprintln(out, "OK")
	return 0
}

func cmdOption(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("option", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var optName string
	var valueHex string
	var asJSON bool
	fs.StringVar(&optName, "opt", "", "Socket option: link-select, req-param, rsp-param")
	fs.StringVar(&valueHex, "value-hex", "", "Option value as hex")
	fs.BoolVar(&asJSON, "json", false, "Emit the verdict as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var opt caif.SocketOpt
	switch optName {
	case "link-select":
		opt = caif.OptLinkSelect
	case "req-param":
		opt = caif.OptReqParam
	case "rsp-param":
		opt = caif.OptRspParam
	default:
		fmt.Fprintf(errOut, "unknown option name: %q\n", optName)
		return 2
	}

	value, err := hex.DecodeString(strings.TrimSpace(valueHex))
	if err != nil {
		fmt.Fprintf(errOut, "invalid hex: %v\n", err)
		return 2
	}

	chk := model.CheckOption(opt, value)
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(chk); err != nil {
			fmt.Fprintf(errOut, "encode json: %v\n", err)
			return 1
		}
	} else if chk.Valid {
		_, _ = fmt.Fprintln(out, "OK")
	} else {
		fmt.Fprintf(errOut, "invalid: %s (%s)\n", chk.Reason, chk.RuleID)
	}
	if !chk.Valid {
		return 1
	}
	return 0
}
