// intfpshow shows the PUL and SLOG representations of an integer, mostly
// for debugging conversions and mantissa-budget choices.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/pfcm/intfp/pul"
	"github.com/pfcm/intfp/slog"
)

var correctedFlag = flag.Bool("corrected", false, "show the quadratically-corrected SLOG codec instead of the plain one")

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: intfpshow [flags] <value>")
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		fail("need exactly one argument")
	}
	v, err := strconv.ParseUint(flag.Arg(0), 0, 64)
	if err != nil {
		fail(err.Error())
	}

	w := tabwriter.NewWriter(os.Stdout, 8, 1, 1, ' ', 0)
	fmt.Fprintf(w, "input\t%d (0x%x)\n", v, v)
	fmt.Fprintln(w)

	showPUL(w, v)
	fmt.Fprintln(w)
	showSLOG(w, v)

	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

func showPUL(w *tabwriter.Writer, v uint64) {
	m := pul.MaxMantissa[uint64, uint16]()
	enc := pul.Encode[uint64, uint16](v, m)
	dec := pul.Decode[uint64, uint16](enc, m)
	fmt.Fprintf(w, "pul16 (m=%d)\traw=0x%04x\tdecoded=%d\n", m, enc.Raw(), dec)
}

func showSLOG(w *tabwriter.Writer, v uint64) {
	m := slog.MaxMantissa[uint64, int32]()
	if *correctedFlag {
		enc := slog.EncodeCorrected[uint64, int32](v, 0, m)
		dec := slog.DecodeCorrected[uint64, int32](enc, m, 0)
		fmt.Fprintf(w, "slog32 corrected (m=%d)\traw=%d\tdecoded=%d\n", m, enc.Raw(), dec)
		return
	}
	enc := slog.Encode[uint64, int32](v, 0, m)
	dec := slog.Decode[uint64, int32](enc, m, 0)
	fmt.Fprintf(w, "slog32 (m=%d)\traw=%d\tdecoded=%d\n", m, enc.Raw(), dec)
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, "intfpshow: "+msg)
	os.Exit(1)
}
