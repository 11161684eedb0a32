package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/multisig"
)

func main() {
	offsetFl := flag.Int("offset", 1, "Ignore first N multisig authorities.")
	limitFl := flag.Int("limit", 20, "Print N multisig authorities.")
	headerFl := flag.Bool("header", true, "Display header")
	hrpFl := flag.String("hrp", "iov", "Human readable part of the bech32 representation.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
	%s [options]


Print multisig authority addresses.

When a multisig is created, its ID is taken from a sequence counter and its
authority address is derived from that ID. That means that authority addresses
are deterministic and can be precomputed. This knowledge is helpful when
creating a genesis file - you can fund an authority before it exist.

`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *offsetFl < 1 {
		fmt.Fprintln(os.Stderr, "Offset must be greater than zero.")
		os.Exit(2)
	}
	if *limitFl < 1 {
		fmt.Fprintln(os.Stderr, "Limit must be greater than zero.")
		os.Exit(2)
	}

	if err := printAddresses(os.Stdout, *hrpFl, *headerFl, *limitFl, *offsetFl); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func printAddresses(out io.Writer, hrp string, header bool, limit, offset int) error {
	w := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)
	defer w.Flush()

	if header {
		fmt.Fprintln(w, "index\taddress\tbech32 repr\tbase58 repr")
	}
	for i := offset; i < limit+offset; i++ {
		addr := multisig.AuthorityCondition(seq(i)).Address()
		b32, err := addr.Bech32String(hrp)
		if err != nil {
			return errors.Wrap(err, "cannot serialize address")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, addr, b32, addr.Base58String())
	}
	return nil
}

// seq returns binary representation of a sequence number.
func seq(i int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(i))
	return b
}
