// Command ipformat normalizes an IPv4 address written in any supported
// notation and prints every alternate representation.
//
// Usage:
//
//	ipformat <address>
//
// The address may be a dotted-quad, a 32-bit decimal or hexadecimal integer,
// an IPv6-mapped form, an overflow or truncated dotted form, or an
// octal-dotted form. Parse failures are reported as text; only a malformed
// invocation exits non-zero.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/abczzz13/ipformat"
)

var cli struct {
	Address string `arg:"" help:"IP address in any supported notation."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("ipformat"),
		kong.Description("Normalize an IPv4 address from any common notation and print every representation."),
		kong.UsageOnError(),
	)

	run(os.Stdout, cli.Address)
}

func run(w io.Writer, address string) {
	converter, err := ipformat.New()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	ctx := context.Background()

	normalization, err := converter.Normalize(ctx, address)
	if err != nil {
		var numeralErr *ipformat.NumeralError
		if errors.As(err, &numeralErr) {
			fmt.Fprintf(w, "Error: %v\n", numeralErr)
			return
		}
		fmt.Fprintf(w, "Error: Could not parse %q as any known IP format\n", address)
		return
	}

	expansion, err := converter.Expand(ctx, normalization.Canonical)
	if err != nil {
		fmt.Fprintf(w, "Error: Invalid IPv4 address %q\n", normalization.Canonical)
		return
	}

	fmt.Fprint(w, expansion.Report(normalization.Canonical))
}
