// Package ipformat normalizes IPv4 addresses written in non-canonical
// textual notations and re-expands the canonical form into every supported
// notation for display.
//
// # Supported Notations
//
//   - Standard dotted-quad: "10.0.0.1"
//   - 32-bit decimal: "167772161"
//   - 32-bit hexadecimal: "0x0a000001"
//   - IPv6-mapped: "::ffff:10.0.0.1"
//   - Overflow dotted form: "10.0.256" (last group encodes two octets)
//   - Truncated dotted form: "10.5" or "10.5.3" (missing octets are zero)
//   - Octal dotted form: "010.2.3.4" (leading-zero groups are base 8)
//
// Detection rules are evaluated in a fixed priority order and the first
// matching rule wins. Several rules can structurally match the same input
// (plain dotted-quad input also satisfies the octal rule's digits-and-dots
// fallback), so the ordering is part of the contract, not an optimization.
//
// # Basic Usage
//
// Convert an input in any notation and print every representation:
//
//	converter, err := ipformat.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conversion, err := converter.Convert(ctx, "0x0a000001")
//	if err != nil {
//	    log.Printf("convert failed: %v", err)
//	    return
//	}
//
//	fmt.Println(conversion.Expansion.Report(conversion.Canonical))
//
// The two pipeline stages are also available separately: Normalize classifies
// raw text and produces the canonical dotted-quad, Expand validates a
// canonical dotted-quad and derives the alternate representations.
//
// # Rule Selection
//
// The active rules and their order can be restricted:
//
//	converter, _ := ipformat.New(
//	    ipformat.Rules(ipformat.RuleDecimal32, ipformat.RuleHex32),
//	)
//
// Presets are available for common configurations:
//
//	converter, _ := ipformat.New(ipformat.PresetStrictDottedQuad())
//
// # Errors
//
// Failures are reported through three sentinel errors, each carried by a
// typed wrapper naming the offending input:
//
//   - ErrUnrecognizedFormat: no detection rule matched the raw input.
//   - ErrMalformedNumeral: a rule matched structurally but a numeric
//     component could not be parsed (bad hex digits, value too large).
//   - ErrInvalidAddress: the normalized candidate is not a valid four-octet
//     dotted-quad. Range validation is deferred to the expansion stage, so
//     "999.1.1.1" passes detection and fails here.
//
// Every failure is terminal for the call; nothing is retried.
//
// # Observability
//
// Optional logging and metrics for production monitoring:
// (Prometheus adapter package: github.com/abczzz13/ipformat/prometheus)
//
//	import ipformatprom "github.com/abczzz13/ipformat/prometheus"
//
//	metrics, _ := ipformatprom.New()
//
//	converter, err := ipformat.New(
//	    ipformat.WithLogger(slog.Default()),
//	    ipformat.WithMetrics(metrics),
//	)
//
// # Thread Safety
//
// Converter instances are safe for concurrent use. They are typically created
// once at application startup and reused.
package ipformat
