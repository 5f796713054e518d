package ipformat

import (
	"errors"
	"fmt"
	"net/netip"
)

var (
	ErrUnrecognizedFormat = errors.New("input matches no known IP address format")

	ErrMalformedNumeral = errors.New("malformed numeral")

	ErrInvalidAddress = errors.New("invalid IPv4 address")
)

// ConversionError is the base error carried by all conversion failures. Rule
// names the detection rule involved, when one was selected before the
// failure.
type ConversionError struct {
	Err  error
	Rule string
}

func (e *ConversionError) Error() string {
	if e.Rule == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Rule, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) RuleName() string {
	return e.Rule
}

// FormatError reports raw input that matched none of the detection rules.
type FormatError struct {
	ConversionError
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("could not parse %q as any known IP format", e.Input)
}

// NumeralError reports a numeric component that failed to parse inside a
// structurally matching rule. Cause holds the underlying parse error.
type NumeralError struct {
	ConversionError
	Input string
	Cause error
}

func (e *NumeralError) Error() string {
	return fmt.Sprintf("%s: %v in %q: %v", e.Rule, e.Err, e.Input, e.Cause)
}

// AddressError reports a normalized candidate that is not a valid four-octet
// dotted-quad.
type AddressError struct {
	ConversionError
	Address string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%v %q", e.Err, e.Address)
}

// Normalization is the result of the detection/normalization stage.
type Normalization struct {
	// Canonical is the candidate dotted-quad produced by the matching rule.
	// It has not been range-validated yet; Expand performs that check.
	Canonical string

	// Rule names the detection rule that produced Canonical.
	Rule string
}

// Conversion is the result of the full pipeline: a validated canonical
// address plus every derived representation.
type Conversion struct {
	Canonical string

	Addr netip.Addr

	Rule string

	Expansion Expansion
}
