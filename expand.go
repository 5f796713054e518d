package ipformat

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Expansion holds every representation derived from a canonical address.
//
// Truncated is empty when the truncated form would equal the standard form.
// Overflow is empty when the low two octets are both zero.
type Expansion struct {
	Standard   string
	Decimal32  uint32
	Hex32      string
	IPv6Mapped string
	Truncated  string
	Overflow   string
	Octal      string
}

// parseCanonical parses s as a strict four-octet dotted-quad. netip rejects
// leading zeros, out-of-range octets, wrong group counts, and IPv6 shapes,
// which is exactly the validation boundary the expansion stage needs.
func parseCanonical(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, &AddressError{
			ConversionError: ConversionError{Err: ErrInvalidAddress},
			Address:         s,
		}
	}
	return addr, nil
}

// expandAddr derives every representation of addr. standard is the already
// validated canonical string, kept verbatim.
func expandAddr(addr netip.Addr, standard string) Expansion {
	octets := addr.As4()

	value := uint32(octets[0])<<24 | uint32(octets[1])<<16 | uint32(octets[2])<<8 | uint32(octets[3])

	expansion := Expansion{
		Standard:   standard,
		Decimal32:  value,
		Hex32:      fmt.Sprintf("0x%08x", value),
		IPv6Mapped: ipv6MappedPrefix + standard,
		Octal:      octalQuad(octets),
	}

	if truncated := truncatedQuad(octets); truncated != standard {
		expansion.Truncated = truncated
	}

	if octets[2] >= 1 || octets[3] >= 1 {
		expansion.Overflow = overflowQuad(octets)
	}

	return expansion
}

func quadString(octets [4]byte) string {
	return fmt.Sprintf("%d.%d.%d.%d", octets[0], octets[1], octets[2], octets[3])
}

// truncatedQuad renders the shortest octet prefix whose remaining suffix is
// all zeros.
func truncatedQuad(octets [4]byte) string {
	end := len(octets)
	for end > 1 && octets[end-1] == 0 {
		end--
	}

	parts := make([]string, end)
	for i := 0; i < end; i++ {
		parts[i] = strconv.Itoa(int(octets[i]))
	}
	return strings.Join(parts, ".")
}

// overflowQuad folds the low two octets into a single combined group. The
// second octet is omitted when zero so the rendered form re-parses through
// the two-group detection path.
func overflowQuad(octets [4]byte) string {
	combined := int(octets[2])*256 + int(octets[3])
	if octets[1] == 0 {
		return fmt.Sprintf("%d.%d", octets[0], combined)
	}
	return fmt.Sprintf("%d.%d.%d", octets[0], octets[1], combined)
}

// octalQuad renders each octet in base 8, with a leading zero marker only on
// octets whose octal form has more than one digit.
func octalQuad(octets [4]byte) string {
	parts := make([]string, len(octets))
	for i, octet := range octets {
		if octet >= 8 {
			parts[i] = "0" + strconv.FormatUint(uint64(octet), 8)
		} else {
			parts[i] = strconv.FormatUint(uint64(octet), 8)
		}
	}
	return strings.Join(parts, ".")
}

// Lines renders the labeled representations in fixed display order.
// Truncated and Overflow lines are omitted when suppressed.
func (e Expansion) Lines() []string {
	lines := make([]string, 0, 7)
	lines = append(lines,
		"Standard IPv4: "+e.Standard,
		"32-bit decimal: "+strconv.FormatUint(uint64(e.Decimal32), 10),
		"32-bit hex: "+e.Hex32,
		"IPv6 mapped: "+e.IPv6Mapped,
	)
	if e.Truncated != "" {
		lines = append(lines, "Truncated: "+e.Truncated)
	}
	if e.Overflow != "" {
		lines = append(lines, "Integer overflow: "+e.Overflow)
	}
	return append(lines, "Octal: "+e.Octal)
}

// Report renders the full conversion report: the parsed canonical address,
// a blank separator, then one labeled line per representation.
func (e Expansion) Report(canonical string) string {
	var b strings.Builder
	b.WriteString("Parsed as: ")
	b.WriteString(canonical)
	b.WriteString("\n\n")
	for _, line := range e.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
