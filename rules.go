package ipformat

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// RuleStandard matches four dot-separated groups of 1-3 decimal digits.
	RuleStandard = "standard"
	// RuleDecimal32 matches a bare unsigned 32-bit decimal integer.
	RuleDecimal32 = "decimal32"
	// RuleHex32 matches a 0x-prefixed 32-bit hexadecimal integer.
	RuleHex32 = "hex32"
	// RuleIPv6Mapped matches the ::ffff:-prefixed IPv6-mapped form.
	RuleIPv6Mapped = "ipv6_mapped"
	// RuleOverflow matches three groups whose last encodes two octets.
	RuleOverflow = "overflow"
	// RuleTruncated matches two or three groups padded with zero octets.
	RuleTruncated = "truncated"
	// RuleOctal matches dotted forms whose leading-zero groups are base 8.
	RuleOctal = "octal"
)

// ipv6MappedPrefix introduces the only IPv6 shape the detector recognizes.
const ipv6MappedPrefix = "::ffff:"

// defaultRuleOrder is the full detection chain in priority order. Rules are
// not mutually exclusive (a plain dotted-quad also satisfies the octal
// rule's digits-and-dots fallback), so earlier rules win.
var defaultRuleOrder = []string{
	RuleStandard,
	RuleDecimal32,
	RuleHex32,
	RuleIPv6Mapped,
	RuleOverflow,
	RuleTruncated,
	RuleOctal,
}

// formatRule classifies trimmed raw input.
//
// Apply returns the canonical dotted-quad candidate when the rule matches,
// ok=false when the rule does not apply (the chain moves on to the next
// rule), and a non-nil error when the rule matches structurally but a
// numeric component cannot be parsed. "Does not apply" is always distinct
// from a hard failure.
type formatRule interface {
	Apply(raw string) (candidate string, ok bool, err error)

	Name() string
}

type standardRule struct{}

func (standardRule) Name() string { return RuleStandard }

// Apply matches four groups of 1-3 digits. Multi-digit groups with a leading
// zero are left to the octal rule. Numeric range is not checked here;
// out-of-range octets fail at the expansion stage.
func (standardRule) Apply(raw string) (string, bool, error) {
	groups := strings.Split(raw, ".")
	if len(groups) != 4 {
		return "", false, nil
	}

	for _, group := range groups {
		if !isDigits(group) || len(group) > 3 {
			return "", false, nil
		}
		if len(group) > 1 && group[0] == '0' {
			return "", false, nil
		}
	}

	return raw, true, nil
}

type decimal32Rule struct{}

func (decimal32Rule) Name() string { return RuleDecimal32 }

// Apply interprets an all-digits input as an unsigned 32-bit integer in
// network byte order. Values that do not fit 32 bits are a hard failure, not
// a fall-through.
func (decimal32Rule) Apply(raw string) (string, bool, error) {
	if !isDigits(raw) {
		return "", false, nil
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return "", false, numeralError(RuleDecimal32, raw, err)
	}

	return dottedQuad(uint32(value)), true, nil
}

type hex32Rule struct{}

func (hex32Rule) Name() string { return RuleHex32 }

// Apply interprets a 0x-prefixed input as a 32-bit hexadecimal integer in
// network byte order.
func (hex32Rule) Apply(raw string) (string, bool, error) {
	rest, found := strings.CutPrefix(raw, "0x")
	if !found {
		return "", false, nil
	}

	value, err := strconv.ParseUint(rest, 16, 32)
	if err != nil {
		return "", false, numeralError(RuleHex32, raw, err)
	}

	return dottedQuad(uint32(value)), true, nil
}

type ipv6MappedRule struct{}

func (ipv6MappedRule) Name() string { return RuleIPv6Mapped }

// Apply strips the ::ffff: prefix and passes the remainder through verbatim.
// The expansion stage decides whether the remainder is a valid dotted-quad.
func (ipv6MappedRule) Apply(raw string) (string, bool, error) {
	rest, found := strings.CutPrefix(raw, ipv6MappedPrefix)
	if !found {
		return "", false, nil
	}

	return rest, true, nil
}

type overflowRule struct{}

func (overflowRule) Name() string { return RuleOverflow }

// Apply matches exactly three numeric groups whose third exceeds 255 and
// splits that group into the two final octets. Three-group inputs whose
// third group fits one octet fall through to the truncated rule. Third
// groups too large for two octets are a hard failure.
func (overflowRule) Apply(raw string) (string, bool, error) {
	groups, ok := digitGroups(raw)
	if !ok || len(groups) != 3 {
		return "", false, nil
	}

	combined, err := strconv.ParseUint(groups[2], 10, 64)
	if err != nil {
		return "", false, numeralError(RuleOverflow, raw, err)
	}
	if combined <= 255 {
		return "", false, nil
	}
	if combined >= 1<<16 {
		return "", false, numeralError(RuleOverflow, raw,
			fmt.Errorf("group %q does not fit two octets", groups[2]))
	}

	first, err := strconv.ParseUint(groups[0], 10, 64)
	if err != nil {
		return "", false, numeralError(RuleOverflow, raw, err)
	}
	second, err := strconv.ParseUint(groups[1], 10, 64)
	if err != nil {
		return "", false, numeralError(RuleOverflow, raw, err)
	}

	return fmt.Sprintf("%d.%d.%d.%d", first, second, combined/256, combined%256), true, nil
}

type truncatedRule struct{}

func (truncatedRule) Name() string { return RuleTruncated }

// Apply pads two- and three-group inputs with zero octets. A two-group
// second value above 255 is split across the final two octets; values too
// large for three octets' worth of padding are a hard failure.
func (truncatedRule) Apply(raw string) (string, bool, error) {
	groups, ok := digitGroups(raw)
	if !ok || len(groups) < 2 || len(groups) > 3 {
		return "", false, nil
	}

	values := make([]uint64, len(groups))
	for i, group := range groups {
		value, err := strconv.ParseUint(group, 10, 64)
		if err != nil {
			return "", false, numeralError(RuleTruncated, raw, err)
		}
		values[i] = value
	}

	if len(groups) == 3 {
		if values[0] > 255 || values[1] > 255 || values[2] > 255 {
			return "", false, nil
		}
		return fmt.Sprintf("%d.%d.0.%d", values[0], values[1], values[2]), true, nil
	}

	if values[0] > 255 {
		return "", false, nil
	}

	combined := values[1]
	if combined <= 255 {
		return fmt.Sprintf("%d.0.0.%d", values[0], combined), true, nil
	}
	if combined >= 1<<16 {
		return "", false, numeralError(RuleTruncated, raw,
			fmt.Errorf("group %q does not fit two octets", groups[1]))
	}

	return fmt.Sprintf("%d.0.%d.%d", values[0], combined/256, combined%256), true, nil
}

type octalRule struct{}

func (octalRule) Name() string { return RuleOctal }

// Apply reinterprets leading-zero groups as base 8, leaving other groups
// unchanged. A leading-zero group with non-octal digits means the rule does
// not apply; the fall-through is silent, never a hard failure.
func (octalRule) Apply(raw string) (string, bool, error) {
	if !isDigitsAndDots(raw) {
		return "", false, nil
	}

	groups := strings.Split(raw, ".")
	converted := make([]string, len(groups))
	for i, group := range groups {
		if len(group) > 1 && group[0] == '0' {
			value, err := strconv.ParseUint(group, 8, 64)
			if err != nil {
				return "", false, nil
			}
			converted[i] = strconv.FormatUint(value, 10)
			continue
		}
		converted[i] = group
	}

	return strings.Join(converted, "."), true, nil
}

func numeralError(rule, input string, cause error) error {
	return &NumeralError{
		ConversionError: ConversionError{Err: ErrMalformedNumeral, Rule: rule},
		Input:           input,
		Cause:           cause,
	}
}
