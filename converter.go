package ipformat

import (
	"context"
	"fmt"
	"net/netip"
	"strings"
)

// Converter normalizes raw IP address text to a canonical dotted-quad and
// expands canonical addresses into alternate representations.
//
// Converter instances are safe for concurrent reuse.
type Converter struct {
	config *config
	rules  []formatRule
}

// New creates a Converter from one or more Option builders.
func New(opts ...Option) (*Converter, error) {
	cfg, err := configFromOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	converter := &Converter{config: cfg}
	converter.rules = buildRuleChain(cfg)

	return converter, nil
}

func buildRuleChain(cfg *config) []formatRule {
	rules := make([]formatRule, 0, len(cfg.ruleOrder))
	for _, name := range cfg.ruleOrder {
		// validate() already rejected unknown names.
		switch name {
		case RuleStandard:
			rules = append(rules, standardRule{})
		case RuleDecimal32:
			rules = append(rules, decimal32Rule{})
		case RuleHex32:
			rules = append(rules, hex32Rule{})
		case RuleIPv6Mapped:
			rules = append(rules, ipv6MappedRule{})
		case RuleOverflow:
			rules = append(rules, overflowRule{})
		case RuleTruncated:
			rules = append(rules, truncatedRule{})
		case RuleOctal:
			rules = append(rules, octalRule{})
		}
	}
	return rules
}

// Normalize classifies raw input against the configured detection rules in
// priority order and returns the canonical candidate from the first matching
// rule.
//
// The candidate is not range-validated; Expand rejects out-of-range octets.
// ctx is used for log attribution only; the computation itself never blocks.
func (c *Converter) Normalize(ctx context.Context, raw string) (Normalization, error) {
	trimmed := strings.TrimSpace(raw)

	for _, rule := range c.rules {
		candidate, ok, err := rule.Apply(trimmed)
		if err != nil {
			c.config.metrics.RecordDetectionFailure(rule.Name())
			c.config.metrics.RecordFormatEvent(formatEventMalformedNumeral)
			c.config.logger.WarnContext(ctx, "malformed numeral in recognized format",
				"event", formatEventMalformedNumeral,
				"rule", rule.Name(),
				"input", trimmed,
			)
			return Normalization{}, err
		}
		if !ok {
			continue
		}

		c.config.metrics.RecordDetectionSuccess(rule.Name())
		return Normalization{Canonical: candidate, Rule: rule.Name()}, nil
	}

	c.config.metrics.RecordFormatEvent(formatEventUnrecognizedFormat)
	c.config.logger.WarnContext(ctx, "no detection rule matched input",
		"event", formatEventUnrecognizedFormat,
		"input", trimmed,
	)

	return Normalization{}, &FormatError{
		ConversionError: ConversionError{Err: ErrUnrecognizedFormat},
		Input:           trimmed,
	}
}

// Expand validates a canonical dotted-quad and derives every alternate
// representation.
func (c *Converter) Expand(ctx context.Context, canonical string) (Expansion, error) {
	_, expansion, err := c.expand(ctx, canonical)
	return expansion, err
}

// Convert runs the full pipeline: Normalize, then Expand.
func (c *Converter) Convert(ctx context.Context, raw string) (Conversion, error) {
	normalization, err := c.Normalize(ctx, raw)
	if err != nil {
		return Conversion{}, err
	}

	addr, expansion, err := c.expand(ctx, normalization.Canonical)
	if err != nil {
		return Conversion{}, err
	}

	return Conversion{
		Canonical: normalization.Canonical,
		Addr:      addr,
		Rule:      normalization.Rule,
		Expansion: expansion,
	}, nil
}

func (c *Converter) expand(ctx context.Context, canonical string) (netip.Addr, Expansion, error) {
	addr, err := parseCanonical(canonical)
	if err != nil {
		c.config.metrics.RecordFormatEvent(formatEventInvalidAddress)
		c.config.logger.WarnContext(ctx, "normalized candidate is not a valid IPv4 address",
			"event", formatEventInvalidAddress,
			"address", canonical,
		)
		return netip.Addr{}, Expansion{}, err
	}

	return addr, expandAddr(addr, canonical), nil
}

// ConvertWithOptions is a one-shot convenience helper.
//
// It constructs a temporary converter from opts and runs the full pipeline
// on raw.
func ConvertWithOptions(ctx context.Context, raw string, opts ...Option) (Conversion, error) {
	converter, err := New(opts...)
	if err != nil {
		return Conversion{}, err
	}

	return converter.Convert(ctx, raw)
}

// NormalizeWithOptions is a one-shot convenience helper.
//
// It constructs a temporary converter from opts and runs only the
// detection/normalization stage on raw.
func NormalizeWithOptions(ctx context.Context, raw string, opts ...Option) (Normalization, error) {
	converter, err := New(opts...)
	if err != nil {
		return Normalization{}, err
	}

	return converter.Normalize(ctx, raw)
}
