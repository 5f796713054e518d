package ipformat

// PresetAllFormats enables every detection rule in default priority order.
//
// This is the default configuration; the preset exists so callers can state
// it explicitly or restore it after other Rules options.
func PresetAllFormats() Option {
	return Rules(defaultRuleOrder...)
}

// PresetStrictDottedQuad accepts standard dotted-quad input only.
//
// Useful when input is expected to already be canonical and alternate
// notations should be rejected rather than reinterpreted.
func PresetStrictDottedQuad() Option {
	return Rules(RuleStandard)
}

// PresetNumeric32 accepts 32-bit decimal and hexadecimal input only.
//
// Useful for converting integer address columns exported from databases or
// packet captures.
func PresetNumeric32() Option {
	return Rules(RuleDecimal32, RuleHex32)
}
