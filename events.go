package ipformat

const (
	formatEventUnrecognizedFormat = "unrecognized_format"
	formatEventMalformedNumeral   = "malformed_numeral"
	formatEventInvalidAddress     = "invalid_address"
)
