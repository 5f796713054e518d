package ipformat

import (
	"fmt"
	"reflect"
)

func (c *config) validate() error {
	if len(c.ruleOrder) == 0 {
		return fmt.Errorf("at least one detection rule required")
	}

	seen := make(map[string]struct{}, len(c.ruleOrder))
	for _, name := range c.ruleOrder {
		if name == "" {
			return fmt.Errorf("rule names cannot be empty")
		}
		if !knownRuleName(name) {
			return fmt.Errorf("unknown detection rule %q", name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("duplicate rule %q in rule list", name)
		}
		seen[name] = struct{}{}
	}

	if isNilLogger(c.logger) {
		return fmt.Errorf("logger cannot be nil")
	}
	if isNilMetrics(c.metrics) {
		return fmt.Errorf("metrics cannot be nil")
	}
	return nil
}

func knownRuleName(name string) bool {
	switch name {
	case RuleStandard, RuleDecimal32, RuleHex32, RuleIPv6Mapped,
		RuleOverflow, RuleTruncated, RuleOctal:
		return true
	default:
		return false
	}
}

func isNilLogger(logger Logger) bool {
	return isNilInterface(logger)
}

func isNilMetrics(metrics Metrics) bool {
	return isNilInterface(metrics)
}

func isNilInterface(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
