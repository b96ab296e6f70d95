package caif

// Rule is an explicit, named validation rule.
//
// ID must be stable across versions.
// Apply must be deterministic and side-effect free.
type Rule struct {
	ID    string
	Apply func(Address) error
}

func (r Rule) apply(a Address) error {
	if r.Apply == nil {
		return newError(KindInternal, "CAIF-INTERNAL-002", "nil rule Apply")
	}
	return r.Apply(a)
}

// ValidateRules runs rules in order, returning the first failure.
//
// Determinism note: rule order is the evaluation order; keep it stable.
func ValidateRules(a Address, rules []Rule) error {
	for _, r := range rules {
		if err := r.apply(a); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRulesAll runs all rules in order, returning a (deterministically
// ordered) slice of all violations.
func ValidateRulesAll(a Address, rules []Rule) []error {
	var out []error
	for _, r := range rules {
		if err := r.apply(a); err != nil {
			out = append(out, err)
		}
	}
	return out
}
