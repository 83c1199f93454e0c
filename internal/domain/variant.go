package domain

import "fmt"

// Variant selects which half of an example pair runs.
type Variant string

const (
	// VariantBefore runs the design that violates the principle.
	VariantBefore Variant = "before"

	// VariantAfter runs the corrected design.
	VariantAfter Variant = "after"

	// VariantBoth runs the violation first, then the fix.
	VariantBoth Variant = "both"
)

// ParseVariant converts a string into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantBefore, VariantAfter, VariantBoth:
		return v, nil
	}
	return "", fmt.Errorf("%w: variant %q (want before, after or both)", ErrInvalidConfig, s)
}

// IncludesBefore reports whether the violating design should run.
func (v Variant) IncludesBefore() bool { return v == VariantBefore || v == VariantBoth }

// IncludesAfter reports whether the corrected design should run.
func (v Variant) IncludesAfter() bool { return v == VariantAfter || v == VariantBoth }
