package recommendations

// NeedProfile is the raw key-value profile supplied by the caller. Values are
// passed through validation unchanged; only key presence is checked.
type NeedProfile map[string]any

var (
	categoryFlags      = []string{"cleanser", "toner", "serum", "moisturizer", "sunscreen"}
	skinTypeFlags      = []string{"oily", "dry", "sensitive"}
	functionalityFlags = []string{"acne_fighting", "anti_aging", "brightening", "uv"}
)

// RequiredKeys returns the twelve keys every need-profile must carry.
func RequiredKeys() []string {
	keys := make([]string, 0, len(categoryFlags)+len(skinTypeFlags)+len(functionalityFlags))
	keys = append(keys, categoryFlags...)
	keys = append(keys, skinTypeFlags...)
	keys = append(keys, functionalityFlags...)
	return keys
}

// Validate checks that every required key is present. Values are not coerced or
// type-checked; absence of a key is the only failure trigger. The profile is
// returned unchanged on success.
func Validate(raw map[string]any) (NeedProfile, error) {
	var missing []string
	for _, key := range RequiredKeys() {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}
	return NeedProfile(raw), nil
}

// flagEqualsOne reports whether a profile value is the number 1. Skin-type
// selection is strict on numeric 1: boolean true does not match. JSON decoding
// yields float64, but literal ints are accepted for callers constructing
// profiles in code.
func flagEqualsOne(value any) bool {
	switch v := value.(type) {
	case float64:
		return v == 1
	case int:
		return v == 1
	case int64:
		return v == 1
	default:
		return false
	}
}

// flagIsTrue reports whether a profile value is the boolean true. The
// comedogenic ranking bonus keys off boolean true, not numeric 1; the asymmetry
// with flagEqualsOne is inherited behavior and covered by tests.
func flagIsTrue(value any) bool {
	v, ok := value.(bool)
	return ok && v
}
