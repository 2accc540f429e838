package recommendations

import (
	"errors"
	"testing"
)

func fullProfile() map[string]any {
	return map[string]any{
		"cleanser":      float64(1),
		"toner":         float64(1),
		"serum":         float64(1),
		"moisturizer":   float64(1),
		"sunscreen":     float64(1),
		"oily":          float64(0),
		"dry":           float64(0),
		"sensitive":     float64(0),
		"acne_fighting": float64(0),
		"anti_aging":    float64(0),
		"brightening":   float64(0),
		"uv":            float64(0),
	}
}

func TestValidateAcceptsFullProfile(t *testing.T) {
	raw := fullProfile()
	profile, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(profile) != len(raw) {
		t.Fatalf("expected profile to pass through unchanged, got %d keys", len(profile))
	}
}

func TestValidateRejectsEachMissingKey(t *testing.T) {
	for _, key := range RequiredKeys() {
		raw := fullProfile()
		delete(raw, key)

		_, err := Validate(raw)
		if err == nil {
			t.Fatalf("expected error for missing key %q", key)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError for %q, got %T", key, err)
		}
		if len(verr.Missing) != 1 || verr.Missing[0] != key {
			t.Fatalf("expected missing=[%q], got %v", key, verr.Missing)
		}
		if !errors.Is(err, ErrMalformedProfile) {
			t.Fatalf("expected error to unwrap to ErrMalformedProfile")
		}
	}
}

func TestValidateChecksPresenceNotValueType(t *testing.T) {
	raw := fullProfile()
	raw["oily"] = "definitely"
	raw["uv"] = nil
	raw["cleanser"] = []string{"anything"}

	if _, err := Validate(raw); err != nil {
		t.Fatalf("Validate should only check key presence, got %v", err)
	}
}

func TestValidateNilProfile(t *testing.T) {
	_, err := Validate(nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Missing) != len(RequiredKeys()) {
		t.Fatalf("expected all %d keys missing, got %d", len(RequiredKeys()), len(verr.Missing))
	}
}
