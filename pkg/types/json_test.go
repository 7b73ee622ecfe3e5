package types

import "testing"

func TestStringListRoundTrip(t *testing.T) {
	original := StringList{"cinematic", "vfx", "color"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var decoded StringList
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(decoded) != 3 || decoded[0] != "cinematic" || decoded[2] != "color" {
		t.Fatalf("unexpected decoded list %v", decoded)
	}
}

func TestStringListScanNil(t *testing.T) {
	var decoded StringList
	if err := decoded.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if decoded == nil || len(decoded) != 0 {
		t.Fatalf("expected empty list, got %v", decoded)
	}
}

func TestSocialLinksRoundTrip(t *testing.T) {
	original := SocialLinks{Email: "hi@orbya.dev", LinkedIn: "in/orbya"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var decoded SocialLinks
	if err := decoded.Scan([]byte(value.(string))); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if decoded.Email != original.Email || decoded.LinkedIn != original.LinkedIn {
		t.Fatalf("unexpected decoded links %+v", decoded)
	}
}

func TestColorPaletteScanUnsupportedType(t *testing.T) {
	var palette ColorPalette
	if err := palette.Scan(42); err == nil {
		t.Fatal("expected error for unsupported scan type")
	}
}
