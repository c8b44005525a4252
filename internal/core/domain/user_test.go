package domain

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"aLICE":       "Alice",
		"Alice":       "Alice",
		"  bob  ":     "Bob",
		"mary-jane":   "Mary-jane",
		"ALICE SMITH": "Alice smith",
		"":            "",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	for _, in := range []string{"aLICE", "Alice", "bOB jONES", "x-y z"} {
		once := NormalizeName(in)
		if twice := NormalizeName(once); twice != once {
			t.Fatalf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Fatalf("unexpected email: %q", got)
	}
}

func TestIsValidName(t *testing.T) {
	valid := []string{"Bob", "Alice Smith", "Mary-Jane", "abcdefghijklmnopqrst"}
	invalid := []string{"Al", "abcdefghijklmnopqrstu", "R2D2", "Zoë", "Bob!"}

	for _, s := range valid {
		if !IsValidName(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	for _, s := range invalid {
		if IsValidName(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestIsValidImageURL(t *testing.T) {
	valid := []string{
		"https://cdn.example.com/a.png",
		"http://x.io/pic.JPEG",
		"https://res.cloudinary.com/demo/image/upload/v1/avatar.webp",
	}
	invalid := []string{
		"ftp://x.io/a.png",
		"https://x.io/a.pdf",
		"https://x.io/a.png?size=2",
		"a.png",
	}

	for _, s := range valid {
		if !IsValidImageURL(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	for _, s := range invalid {
		if IsValidImageURL(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestIsStrongPassword(t *testing.T) {
	valid := []string{"Passw0rd!", "aB3$aB3$", "Zz9&zzzzzz"}
	invalid := []string{
		"Pa0!",       // too short
		"password1!", // no upper
		"PASSWORD1!", // no lower
		"Password!!", // no digit
		"Password11", // no special
		"Passw0rd! ", // space not allowed
		"Passw0rd#",  // # is outside the allowed specials
	}

	for _, s := range valid {
		if !IsStrongPassword(s) {
			t.Fatalf("expected %q to be strong", s)
		}
	}
	for _, s := range invalid {
		if IsStrongPassword(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestValidationError_Messages(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "name", Message: "name too short"},
		{Field: "email", Message: "email invalid"},
	}}
	if err.Error() != "name too short; email invalid" {
		t.Fatalf("unexpected error string: %q", err.Error())
	}
	if len(err.Messages()) != 2 {
		t.Fatalf("expected 2 messages")
	}
}
