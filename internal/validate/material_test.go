package validate

import "testing"

func TestMaterialCode(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"4011835-AA", true},
		{"  4011835-AA  ", true},
		{"abc", true},
		{"ABC-123-x", true},
		{"-", true},
		{"", false},
		{"  ", false},
		{"abc_123", false},
		{"40 11835", false},
		{"4011835.AA", false},
		{"mat/001", false},
		{"código", false},
	}
	for _, c := range cases {
		if got := MaterialCode(c.in); got != c.want {
			t.Fatalf("MaterialCode(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCleanMaterialCode_Trims(t *testing.T) {
	got, ok := CleanMaterialCode("  4011835-AA ")
	if !ok {
		t.Fatal("expected valid code")
	}
	if got != "4011835-AA" {
		t.Fatalf("expected trimmed code, got %q", got)
	}

	if _, ok := CleanMaterialCode("   "); ok {
		t.Fatal("expected blank code to be invalid")
	}
}
