package cipher

import "testing"

func TestShiftApply(t *testing.T) {
	tests := []struct {
		name string
		key  int
		in   string
		want string
	}{
		{"basic", 3, "ABC", "DEF"},
		{"wraps alphabet", 3, "XYZ", "ABC"},
		{"lowercase folds to uppercase", 3, "hello", "KHOOR"},
		{"non-letters pass through", 3, "HELLO, WORLD!", "KHOOR, ZRUOG!"},
		{"zero key uppercases only", 0, "abc def", "ABC DEF"},
		{"key normalized mod 26", 29, "ABC", "DEF"},
		{"negative key", -1, "ABC", "ZAB"},
		{"empty input", 5, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewShift(tt.key).Apply(tt.in)
			if got != tt.want {
				t.Errorf("Shift(%d).Apply(%q) = %q, want %q", tt.key, tt.in, got, tt.want)
			}
		})
	}
}

func TestReverseApply(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"letters", "ABC", "CBA"},
		{"punctuation moves too", "AB, CD", "DC ,BA"},
		{"empty", "", ""},
		{"single rune", "X", "X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewReverse().Apply(tt.in)
			if got != tt.want {
				t.Errorf("Reverse.Apply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReverseRoundTrip(t *testing.T) {
	inputs := []string{"", "A", "HELLO WORLD", "a1b2!c3", "mixed Case, with. punct?"}
	r := NewReverse()
	for _, in := range inputs {
		if got := r.Apply(r.Apply(in)); got != in {
			t.Errorf("double reverse of %q = %q, want original", in, got)
		}
	}
}

func TestMultiplyApply(t *testing.T) {
	tests := []struct {
		name string
		key  int
		in   string
		want string
	}{
		{"identity key", 1, "ABC", "ABC"},
		{"key three", 3, "AB", "AD"},
		{"non-letters pass through", 3, "A B!", "A D!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMultiply(tt.key).Apply(tt.in)
			if got != tt.want {
				t.Errorf("Multiply(%d).Apply(%q) = %q, want %q", tt.key, tt.in, got, tt.want)
			}
		})
	}
}

func TestMultiplyIsBijection(t *testing.T) {
	// Every normalized key must permute the alphabet with no collisions.
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, key := range coprimeKeys {
		out := NewMultiply(key).Apply(alphabet)
		seen := map[rune]bool{}
		for _, r := range out {
			if seen[r] {
				t.Fatalf("key %d: %q maps two letters to %c", key, out, r)
			}
			seen[r] = true
		}
	}
}

func TestNormalizeMultiplyKey(t *testing.T) {
	tests := []struct {
		key  int
		want int
	}{
		{1, 1},
		{3, 3},
		{25, 25},
		{13, 3},  // shares factor 13 with 26; fallback index 13 mod 12 = 1
		{0, 1},   // fallback index 0
		{2, 5},   // even; fallback index 2
		{26, 5},  // fallback index 26 mod 12 = 2
		{27, 7},  // coprime to 26 but outside the table; still corrected
		{-1, 25}, // negative keys wrap to a non-negative index
	}
	for _, tt := range tests {
		if got := NormalizeMultiplyKey(tt.key); got != tt.want {
			t.Errorf("NormalizeMultiplyKey(%d) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestNewMultiplyCorrectsKey(t *testing.T) {
	// 13 is not coprime to 26. Construction succeeds and stores the
	// deterministic fallback, never 13 itself.
	m := NewMultiply(13)
	if m.Key() == 13 {
		t.Fatal("NewMultiply(13) kept a non-coprime key")
	}
	if m.Key() != 3 {
		t.Errorf("NewMultiply(13).Key() = %d, want 3", m.Key())
	}
}

func TestKeyMultiplicity(t *testing.T) {
	tests := []struct {
		node Node
		want int
	}{
		{NewShift(3), 26},
		{NewMultiply(7), 12},
		{NewReverse(), 2},
		{NewPolygon(nil), 2}, // polygon takes the default, by design
	}
	for _, tt := range tests {
		if got := KeyMultiplicity(tt.node); got != tt.want {
			t.Errorf("KeyMultiplicity(%s) = %d, want %d", tt.node.Kind(), got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindShift.String() != "shift" || KindPolygon.String() != "polygon" {
		t.Errorf("unexpected kind names: %s %s", KindShift, KindPolygon)
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("Kind(99) = %s, want unknown", Kind(99))
	}
}
