package pennywise

import (
	"encoding/json"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	a := M(100)
	b := M(40.5)

	if got, want := a.Add(b), M(140.5); !got.Equal(want) {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), M(59.5); !got.Equal(want) {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := b.Sub(a), M(-59.5); !got.Equal(want) {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if !b.Sub(a).IsNegative() {
		t.Errorf("expected negative result")
	}
	if !a.IsPositive() || a.IsZero() {
		t.Errorf("unexpected sign for %v", a)
	}
	if !a.Sub(a).IsZero() {
		t.Errorf("a-a should be zero")
	}
	if !b.LessThan(a) || !a.GreaterThanOrEqual(b) {
		t.Errorf("unexpected ordering of %v and %v", a, b)
	}
}

func TestMoneyExactness(t *testing.T) {
	// 0.1+0.2 is the classic float trap, decimals keep it exact.
	got := M(0.1).Add(M(0.2))
	if want := M(0.3); !got.Equal(want) {
		t.Errorf("0.1+0.2 = %v, want %v", got, want)
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input    string
		expected Money
		err      bool
	}{
		{"1200", M(1200), false},
		{"49.50", M(49.5), false},
		{"-5", M(-5), false},
		{"", Money{}, true},
		{"abc", Money{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseMoney(tc.input)
			if tc.err {
				if err == nil {
					t.Fatalf("ParseMoney(%q) = %v, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q) unexpected error: %v", tc.input, err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("ParseMoney(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestMoneyJSON(t *testing.T) {
	// Amounts persist as plain JSON numbers.
	got, err := json.Marshal(M(1200.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "1200.5"; string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}

	var m Money
	if err := json.Unmarshal([]byte("99.99"), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := M(99.99); !m.Equal(want) {
		t.Errorf("got %v, want %v", m, want)
	}
}
