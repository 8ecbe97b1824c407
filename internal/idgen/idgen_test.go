package idgen

import (
	"strings"
	"testing"
)

func TestNextIDSequence(t *testing.T) {
	g := New(8)
	if got := g.NextID("class"); got != "class-009" {
		t.Fatalf("first id = %q, want class-009", got)
	}
	if got := g.NextID("class"); got != "class-010" {
		t.Fatalf("second id = %q, want class-010", got)
	}
}

func TestNextIDZeroPadding(t *testing.T) {
	g := New(0)
	if got := g.NextID("student"); got != "student-001" {
		t.Fatalf("id = %q, want student-001", got)
	}
}

func TestNextIDPastThreeDigits(t *testing.T) {
	g := New(999)
	if got := g.NextID("class"); got != "class-1000" {
		t.Fatalf("id = %q, want class-1000", got)
	}
}

func TestJoinCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := JoinCode()
		if len(code) != 6 {
			t.Fatalf("join code %q has length %d, want 6", code, len(code))
		}
		for _, r := range code {
			if !strings.ContainsRune(JoinCodeAlphabet, r) {
				t.Fatalf("join code %q contains %q, not in alphabet", code, r)
			}
		}
	}
}

func TestJoinCodeAlphabetExcludesAmbiguous(t *testing.T) {
	for _, r := range "IO01" {
		if strings.ContainsRune(JoinCodeAlphabet, r) {
			t.Fatalf("alphabet must not contain %q", r)
		}
	}
}
