package selector

import (
	"errors"
	"testing"
	"time"
)

func TestEqMatches(t *testing.T) {
	tests := []struct {
		name  string
		sel   Selector
		value any
		want  bool
	}{
		{"int equal", Eq(42), 42, true},
		{"int below", Eq(42), 41, false},
		{"int above", Eq(42), 43, false},
		{"string equal", Eq("on"), "on", true},
		{"string other", Eq("on"), "off", false},
		{"uint equal", Eq(uint(7)), uint(7), true},
		{"float equal", Eq(1.5), 1.5, true},
		{"float other", Eq(1.5), 2.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.sel, tt.value); got != tt.want {
				t.Errorf("Matches(%v, %v) = %v, want %v", tt.sel, tt.value, got, tt.want)
			}
		})
	}
}

func TestRangeMatches(t *testing.T) {
	tests := []struct {
		name  string
		sel   Selector
		value int
		want  bool
	}{
		{"ge at bound", GE(10), 10, true},
		{"ge above", GE(10), 11, true},
		{"ge below", GE(10), 9, false},
		{"gt at bound", GT(10), 10, false},
		{"gt above", GT(10), 11, true},
		{"le at bound", LE(10), 10, true},
		{"le below", LE(10), 9, true},
		{"le above", LE(10), 11, false},
		{"lt at bound", LT(10), 10, false},
		{"lt below", LT(10), 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.sel, tt.value); got != tt.want {
				t.Errorf("Matches(%v, %d) = %v, want %v", tt.sel, tt.value, got, tt.want)
			}
		})
	}
}

func TestRangeFuncTime(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sel := GEFunc(base, time.Time.Before)

	if !Matches(sel, base) {
		t.Error("bound itself must match GE")
	}
	if !Matches(sel, base.Add(time.Second)) {
		t.Error("later instant must match GE")
	}
	if Matches(sel, base.Add(-time.Second)) {
		t.Error("earlier instant must not match GE")
	}
}

func TestBitMatches(t *testing.T) {
	sel := Bit(uint8(0o07), uint8(0o05))

	tests := []struct {
		value uint8
		want  bool
	}{
		{0o05, true},
		{0o15, true},
		{0o75, true},
		{0o04, false},
		{0o06, false},
	}

	for _, tt := range tests {
		if got := Matches(sel, tt.value); got != tt.want {
			t.Errorf("Matches(%v, %#o) = %v, want %v", sel, tt.value, got, tt.want)
		}
	}
}

func TestBitOrdering(t *testing.T) {
	low := Bit(uint8(0o07), uint8(0o02))
	high := Bit(uint8(0o07), uint8(0o05))

	if low.Compare(high) >= 0 {
		t.Error("smaller masked pattern must order first")
	}
	if high.Compare(low) <= 0 {
		t.Error("larger masked pattern must order last")
	}
	if low.Compare(low) != 0 {
		t.Error("identical selectors must compare equal")
	}
}

func TestAny(t *testing.T) {
	values := []any{0, 42, "text", 1.5, time.Now(), nil}
	for _, v := range values {
		if !Matches(Any, v) {
			t.Errorf("Any must match %v", v)
		}
	}
	if Any.Type() != nil {
		t.Error("Any carries no element type")
	}
	if Any.Signature() != "any" {
		t.Errorf("unexpected signature %q", Any.Signature())
	}
}

func TestValuePromotion(t *testing.T) {
	s, err := Value(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Signature() != "eq[int]" {
		t.Errorf("unexpected signature %q", s.Signature())
	}
	if !Matches(s, 42) {
		t.Error("promoted value must match itself")
	}

	passthrough, err := Value(GE(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if passthrough.Signature() != "ge[int]" {
		t.Error("selectors must pass through Value unchanged")
	}
}

func TestValueTime(t *testing.T) {
	now := time.Now()
	s, err := Value(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Matches(s, now) {
		t.Error("time value must match itself")
	}
	if Matches(s, now.Add(time.Second)) {
		t.Error("different instant must not match")
	}
}

func TestValueUnsupported(t *testing.T) {
	for _, v := range []any{nil, []int{1}, map[string]int{}, struct{ X int }{1}} {
		if _, err := Value(v); !errors.Is(err, ErrUnsupported) {
			t.Errorf("Value(%v) error = %v, want ErrUnsupported", v, err)
		}
	}
}

func TestEqCompare(t *testing.T) {
	a, b, c := Eq(1).(equality), Eq(2).(equality), Eq(2).(equality)

	if a.Compare(b) >= 0 {
		t.Error("1 must order before 2")
	}
	if b.Compare(a) <= 0 {
		t.Error("2 must order after 1")
	}
	if b.Compare(c) != 0 {
		t.Error("equal values must compare equal")
	}
}

func TestSignatures(t *testing.T) {
	tests := []struct {
		sel  Selector
		want string
	}{
		{Eq(0), "eq[int]"},
		{Eq(""), "eq[string]"},
		{GE(0), "ge[int]"},
		{GT(uint(0)), "gt[uint]"},
		{LE(0.0), "le[float64]"},
		{LT("z"), "lt[string]"},
		{GEFunc(time.Time{}, time.Time.Before), "ge[time.Time]"},
	}

	for _, tt := range tests {
		if got := tt.sel.Signature(); got != tt.want {
			t.Errorf("Signature() = %q, want %q", got, tt.want)
		}
	}
}
