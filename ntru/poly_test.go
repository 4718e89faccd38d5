package ntru

import (
	"reflect"
	"testing"
)

func TestConstant(t *testing.T) {
	p := Constant(5, 11)
	if !p.IsZero() && p.Coeffs[0] != 5 {
		t.Fatalf("Constant(5,_) = %v", p.Coeffs)
	}
}

func TestDeg(t *testing.T) {
	cases := []struct {
		coeffs []int64
		want   int
	}{
		{[]int64{0}, 0},
		{[]int64{1}, 0},
		{[]int64{1, 0, 3}, 2},
		{[]int64{0, 0, 0}, 0},
		{[]int64{1, 2, 0, 0}, 1},
	}
	for _, c := range cases {
		p := ConvPoly{Coeffs: c.coeffs}
		if got := p.Deg(); got != c.want {
			t.Errorf("Deg(%v)=%d want %d", c.coeffs, got, c.want)
		}
	}
}

func TestLc(t *testing.T) {
	p := ConvPoly{Coeffs: []int64{1, 2, 3, 0}}
	if p.Lc() != 3 {
		t.Fatalf("Lc()=%d want 3", p.Lc())
	}
}

func TestIsZero(t *testing.T) {
	if !(ConvPoly{Coeffs: []int64{0, 0, 0}}).IsZero() {
		t.Fatal("expected zero polynomial")
	}
	if (ConvPoly{Coeffs: []int64{0, 1, 0}}).IsZero() {
		t.Fatal("expected non-zero polynomial")
	}
}

func TestTrim(t *testing.T) {
	cases := []struct {
		in, want []int64
	}{
		{[]int64{1, 2, 0, 0}, []int64{1, 2}},
		{[]int64{0, 0, 0}, []int64{0}},
		{[]int64{1, 0, 3}, []int64{1, 0, 3}},
		{[]int64{}, []int64{0}},
	}
	for _, c := range cases {
		got := (ConvPoly{Coeffs: c.in}).Trim().Coeffs
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Trim(%v)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestModulo(t *testing.T) {
	p := ConvPoly{Coeffs: []int64{1, -2, 3, -4, 5}}
	got := p.Modulo(5).Coeffs
	want := []int64{1, 3, 3, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Modulo(5)=%v want %v", got, want)
	}
}

func TestCenterLiftPoly(t *testing.T) {
	p := ConvPoly{Coeffs: []int64{0, 1, 2, 3, 4}}
	got := p.CenterLift(5).Coeffs
	want := []int64{0, 1, 2, -2, -1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CenterLift(5)=%v want %v", got, want)
	}
}

func TestAddSub(t *testing.T) {
	a := ConvPoly{Coeffs: []int64{1, 2, 3}}
	b := ConvPoly{Coeffs: []int64{3, 2, 1, 5}}
	sum := a.Add(b).Coeffs
	if !reflect.DeepEqual(sum, []int64{4, 4, 4, 5}) {
		t.Fatalf("Add=%v", sum)
	}
	diff := a.Sub(b).Coeffs
	if !reflect.DeepEqual(diff, []int64{-2, 0, 2, -5}) {
		t.Fatalf("Sub=%v", diff)
	}
}

func TestMulCyclic(t *testing.T) {
	// In Z[x]/(x^4-1): (1+x)*(1+x^3) = 1+x+x^3+x^4 = 2+x+x^3
	a := ConvPoly{Coeffs: []int64{1, 1, 0, 0}}
	b := ConvPoly{Coeffs: []int64{1, 0, 0, 1}}
	got := a.Mul(b, 4).Coeffs
	want := []int64{2, 1, 0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Mul=%v want %v", got, want)
	}
}

func TestEqualTrimmed(t *testing.T) {
	a := ConvPoly{Coeffs: []int64{1, 2, 0}}
	b := ConvPoly{Coeffs: []int64{1, 2}}
	if !a.EqualTrimmed(b) {
		t.Fatal("expected equal after trim")
	}
	c := ConvPoly{Coeffs: []int64{1, 3}}
	if a.EqualTrimmed(c) {
		t.Fatal("expected not equal")
	}
}
