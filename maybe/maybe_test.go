package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/linked/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		w = -1
	}
	if w != -1 {
		t.Errorf("expected Nothing-case to match, w is %#v", w)
	}
}

func TestMaybeGet(t *testing.T) {
	if v, ok := Just("x").Get(); !ok || v != "x" {
		t.Errorf("expected Just(x).Get() to return (x, true), is (%q, %v)", v, ok)
	}
	if v, ok := Nothing[string]().Get(); ok || v != "" {
		t.Errorf("expected Nothing.Get() to return zero value and false, is (%q, %v)", v, ok)
	}
	if Just(0).IsNothing() {
		t.Error("expected Just(0) not to be Nothing, is")
	}
	if !Nothing[int]().IsNothing() {
		t.Error("expected Nothing to be Nothing, isn't")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}
	y := Nothing[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, _ := Just(7).Map(double).Get(); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
	if !Nothing[int]().Map(double).IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
	s := Map(strconv.Itoa, Just(10))
	if v, _ := s.Get(); v != "10" {
		t.Errorf("expected Map(Itoa, Just 10) to return \"10\", is %q", v)
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen(gt0, Just(7)).WithDefault(false) {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if !AndThen(gt0, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
	if !AndThen(gt0, Nothing[int]()).IsNothing() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}

func TestMaybeString(t *testing.T) {
	if s := Just(7).String(); s != "Just(7)" {
		t.Errorf("expected Just(7) to print as Just(7), is %q", s)
	}
	if s := Nothing[int]().String(); s != "Nothing" {
		t.Errorf("expected Nothing to print as Nothing, is %q", s)
	}
}
