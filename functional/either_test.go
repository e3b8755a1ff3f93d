package functional_test

import (
	"strconv"
	"testing"

	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/internal/testutil"
	"pgregory.net/rapid"
)

// TestEitherExactlyOneVariant verifies Match runs exactly one branch.
func TestEitherExactlyOneVariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := testutil.EitherGen(rapid.Int(), rapid.String()).Draw(t, "either")

		calls := 0
		e.Match(func(int) { calls++ }, func(string) { calls++ })
		if calls != 1 {
			t.Fatalf("Match ran %d branches", calls)
		}
	})
}

func TestMapFocusedIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := testutil.EitherGen(rapid.Int(), rapid.String()).Draw(t, "either")
		mapped := functional.MapFocused(e, functional.Identity[int])
		if mapped != e {
			t.Fatalf("identity law violated: %+v != %+v", mapped, e)
		}
	})
}

func TestMapFocusedComposition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := testutil.EitherGen(rapid.IntRange(-1000, 1000), rapid.String()).Draw(t, "either")
		f := func(x int) int { return x + 1 }
		g := strconv.Itoa

		twice := functional.MapFocused(functional.MapFocused(e, f), g)
		once := functional.MapFocused(e, functional.ComposeFunc(f, g))
		if twice != once {
			t.Fatalf("composition law violated: %+v != %+v", twice, once)
		}
	})
}

func TestSwap(t *testing.T) {
	e := functional.Focused[int, string](1)
	if e.Swap().IsFocused() {
		t.Fatal("Swap of Focused must be Unfocused")
	}
	if e.Swap().Swap() != e {
		t.Fatal("Swap must be an involution")
	}
	got := functional.Fold(functional.Unfocused[int]("x"), strconv.Itoa, functional.Identity[string])
	if got != "x" {
		t.Fatalf("Fold chose the wrong branch: %q", got)
	}
}

func TestPairMaps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := testutil.PairGen(rapid.Int(), rapid.String()).Draw(t, "pair")
		first, second := functional.MapPairFirst(p, strconv.Itoa).Unpack()
		if first != strconv.Itoa(p.First) || second != p.Second {
			t.Fatalf("MapPairFirst touched the wrong component: %+v", p)
		}
		if functional.MapPairSecond(p, func(s string) int { return len(s) }).Second != len(p.Second) {
			t.Fatal("MapPairSecond did not map the second component")
		}
		if p.Swap().Swap() != p {
			t.Fatal("Swap must be an involution")
		}
	})
}
