package parse

import (
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	length := Map(TakeWhile(IsDigit), func(s string) int { return len(s) })

	got, err := Run("12345x", length)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}

func TestMapPropagatesError(t *testing.T) {
	called := false
	p := Map(TakeIf(IsDigit), func(s string) string { called = true; return s })

	_, err := Run("x", p)
	requireKind(t, err, ErrorUnexpectedInput)
	if called {
		t.Error("mapping function was called on failure")
	}
}

func TestThen(t *testing.T) {
	// A length-prefixed string: the digit says how many characters follow.
	sized := Then(Int(), func(n int) Parser[string] {
		p := Succeed("")
		for i := 0; i < n; i++ {
			p = Map2(p, Any(), func(acc, c string) string { return acc + c })
		}
		return p
	})

	got, err := Run("3abcdef", sized)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

func TestThenNotInvokedOnFailure(t *testing.T) {
	called := false
	p := Then(String("a"), func(string) Parser[string] {
		called = true
		return Succeed("ok")
	})

	if _, err := Run("b", p); err == nil {
		t.Fatal("expected failure")
	}
	if called {
		t.Error("continuation was invoked after a failed parse")
	}
}

func TestMap2(t *testing.T) {
	dims := Map2(
		Drop(Int(), String("x")),
		Int(),
		func(w, h int) int { return w * h },
	)

	got, err := Run("6x7", dims)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}

	if _, err := Run("6x", dims); err == nil {
		t.Fatal("expected failure on missing second half")
	}
}

func TestMap2RestoresInputOnFailure(t *testing.T) {
	p := Map2(String("ab"), String("cd"), func(a, b string) string { return a + b })

	_, rest, err := p.step("abXY")
	if err == nil {
		t.Fatal("expected failure")
	}
	if rest != "abXY" {
		t.Errorf("rest = %q, want the original input", rest)
	}
}

func TestLazy(t *testing.T) {
	// lazyDepth refers to itself; without Lazy its construction would
	// never terminate.
	got, err := Run("(((7)))", lazyDepth())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got != 3 {
		t.Errorf("depth = %d, want 3", got)
	}
}

func lazyDepth() Parser[int] {
	return OneOf(
		Map(TakeIf(IsDigit), func(string) int { return 0 }),
		Map2(
			String("("),
			Drop(Lazy(lazyDepth), String(")")),
			func(_ string, n int) int { return n + 1 },
		),
	)
}

func TestOneOfEmpty(t *testing.T) {
	for _, input := range []string{"", "anything"} {
		_, rest, err := OneOf[string]().step(input)
		requireKind(t, err, ErrorBadParser)
		if rest != input {
			t.Errorf("OneOf() consumed input: rest = %q", rest)
		}
	}
}

func TestOneOfFirstSuccessWins(t *testing.T) {
	p := OneOf(String("a"), String("b"))

	got, err := Run("b", p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got != "b" {
		t.Errorf("got %q, want %q", got, "b")
	}
}

func TestOneOfLastErrorWins(t *testing.T) {
	p := OneOf(String("a"), String("b"))

	_, err := Run("c", p)
	perr := requireKind(t, err, ErrorExpected)
	if perr.What != `starts with "b"` {
		t.Errorf("What = %q, want the last alternative's error", perr.What)
	}
}

func TestOneOfBacktracks(t *testing.T) {
	// The first alternative consumes "ab" before failing; the second
	// must still see the untouched input.
	p := OneOf(
		Map2(String("ab"), String("X"), func(a, b string) string { return a + b }),
		String("abc"),
	)

	got, err := Run("abc", p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

func TestOneOfOrderMatters(t *testing.T) {
	// Ambiguous alternatives resolve in list order.
	first := OneOf(String("a"), String("ab"))
	longer := OneOf(String("ab"), String("a"))

	got, _ := Run("ab", first)
	if got != "a" {
		t.Errorf("first-listed alternative should win, got %q", got)
	}
	got, _ = Run("ab", longer)
	if got != "ab" {
		t.Errorf("first-listed alternative should win, got %q", got)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	p := Map2(Drop(Int(), String(".")), Int(), func(a, b int) string {
		return strconv.Itoa(a) + "/" + strconv.Itoa(b)
	})

	first, firstErr := Run("12.34", p)
	if firstErr != nil {
		t.Fatalf("Run failed: %v", firstErr)
	}
	if first != "12/34" {
		t.Fatalf("got %q, want %q", first, "12/34")
	}
	for i := 0; i < 10; i++ {
		got, err := Run("12.34", p)
		if got != first || err != nil {
			t.Fatalf("run %d diverged: (%v, %v) vs (%v, <nil>)", i, got, err, first)
		}
	}
}
