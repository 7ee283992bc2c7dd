package parse

import "testing"

func TestSucceedConsumesNothing(t *testing.T) {
	got, rest, err := Succeed(42).step("abc")
	if err != nil {
		t.Fatalf("Succeed failed: %v", err)
	}
	if got != 42 || rest != "abc" {
		t.Errorf("got (%d, %q), want (42, \"abc\")", got, rest)
	}
}

func TestFail(t *testing.T) {
	_, rest, err := Fail[int](Custom("nope")).step("abc")
	perr := requireKind(t, err, ErrorCustom)
	if perr.Message != "nope" {
		t.Errorf("Message = %q, want %q", perr.Message, "nope")
	}
	if rest != "abc" {
		t.Errorf("Fail consumed input: rest = %q", rest)
	}
}

func TestPipeline(t *testing.T) {
	add := func(a, b int) int { return a + b }
	sum := Keep(
		Drop(
			Drop(
				Drop(
					Keep(Succeed2(add), Int()),
					Spaces()),
				String("+")),
			Spaces()),
		Int())

	tests := []struct {
		input string
		want  int
		fails bool
	}{
		{input: "1 + 2", want: 3},
		{input: "1+2", want: 3},
		{input: "10   +   32", want: 42},
		{input: "1 +", fails: true},
		{input: "+ 2", fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Run(tt.input, sum)
			if tt.fails {
				if err == nil {
					t.Fatalf("Run(%q) = %d, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Run(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSucceed3(t *testing.T) {
	type version struct{ major, minor, patch int }
	dot := String(".")

	p := Keep(
		Keep(
			Keep(
				Succeed3(func(a, b, c int) version { return version{a, b, c} }),
				Drop(Int(), dot)),
			Drop(Int(), dot)),
		Int())

	got, err := Run("1.22.333", p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if (got != version{1, 22, 333}) {
		t.Errorf("got %+v, want {1 22 333}", got)
	}
}

func TestSucceed4(t *testing.T) {
	dash := String("-")

	p := Keep(
		Keep(
			Keep(
				Keep(
					Succeed4(func(a, b, c, d int) int { return a*1000 + b*100 + c*10 + d }),
					Drop(Int(), dash)),
				Drop(Int(), dash)),
			Drop(Int(), dash)),
		Int())

	got, err := Run("1-2-3-4", p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got != 1234 {
		t.Errorf("got %d, want 1234", got)
	}
}

func TestDropKeepsFirstValue(t *testing.T) {
	p := Drop(String("value"), String(";"))

	got, err := Run("value;", p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got != "value" {
		t.Errorf("got %q, want %q", got, "value")
	}

	if _, err := Run("value", p); err == nil {
		t.Fatal("Drop must still require the ignored parser to match")
	}
}

func TestOptional(t *testing.T) {
	p := Optional(String("-"))

	got, rest, err := p.step("-12")
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if got == nil || *got != "-" {
		t.Errorf("got %v, want \"-\"", got)
	}
	if rest != "12" {
		t.Errorf("rest = %q, want %q", rest, "12")
	}

	got, rest, err = p.step("12")
	if err != nil {
		t.Fatalf("Optional must never fail, got: %v", err)
	}
	if got != nil {
		t.Errorf("got %q, want nil", *got)
	}
	if rest != "12" {
		t.Errorf("Optional consumed input on failure: rest = %q", rest)
	}
}

func TestFromResult(t *testing.T) {
	if got, err := Run("", FromResult(7, nil)); err != nil || got != 7 {
		t.Errorf("FromResult(7, nil) = (%d, %v), want (7, nil)", got, err)
	}

	_, err := Run("", FromResult(0, Custom("out of range")))
	requireKind(t, err, ErrorCustom)
}

func TestFromOption(t *testing.T) {
	v := "here"
	if got, err := Run("", FromOption(&v, "missing")); err != nil || got != "here" {
		t.Errorf("FromOption(&v, ...) = (%q, %v), want (\"here\", nil)", got, err)
	}

	_, err := Run("", FromOption[string](nil, "missing"))
	perr := requireKind(t, err, ErrorCustom)
	if perr.Message != "missing" {
		t.Errorf("Message = %q, want %q", perr.Message, "missing")
	}
}
