package consteval

import (
	"testing"

	"surgelint/internal/ast"
	"surgelint/internal/diag"
	"surgelint/internal/parser"
	"surgelint/internal/source"
)

// evalSource parses src, collects its consts, and evaluates the value of the
// const named RESULT.
func evalSource(t *testing.T, src string) (uint64, bool, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("eval.sg", []byte(src))

	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}

	builder := ast.NewBuilder(nil)
	p := parser.New(fs.Get(id), builder, reporter)
	parsed := builder.Files.Get(uint32(p.ParseFile()))

	eval := New(builder, reporter)
	eval.CollectFile(parsed)

	for _, itemID := range parsed.Items {
		c, ok := builder.Const(itemID)
		if !ok {
			continue
		}
		if builder.LookupName(c.Name) == "RESULT" {
			v, resolved := eval.Uint(c.Value)
			return v, resolved, bag
		}
	}
	t.Fatalf("no RESULT const in %q", src)
	return 0, false, nil
}

func TestUintResolves(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want uint64
	}{
		{"decimal", "const RESULT = 42;", 42},
		{"zero", "const RESULT = 0;", 0},
		{"underscores", "const RESULT = 1_000_000;", 1000000},
		{"hex", "const RESULT = 0xFF;", 255},
		{"hex upper prefix", "const RESULT = 0X10;", 16},
		{"octal", "const RESULT = 0o17;", 15},
		{"binary", "const RESULT = 0b1010;", 10},
		{"addition", "const RESULT = 40 + 2;", 42},
		{"subtraction", "const RESULT = 50 - 8;", 42},
		{"multiplication", "const RESULT = 6 * 7;", 42},
		{"division", "const RESULT = 85 / 2;", 42},
		{"modulo", "const RESULT = 100 % 58;", 42},
		{"precedence", "const RESULT = 2 + 4 * 10;", 42},
		{"grouping", "const RESULT = (2 + 4) * 7;", 42},
		{"unary plus", "const RESULT = +42;", 42},
		{"negative zero", "const RESULT = -0;", 0},
		{"named chain", "const A = 6;\nconst B = A * 7;\nconst RESULT = B;", 42},
		{"named in expression", "const HALF = 21;\nconst RESULT = HALF + HALF;", 42},
		{"max uint64", "const RESULT = 0xFFFFFFFFFFFFFFFF;", 0xFFFFFFFFFFFFFFFF},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, _ := evalSource(t, tc.src)
			if !ok {
				t.Fatal("expected value to resolve")
			}
			if got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestUintUnresolved(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"unknown name", "const RESULT = MISSING;"},
		{"negative value", "const RESULT = -1;"},
		{"subtraction underflow", "const RESULT = 1 - 2;"},
		{"addition overflow", "const RESULT = 0xFFFFFFFFFFFFFFFF + 1;"},
		{"multiplication overflow", "const RESULT = 0xFFFFFFFFFFFFFFFF * 2;"},
		{"division by zero", "const RESULT = 1 / 0;"},
		{"modulo by zero", "const RESULT = 1 % 0;"},
		{"too large literal", "const RESULT = 18446744073709551616;"},
		{"self cycle", "const RESULT = RESULT;"},
		{"mutual cycle", "const A = B;\nconst B = A;\nconst RESULT = A;"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok, _ := evalSource(t, tc.src)
			if ok {
				t.Fatal("expected value to stay unresolved")
			}
		})
	}
}

func TestUintExcluding(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("eval.sg", []byte("const N = 0;\nconst RESULT = N + 1;"))

	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}

	builder := ast.NewBuilder(nil)
	p := parser.New(fs.Get(id), builder, reporter)
	parsed := builder.Files.Get(uint32(p.ParseFile()))

	eval := New(builder, reporter)
	eval.CollectFile(parsed)

	var value ast.ExprID
	for _, itemID := range parsed.Items {
		if c, ok := builder.Const(itemID); ok && builder.LookupName(c.Name) == "RESULT" {
			value = c.Value
		}
	}
	if value == 0 {
		t.Fatal("no RESULT const parsed")
	}

	shadowed := map[source.StringID]bool{builder.StringsInterner.Intern("N"): true}
	if _, ok := eval.UintExcluding(value, shadowed); ok {
		t.Fatal("excluded name must not resolve through the const table")
	}
	if v, ok := eval.UintExcluding(value, nil); !ok || v != 1 {
		t.Fatalf("with no exclusions got (%d, %v), want (1, true)", v, ok)
	}
	// The exclusion set must not outlive the call.
	if v, ok := eval.Uint(value); !ok || v != 1 {
		t.Fatalf("plain Uint after UintExcluding got (%d, %v), want (1, true)", v, ok)
	}
}

func TestCycleReported(t *testing.T) {
	_, ok, bag := evalSource(t, "const A = B;\nconst B = A;\nconst RESULT = A;")
	if ok {
		t.Fatal("cycle must not resolve")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.EvalConstCycle {
			found = true
		}
	}
	if !found {
		t.Error("expected an EvalConstCycle diagnostic")
	}
}

func TestParseUintLiteral(t *testing.T) {
	cases := []struct {
		text string
		want uint64
		ok   bool
	}{
		{"0", 0, true},
		{"007", 7, true},
		{"1_2_3", 123, true},
		{"0x_FF", 255, true},
		{"0b11", 3, true},
		{"0o8", 0, false},
		{"0xZZ", 0, false},
		{"", 0, false},
		{"_", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseUintLiteral(tc.text)
		if ok != tc.ok || got != tc.want {
			t.Errorf("parseUintLiteral(%q) = (%d, %v), want (%d, %v)", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}
