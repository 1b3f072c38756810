package fixtree

import (
	"strings"
	"testing"
)

func TestFixedCodes(t *testing.T) {
	ct := FixedCodes()
	for _, e := range fixedCodes {
		code, ok := ct.Code(e.sym)
		if !ok {
			t.Fatalf("no code for %q", e.sym)
		}
		if code != e.code {
			t.Errorf("code for %q is %q; want %q", e.sym, code, e.code)
		}
	}
}

func TestCodesComplete(t *testing.T) {
	ct := FixedCodes()
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		if _, ok := ct.Code(c); !ok {
			t.Errorf("alphabet symbol %q has no entry", c)
		}
	}
	code, ok := ct.Code(' ')
	if !ok || code != "" {
		t.Fatalf("space has code %q, entry %t; want empty entry",
			code, ok)
	}
	for _, c := range []byte{'B', 'e', 200, 0} {
		if _, ok := ct.Code(c); ok {
			t.Errorf("symbol %q has an entry; want miss", c)
		}
	}
	const want = " 01ACEFHILMNO"
	if got := string(ct.Symbols()); got != want {
		t.Fatalf("Symbols() = %q; want %q", got, want)
	}
}

func TestCodesPrefixFree(t *testing.T) {
	if !FixedCodes().PrefixFree() {
		t.Fatalf("fixed code table is not prefix-free")
	}
	ct := new(CodeTable)
	ct.codes['a'], ct.ok['a'] = "1", true
	ct.codes['b'], ct.ok['b'] = "10", true
	if ct.PrefixFree() {
		t.Fatalf("PrefixFree() is true for codes 1 and 10")
	}
}

func TestCodesRootLeaf(t *testing.T) {
	tr, err := NewTree(map[byte]string{'x': ""})
	if err != nil {
		t.Fatalf("NewTree error %s", err)
	}
	code, ok := Codes(tr).Code('x')
	if !ok || code != "" {
		t.Fatalf("root leaf has code %q, entry %t; want empty entry",
			code, ok)
	}
}

func TestCodeTableString(t *testing.T) {
	s := FixedCodes().String()
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) != len(Alphabet) {
		t.Fatalf("String() has %d lines; want %d", len(lines),
			len(Alphabet))
	}
	if lines[0] != `' '	""` {
		t.Errorf("first line %q; want the space with empty code",
			lines[0])
	}
	if lines[1] != `'E'	"00"` {
		t.Errorf("second line %q; want E", lines[1])
	}
}
