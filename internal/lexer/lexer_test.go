package lexer_test

import (
	"testing"

	"phpfix/internal/diag"
	"phpfix/internal/lexer"
	"phpfix/internal/source"
	"phpfix/internal/token"
)

func scanSource(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(src))
	return lexer.Scan(fs.Get(id), lexer.Options{})
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestScanSimpleFunction(t *testing.T) {
	toks := scanSource(t, "<?php\nfunction my_foo($bar) {}\n")

	want := []token.Kind{
		token.OpenTag, token.Whitespace,
		token.KwFunction, token.Whitespace, token.Ident,
		token.LParen, token.Variable, token.RParen,
		token.Whitespace, token.LBrace, token.RBrace,
		token.Whitespace, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}

	if toks[4].Text != "my_foo" {
		t.Errorf("name text = %q", toks[4].Text)
	}
	if toks[6].Text != "$bar" {
		t.Errorf("variable text = %q", toks[6].Text)
	}
}

func TestScanRoundTrip(t *testing.T) {
	sources := []string{
		"<?php\nfunction my_foo($bar) {}\n",
		"<html><?php echo 1; ?></html>",
		"<?php\n/** @param string $a */\nfunction f($a) { return $a . 'x'; }\n",
		"<?php $a = [1, 2.5, 0xFF, \"str\\\"ing\"]; // done\n",
		"<?php\nclass A {\n    public function __construct(private int $x) {}\n}\n",
		"<?php\n$f = fn($x) => $x * 2;\n",
	}
	for _, src := range sources {
		toks := scanSource(t, src)
		s := token.NewStream(toks)
		if got := s.Render(); got != src {
			t.Errorf("round trip mismatch:\n got %q\nwant %q", got, src)
		}
	}
}

func TestScanDocComment(t *testing.T) {
	toks := scanSource(t, "<?php\n/** @param int $x */\nfunction f($x) {}")

	var doc *token.Token
	for i := range toks {
		if toks[i].Kind == token.DocComment {
			doc = &toks[i]
			break
		}
	}
	if doc == nil {
		t.Fatal("no DocComment token found")
	}
	if doc.Text != "/** @param int $x */" {
		t.Errorf("doc text = %q", doc.Text)
	}
}

func TestScanPlainBlockCommentIsNotDoc(t *testing.T) {
	toks := scanSource(t, "<?php /* plain */ /**/")
	for _, tok := range toks {
		if tok.Kind == token.DocComment {
			t.Errorf("unexpected DocComment token %q", tok.Text)
		}
	}
}

func TestScanKeywordsCaseInsensitive(t *testing.T) {
	toks := scanSource(t, "<?php FUNCTION Foo(Array $a, CALLABLE $c) {}")

	if toks[2].Kind != token.KwFunction {
		t.Errorf("token 2 = %v, want KwFunction", toks[2].Kind)
	}
	if toks[2].Text != "FUNCTION" {
		t.Errorf("keyword text = %q, spelling must be preserved", toks[2].Text)
	}

	sawArray, sawCallable := false, false
	for _, tok := range toks {
		switch tok.Kind {
		case token.KwArray:
			sawArray = true
		case token.KwCallable:
			sawCallable = true
		}
	}
	if !sawArray || !sawCallable {
		t.Error("expected array and callable keyword tokens")
	}
}

func TestScanCloseTagReturnsToHTML(t *testing.T) {
	toks := scanSource(t, "<?php echo 1; ?>after<?php echo 2;")

	var sawClose, sawHTML bool
	for _, tok := range toks {
		if tok.Kind == token.CloseTag {
			sawClose = true
		}
		if tok.Kind == token.InlineHTML && tok.Text == "after" {
			sawHTML = true
		}
	}
	if !sawClose || !sawHTML {
		t.Errorf("kinds = %v", kinds(toks))
	}
}

func TestScanUnterminatedStringReports(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.php", []byte("<?php $a = 'oops"))
	bag := diag.NewBag(10)
	lexer.Scan(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	if !bag.HasWarnings() {
		t.Fatal("expected a warning for the unterminated string")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v", bag.Items()[0].Code)
	}
}

func TestScanNullableAndNamespaceTokens(t *testing.T) {
	toks := scanSource(t, "<?php function f(?\\Foo\\Bar $x) {}")

	want := []token.Kind{
		token.OpenTag, token.Whitespace, token.KwFunction, token.Whitespace,
		token.Ident, token.LParen, token.Question, token.Backslash,
		token.Ident, token.Backslash, token.Ident, token.Whitespace,
		token.Variable, token.RParen, token.Whitespace,
		token.LBrace, token.RBrace, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanNumbers(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
		text string
	}{
		{"<?php 42;", token.IntLit, "42"},
		{"<?php 0xFF;", token.IntLit, "0xFF"},
		{"<?php 0b1010;", token.IntLit, "0b1010"},
		{"<?php 1_000_000;", token.IntLit, "1_000_000"},
		{"<?php 3.14;", token.FloatLit, "3.14"},
		{"<?php 1e10;", token.FloatLit, "1e10"},
		{"<?php .5;", token.FloatLit, ".5"},
	}
	for _, tc := range cases {
		toks := scanSource(t, tc.src)
		if toks[2].Kind != tc.kind || toks[2].Text != tc.text {
			t.Errorf("%s: got %v %q, want %v %q", tc.src, toks[2].Kind, toks[2].Text, tc.kind, tc.text)
		}
	}
}

func TestNextAfterEOF(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.php", []byte("<?php"))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	for {
		if lx.Next().Kind == token.EOF {
			break
		}
	}
	if lx.Next().Kind != token.EOF {
		t.Error("Next after EOF must keep returning EOF")
	}
}
