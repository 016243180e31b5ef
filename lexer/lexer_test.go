package lexer

import (
	"testing"

	"github.com/akashmaji946/lodestone/token"
	"github.com/stretchr/testify/assert"
)

func TestNextTokenCoversEveryTokenKind(t *testing.T) {
	input := `let five := 5;
let ten := 10;
Object point { x: 1, y: 2 }
fun add(x, y) { return x + y; }
result := add(five, ten);
!-/*5;
5 < 10 > 5;
if (5 < 10) {
	return true;
} else {
	return false;
}
10 == 10;
10 != 9;
while (x < 10) { x = x + 1; }
a.b.c := 1;
arr := [1, 2, 3];
x := _;
"hello\nworld";
import "other.ldst";
let y :=: x;
`

	expected := []token.Token{
		{Type: token.LET, Literal: "let"},
		{Type: token.IDENT, Literal: "five"},
		{Type: token.ASSIGN, Literal: ":="},
		{Type: token.INT, Literal: "5"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.LET, Literal: "let"},
		{Type: token.IDENT, Literal: "ten"},
		{Type: token.ASSIGN, Literal: ":="},
		{Type: token.INT, Literal: "10"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.OBJECT, Literal: "Object"},
		{Type: token.IDENT, Literal: "point"},
		{Type: token.LBRACE, Literal: "{"},
		{Type: token.IDENT, Literal: "x"},
		{Type: token.COLON, Literal: ":"},
		{Type: token.INT, Literal: "1"},
		{Type: token.COMMA, Literal: ","},
		{Type: token.IDENT, Literal: "y"},
		{Type: token.COLON, Literal: ":"},
		{Type: token.INT, Literal: "2"},
		{Type: token.RBRACE, Literal: "}"},
		{Type: token.FUNCTION, Literal: "fun"},
		{Type: token.IDENT, Literal: "add"},
		{Type: token.LPAREN, Literal: "("},
		{Type: token.IDENT, Literal: "x"},
		{Type: token.COMMA, Literal: ","},
		{Type: token.IDENT, Literal: "y"},
		{Type: token.RPAREN, Literal: ")"},
		{Type: token.LBRACE, Literal: "{"},
		{Type: token.RETURN, Literal: "return"},
		{Type: token.IDENT, Literal: "x"},
		{Type: token.PLUS, Literal: "+"},
		{Type: token.IDENT, Literal: "y"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.RBRACE, Literal: "}"},
		{Type: token.IDENT, Literal: "result"},
		{Type: token.ASSIGN, Literal: ":="},
		{Type: token.IDENT, Literal: "add"},
		{Type: token.LPAREN, Literal: "("},
		{Type: token.IDENT, Literal: "five"},
		{Type: token.COMMA, Literal: ","},
		{Type: token.IDENT, Literal: "ten"},
		{Type: token.RPAREN, Literal: ")"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.BANG, Literal: "!"},
		{Type: token.MINUS, Literal: "-"},
		{Type: token.SLASH, Literal: "/"},
		{Type: token.ASTERISK, Literal: "*"},
		{Type: token.INT, Literal: "5"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.INT, Literal: "5"},
		{Type: token.LT, Literal: "<"},
		{Type: token.INT, Literal: "10"},
		{Type: token.GT, Literal: ">"},
		{Type: token.INT, Literal: "5"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.IF, Literal: "if"},
		{Type: token.LPAREN, Literal: "("},
		{Type: token.INT, Literal: "5"},
		{Type: token.LT, Literal: "<"},
		{Type: token.INT, Literal: "10"},
		{Type: token.RPAREN, Literal: ")"},
		{Type: token.LBRACE, Literal: "{"},
		{Type: token.RETURN, Literal: "return"},
		{Type: token.TRUE, Literal: "true"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.RBRACE, Literal: "}"},
		{Type: token.ELSE, Literal: "else"},
		{Type: token.LBRACE, Literal: "{"},
		{Type: token.RETURN, Literal: "return"},
		{Type: token.FALSE, Literal: "false"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.RBRACE, Literal: "}"},
		{Type: token.INT, Literal: "10"},
		{Type: token.EQ, Literal: "=="},
		{Type: token.INT, Literal: "10"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.INT, Literal: "10"},
		{Type: token.NOT_EQ, Literal: "!="},
		{Type: token.INT, Literal: "9"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.WHILE, Literal: "while"},
		{Type: token.LPAREN, Literal: "("},
		{Type: token.IDENT, Literal: "x"},
		{Type: token.LT, Literal: "<"},
		{Type: token.INT, Literal: "10"},
		{Type: token.RPAREN, Literal: ")"},
		{Type: token.LBRACE, Literal: "{"},
		{Type: token.IDENT, Literal: "x"},
		{Type: token.REASSIGN, Literal: "="},
		{Type: token.IDENT, Literal: "x"},
		{Type: token.PLUS, Literal: "+"},
		{Type: token.INT, Literal: "1"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.RBRACE, Literal: "}"},
		{Type: token.IDENT, Literal: "a"},
		{Type: token.SLOT, Literal: "."},
		{Type: token.IDENT, Literal: "b"},
		{Type: token.SLOT, Literal: "."},
		{Type: token.IDENT, Literal: "c"},
		{Type: token.ASSIGN, Literal: ":="},
		{Type: token.INT, Literal: "1"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.IDENT, Literal: "arr"},
		{Type: token.ASSIGN, Literal: ":="},
		{Type: token.LBRACKET, Literal: "["},
		{Type: token.INT, Literal: "1"},
		{Type: token.COMMA, Literal: ","},
		{Type: token.INT, Literal: "2"},
		{Type: token.COMMA, Literal: ","},
		{Type: token.INT, Literal: "3"},
		{Type: token.RBRACKET, Literal: "]"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.IDENT, Literal: "x"},
		{Type: token.ASSIGN, Literal: ":="},
		{Type: token.UNDERSCORE, Literal: "_"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.STRING, Literal: "hello\nworld"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.IMPORT, Literal: "import"},
		{Type: token.STRING, Literal: "other.ldst"},
		{Type: token.SEMICOLON, Literal: ";"},
		{Type: token.LET, Literal: "let"},
		{Type: token.IDENT, Literal: "y"},
		{Type: token.CLONE, Literal: ":=:"},
		{Type: token.IDENT, Literal: "x"},
		{Type: token.SEMICOLON, Literal: ";"},
	}

	lex := NewLexer(input)
	for i, want := range expected {
		got := lex.NextToken()
		assert.Equalf(t, want.Type, got.Type, "token %d type", i)
		assert.Equalf(t, want.Literal, got.Literal, "token %d literal", i)
	}
	assert.Equal(t, token.EOF, lex.NextToken().Type)
}

func TestNextTokenTracksLineAndColumn(t *testing.T) {
	lex := NewLexer("a\nb")
	first := lex.NextToken()
	assert.Equal(t, 1, first.Line)
	second := lex.NextToken()
	assert.Equal(t, 2, second.Line)
}

func TestNextTokenIllegalOnUnterminatedString(t *testing.T) {
	lex := NewLexer(`"unterminated`)
	tok := lex.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Type)
}

func TestConsumeTokensStopsAtEOF(t *testing.T) {
	lex := NewLexer("let x := 1;")
	toks := lex.ConsumeTokens()
	assert.Len(t, toks, 5)
}
