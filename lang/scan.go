package lang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/

import (
	"strconv"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/narop-lang/narop"
)

// The token kinds of the expression language.
const (
	EOFToken int = iota
	IdentToken
	NumberToken
	StringToken
	OpToken
	LParenToken
	RParenToken
)

// Token is the token type produced by the scanner. It implements
// narop.Operand, so identifier and literal tokens sit directly at the
// leaves of expression trees.
type Token struct {
	Kind   int
	lexeme string
	value  interface{}
	span   narop.Span
}

func (t Token) Lexeme() string {
	return t.lexeme
}

func (t Token) Value() interface{} {
	return t.value
}

func (t Token) Span() narop.Span {
	return t.span
}

var _ narop.Operand = Token{}

// --- Lexer -----------------------------------------------------------------

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time compilation of the DFA

func exprLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), kind(IdentToken))
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), kind(NumberToken))
		lexer.Add([]byte(`"[^"]*"`), kind(StringToken))
		lexer.Add([]byte(`\+|\-|\*|/|<|>|=|~`), kind(OpToken))
		lexer.Add([]byte(`\(`), kind(LParenToken))
		lexer.Add([]byte(`\)`), kind(RParenToken))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexerErr = lexer.Compile()
		if lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// kind is a pre-defined action which wraps a scanned match into a token.
func kind(k int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(k, string(m.Bytes), m), nil
	}
}

// skip is a pre-defined action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// --- Scanner ---------------------------------------------------------------

// Scanner tokenizes one input expression.
type Scanner struct {
	scanner *lexmachine.Scanner
	Error   func(error) // error handler
}

// NewScanner creates a scanner for a given input.
func NewScanner(input string) (*Scanner, error) {
	lx, err := exprLexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, Error: logError}, nil
}

// Default error reporting function for scanners.
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// NextToken returns the next input token, with Kind set to EOFToken at the
// end of the input.
func (s *Scanner) NextToken() Token {
	tok, err, eof := s.scanner.Next()
	for err != nil {
		s.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			s.scanner.TC = ui.FailTC
		}
		tok, err, eof = s.scanner.Next()
	}
	if eof {
		tracer().Debugf("scanner reached end of input")
		return Token{Kind: EOFToken}
	}
	return wrapToken(tok.(*lexmachine.Token))
}

func wrapToken(t *lexmachine.Token) Token {
	lexeme := string(t.Lexeme)
	token := Token{
		Kind:   t.Type,
		lexeme: lexeme,
		span:   narop.Span{uint64(t.TC), uint64(t.TC + len(lexeme))},
	}
	switch t.Type {
	case NumberToken:
		if v, err := strconv.ParseFloat(lexeme, 64); err == nil {
			token.value = v
		}
	case StringToken:
		token.value = strings.Trim(lexeme, `"`)
	}
	tracer().Debugf("token %q @%v", token.lexeme, token.span)
	return token
}
