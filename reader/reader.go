// Package reader implements spec.md §4.2's two-phase reader: a tokenizer
// followed by a recursive-descent, one-token-lookahead parser that turns
// source text into a Value AST, without any awareness of which lists happen
// to be special forms — that classification belongs to eval.
package reader

import (
	"strconv"
	"strings"

	"github.com/scmgo/scmrepl/scmerr"
	"github.com/scmgo/scmrepl/value"
)

// Read tokenizes and parses a single expression out of text, tagging any
// lexical error with source for diagnostics. It is the entry point the REPL
// driver calls once per input line.
func Read(source, text string) (value.Value, error) {
	tokens, err := tokenize(source, text)
	if err != nil {
		return value.Nil, err
	}
	p := &parser{source: source, tokens: tokens}
	return p.readExpr()
}

// ReadOne reads a single leading expression out of text and reports whatever
// tokens remain after it, rejoined with single spaces — adequate for feeding
// back into another ReadOne call, though not a byte-for-byte echo of the
// original spacing. ok is false when text holds no more tokens at all, which
// lets eval.EvalAll stop without treating trailing whitespace as an error.
func ReadOne(source, text string) (expr value.Value, rest string, ok bool, err error) {
	tokens, err := tokenize(source, text)
	if err != nil {
		return value.Nil, "", false, err
	}
	if len(tokens) == 0 {
		return value.Nil, "", false, nil
	}
	p := &parser{source: source, tokens: tokens}
	expr, err = p.readExpr()
	if err != nil {
		return value.Nil, "", false, err
	}
	return expr, strings.Join(tokens[p.pos:], " "), true, nil
}

// isDelim reports whether ch splits tokens: '(', ')', any whitespace, or the
// quote prefix '\''. spec.md names '(' ')' space and '\'' as the delimiter
// set; ordinary whitespace variants (tab, CR, LF) are treated the same way,
// matching the teacher's own tokenizer (scm/parser.go) in spirit.
func isDelim(ch byte) bool {
	switch ch {
	case '(', ')', '\'', ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// tokenize performs the lexical analysis pass: '(' and ')' are single-
// character tokens, '\'' is the quote token, a "..." run (quote marks
// included in the stored token, per spec.md) is a string token, and any
// other maximal run of non-delimiter characters is an atom token.
func tokenize(source, s string) ([]string, error) {
	var tokens []string
	i, n := 0, len(s)
	for i < n {
		ch := s[i]
		switch {
		case isSpace(ch):
			i++
		case ch == '(' || ch == ')':
			tokens = append(tokens, string(ch))
			i++
		case ch == '\'':
			tokens = append(tokens, "'")
			i++
		case ch == '"':
			j := i + 1
			for j < n && s[j] != '"' {
				j++
			}
			if j >= n {
				return nil, scmerr.Lexicalf("unterminated string literal in %s", source)
			}
			tokens = append(tokens, s[i:j+1])
			i = j + 1
		default:
			j := i
			for j < n && !isDelim(s[j]) {
				j++
			}
			tokens = append(tokens, s[i:j])
			i = j
		}
	}
	return tokens, nil
}

// parser is the recursive-descent, one-token-lookahead reader over an
// already-tokenized line.
type parser struct {
	source string
	tokens []string
	pos    int
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

func (p *parser) advance() (string, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// readExpr implements spec.md's `read`: a leading '\'' desugars to a two-
// element (quote E) list, a leading '(' hands off to readPair, a stray ')' is
// a lexical error, anything else is an atom.
func (p *parser) readExpr() (value.Value, error) {
	tok, ok := p.advance()
	if !ok {
		return value.Nil, scmerr.Lexicalf("unexpected end of input in %s", p.source)
	}
	switch tok {
	case "'":
		quoted, err := p.readExpr()
		if err != nil {
			return value.Nil, err
		}
		return value.List(value.NewSymbol("quote"), quoted), nil
	case "(":
		return p.readPair()
	case ")":
		return value.Nil, scmerr.Lexicalf("unmatched ) in %s", p.source)
	default:
		return readAtom(tok), nil
	}
}

// readPair implements spec.md's `read-pair`: a leading ')' closes the list
// as Nil, otherwise one expression is read as the head and the remainder is
// read recursively as the tail.
func (p *parser) readPair() (value.Value, error) {
	tok, ok := p.peek()
	if !ok {
		return value.Nil, scmerr.Lexicalf("expecting matching ) in %s", p.source)
	}
	if tok == ")" {
		p.advance()
		return value.Nil, nil
	}
	head, err := p.readExpr()
	if err != nil {
		return value.Nil, err
	}
	tail, err := p.readPair()
	if err != nil {
		return value.Nil, err
	}
	return value.Cons(head, tail), nil
}

// readAtom implements spec.md's `read-atom`: a leading digit, or a leading
// '-' followed by a digit, is an Integer; a leading '"' is a String (quote
// marks retained, per spec.md — the printer is responsible for stripping
// them on display, see SPEC_FULL.md §3); anything else is a Symbol.
func readAtom(tok string) value.Value {
	if len(tok) > 0 && (isDigit(tok[0]) || (tok[0] == '-' && len(tok) > 1 && isDigit(tok[1]))) {
		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return value.NewInteger(i)
		}
	}
	if len(tok) > 0 && tok[0] == '"' {
		return value.NewString(tok)
	}
	return value.NewSymbol(tok)
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
