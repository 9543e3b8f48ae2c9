package symexpr

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Expr = num | var | '(' Group ')'
// Group = op Expr { Expr }    (Prefix)
//       | Expr { Expr } op    (Postfix)

// Notation selects where the operator appears in a parenthesized group.
type Notation int8

const (
	// Prefix notation puts the operator first: (+ x 1).
	Prefix Notation = iota
	// Postfix notation puts the operator last: (x 1 +).
	Postfix
)

func (n Notation) String() string {
	switch n {
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	default:
		return "Notation(" + strconv.Itoa(int(n)) + ")"
	}
}

// Format renders an expression in the notation.
func (n Notation) Format(e Expr) string {
	var b strings.Builder
	e.fmt(&b, n)
	return b.String()
}

// split separates the contents of a group into the operator and its operands.
// group is not empty.
func (n Notation) split(group []item) (item, []item) {
	switch n {
	case Prefix:
		return group[0], group[1:]
	case Postfix:
		return group[len(group)-1], group[:len(group)-1]
	default:
		panic("symexpr: invalid notation " + n.String())
	}
}

// item is an entry on the parse stack.
type item struct {
	kind itemKind
	// text is the source text of open brackets, operators, and leaves. It is
	// empty for reduced groups.
	text string
	op   *Operator
	e    Expr
	// pos is the position of the token, or of the open bracket for a group.
	pos int
}

type itemKind int8

const (
	itemOpen itemKind = iota
	itemOp
	itemExpr
)

// parser holds the state of one call to Parse.
type parser struct {
	notation Notation
	stack    []item
}

// show gets the text of an item for error messages.
func (p *parser) show(it item) string {
	if it.text == "" && it.e != nil {
		return p.notation.Format(it.e)
	}
	return it.text
}

// Parse parses a fully parenthesized expression in the given notation. Any
// error resulting from malformed input is a *ParseError.
func Parse(src io.RuneScanner, n Notation) (Expr, error) {
	scan := lex(src)
	p := parser{notation: n}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			return p.finish()
		}
		if len(p.stack) == 1 && p.stack[0].kind == itemExpr {
			r := []rune(tok.text)
			return nil, &ParseError{
				Kind:     TrailingInput,
				Expected: "end of expression",
				Found:    quote(string(r[0])),
				Col:      tok.pos,
			}
		}
		switch tok.kind {
		case tokenOpen:
			p.stack = append(p.stack, item{kind: itemOpen, text: tok.text, pos: tok.pos})
		case tokenClose:
			if err := p.reduce(tok); err != nil {
				return nil, err
			}
		case tokenIdent:
			it, err := resolve(tok)
			if err != nil {
				return nil, err
			}
			p.stack = append(p.stack, it)
		default:
			panic("symexpr: unknown token: " + tok.String())
		}
	}
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, n Notation) (Expr, error) {
	return Parse(strings.NewReader(src), n)
}

// ParsePrefix parses an expression in prefix notation.
func ParsePrefix(src string) (Expr, error) {
	return ParseString(src, Prefix)
}

// ParsePostfix parses an expression in postfix notation.
func ParsePostfix(src string) (Expr, error) {
	return ParseString(src, Postfix)
}

// resolve classifies an identifier token. Operator symbols stay unresolved
// until their group closes.
func resolve(tok lexToken) (item, error) {
	it := item{kind: itemExpr, text: tok.text, pos: tok.pos}
	if op, ok := operators[tok.text]; ok {
		it.kind = itemOp
		it.op = op
		return it, nil
	}
	if v := lookupVar(tok.text); v != nil {
		it.e = v
		return it, nil
	}
	if isnum(tok.text) {
		f, err := strconv.ParseFloat(tok.text, 64)
		// Out of range literals become infinities or zero, like the nearest
		// float64 would.
		if err == nil || errors.Is(err, strconv.ErrRange) {
			it.e = Num(f)
			return it, nil
		}
	}
	return it, &ParseError{Kind: UnexpectedToken, Found: "unexpected token " + quote(tok.text), Col: tok.pos}
}

// reduce handles a close bracket by replacing everything from the nearest
// open bracket with the operation the group describes.
func (p *parser) reduce(end lexToken) error {
	k := len(p.stack) - 1
	for k >= 0 && p.stack[k].kind != itemOpen {
		k--
	}
	if k < 0 {
		return &ParseError{Kind: UnmatchedCloseParen, Expected: "'('", Found: quote(end.text), Col: end.pos}
	}
	open := p.stack[k]
	group := p.stack[k+1:]
	if len(group) == 0 {
		return &ParseError{Kind: EmptyGroup, Expected: "operation", Found: "empty operation", Col: open.pos}
	}
	opit, rest := p.notation.split(group)
	if opit.kind != itemOp {
		return &ParseError{Kind: UnknownOperator, Expected: "operation", Found: quote(p.show(opit)), Col: opit.pos}
	}
	// Copy the operands out of the stack, which is reused for later tokens.
	args := make([]Expr, len(rest))
	for i, it := range rest {
		if it.kind != itemExpr {
			return &ParseError{Kind: InvalidOperand, Expected: "argument", Found: quote(p.show(it)), Col: it.pos}
		}
		args[i] = it.e
	}
	if !opit.op.CanCall(len(args)) {
		return &ParseError{
			Kind:     WrongOperandCount,
			Expected: operands(opit.op.arity) + " for operation " + opit.op.sym + " at position " + strconv.Itoa(opit.pos),
			Found:    operands(len(args)),
		}
	}
	p.stack = append(p.stack[:k], item{
		kind: itemExpr,
		e:    &Op{op: opit.op, args: args},
		pos:  open.pos,
	})
	return nil
}

// finish checks that the input described exactly one expression.
func (p *parser) finish() (Expr, error) {
	if len(p.stack) == 0 {
		return nil, &ParseError{Kind: EmptyInput, Expected: "expression", Found: "empty input"}
	}
	for k := len(p.stack) - 1; k >= 0; k-- {
		if p.stack[k].kind == itemOpen {
			return nil, &ParseError{Kind: UnmatchedOpenParen, Expected: "')'", Found: "end of input", Col: p.stack[k].pos}
		}
	}
	if len(p.stack) > 1 {
		return nil, &ParseError{Kind: MalformedTopLevel, Expected: "expression of the correct form"}
	}
	it := p.stack[0]
	if it.kind != itemExpr {
		return nil, &ParseError{Kind: UnexpectedToken, Found: "unexpected token " + quote(p.show(it)), Col: it.pos}
	}
	return it.e, nil
}
