// Package expr evaluates infix arithmetic over + - * / and parentheses with
// the usual precedence and left associativity. Nothing else is accepted.
package expr

import (
	"fmt"
)

// Evaluate parses and evaluates src. Every failure is an *EvaluationError.
func Evaluate(src string) (Value, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return Value{}, err
	}

	p := &parser{src: src, tokens: tokens}
	v, err := p.parseExpr()
	if err != nil {
		return Value{}, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return Value{}, p.unexpected(tok)
	}
	return v, nil
}

type parser struct {
	src    string
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

// expr = term {("+" | "-") term}
func (p *parser) parseExpr() (Value, error) {
	left, err := p.parseTerm()
	if err != nil {
		return Value{}, err
	}

	for {
		op := p.peek()
		if op.kind != tokenPlus && op.kind != tokenMinus {
			return left, nil
		}
		p.next()

		right, err := p.parseTerm()
		if err != nil {
			return Value{}, err
		}

		if op.kind == tokenPlus {
			left, err = add(left, right)
		} else {
			left, err = subtract(left, right)
		}
		if err != nil {
			return Value{}, p.fail(op, err)
		}
	}
}

// term = unary {("*" | "/") unary}
func (p *parser) parseTerm() (Value, error) {
	left, err := p.parseUnary()
	if err != nil {
		return Value{}, err
	}

	for {
		op := p.peek()
		if op.kind != tokenStar && op.kind != tokenSlash {
			return left, nil
		}
		p.next()

		right, err := p.parseUnary()
		if err != nil {
			return Value{}, err
		}

		if op.kind == tokenStar {
			left, err = multiply(left, right)
		} else {
			left, err = divide(left, right)
		}
		if err != nil {
			return Value{}, p.fail(op, err)
		}
	}
}

// unary = ("+" | "-") unary | primary
func (p *parser) parseUnary() (Value, error) {
	switch p.peek().kind {
	case tokenPlus:
		p.next()
		return p.parseUnary()
	case tokenMinus:
		p.next()
		v, err := p.parseUnary()
		if err != nil {
			return Value{}, err
		}
		return negate(v), nil
	default:
		return p.parsePrimary()
	}
}

// primary = number | "(" expr ")"
func (p *parser) parsePrimary() (Value, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNumber:
		v, err := parseLiteral(tok.text)
		if err != nil {
			return Value{}, p.fail(tok, fmt.Errorf("%w: bad number %q", ErrSyntax, tok.text))
		}
		return v, nil
	case tokenLParen:
		v, err := p.parseExpr()
		if err != nil {
			return Value{}, err
		}
		if closing := p.next(); closing.kind != tokenRParen {
			return Value{}, p.unexpected(closing)
		}
		return v, nil
	default:
		return Value{}, p.unexpected(tok)
	}
}

func (p *parser) unexpected(tok token) error {
	return p.fail(tok, fmt.Errorf("%w: unexpected %s", ErrSyntax, tok.kind))
}

func (p *parser) fail(tok token, err error) error {
	return &EvaluationError{Expression: p.src, Offset: tok.offset, Err: err}
}
