package expr

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLParen
	tokenRParen
	tokenEOF
)

func (k tokenKind) String() string {
	switch k {
	case tokenNumber:
		return "number"
	case tokenPlus:
		return "'+'"
	case tokenMinus:
		return "'-'"
	case tokenStar:
		return "'*'"
	case tokenSlash:
		return "'/'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return "end of input"
	}
}

type token struct {
	kind   tokenKind
	text   string
	offset int
}

var operatorTokens = map[byte]tokenKind{
	'+': tokenPlus,
	'-': tokenMinus,
	'*': tokenStar,
	'/': tokenSlash,
	'(': tokenLParen,
	')': tokenRParen,
}

// tokenize splits src into tokens. The result always ends with tokenEOF.
func tokenize(src string) ([]token, error) {
	var tokens []token

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case isDigit(c) || c == '.':
			tok, err := lexNumber(src, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i += len(tok.text)
		default:
			kind, ok := operatorTokens[c]
			if !ok {
				return nil, &EvaluationError{
					Expression: src,
					Offset:     i,
					Err:        fmt.Errorf("%w: unexpected character %q", ErrSyntax, rune(c)),
				}
			}
			tokens = append(tokens, token{kind: kind, text: string(c), offset: i})
			i++
		}
	}

	return append(tokens, token{kind: tokenEOF, offset: len(src)}), nil
}

// lexNumber reads digits with at most one decimal point. "5." and ".5" are
// numbers, a bare "." is not. Integer literals may not carry leading zeros
// unless every digit is zero.
func lexNumber(src string, start int) (token, error) {
	end := start
	digits := 0
	seenPoint := false

	for end < len(src) {
		c := src[end]
		if isDigit(c) {
			digits++
		} else if c == '.' && !seenPoint {
			seenPoint = true
		} else {
			break
		}
		end++
	}

	text := src[start:end]
	if digits == 0 {
		return token{}, &EvaluationError{
			Expression: src,
			Offset:     start,
			Err:        fmt.Errorf("%w: decimal point without digits", ErrSyntax),
		}
	}
	if !seenPoint && len(text) > 1 && text[0] == '0' && strings.Trim(text, "0") != "" {
		return token{}, &EvaluationError{
			Expression: src,
			Offset:     start,
			Err:        fmt.Errorf("%w: leading zeros in integer literal %q", ErrSyntax, text),
		}
	}

	return token{kind: tokenNumber, text: text, offset: start}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
