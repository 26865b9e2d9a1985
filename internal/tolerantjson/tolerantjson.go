// Package tolerantjson decodes pasted text of unknown strictness into a
// generic value tree.
//
// A strict encoding/json pass runs first. When that fails, a small
// recursive-descent parser retries with a relaxed grammar that additionally
// accepts unquoted and single-quoted object keys, single-quoted strings,
// and trailing commas in arrays and objects.
//
// The relaxed parser constructs literal data only (objects, arrays, strings,
// numbers, booleans, null). It has no notion of identifiers, operators, or
// function calls, so it is structurally incapable of evaluating expressions
// or executing code. That property is a hard requirement: pasted exports are
// untrusted input.
package tolerantjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrEmptyInput is returned when the input contains no data at all.
var ErrEmptyInput = errors.New("tolerantjson: empty input")

// Decode parses a text blob into a value tree of nested
// map[string]any / []any / string / float64 / bool / nil.
// Strict JSON is attempted first; on failure the relaxed grammar is tried.
// If both fail, an error is returned and no value tree is produced.
func Decode(input string) (any, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	var strict any
	if err := json.Unmarshal([]byte(trimmed), &strict); err == nil {
		return strict, nil
	}

	p := &parser{src: trimmed}
	p.skipSpace()
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected trailing content")
	}
	return value, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

func (p *parser) next() rune {
	if p.eof() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += size
	return r
}

func (p *parser) skipSpace() {
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("tolerantjson: %s at offset %d", fmt.Sprintf(format, args...), p.pos)
}

func (p *parser) parseValue() (any, error) {
	if p.eof() {
		return nil, p.errorf("unexpected end of input")
	}

	switch r := p.peek(); {
	case r == '{':
		return p.parseObject()
	case r == '[':
		return p.parseArray()
	case r == '"' || r == '\'':
		return p.parseString()
	case r == '-' || (r >= '0' && r <= '9'):
		return p.parseNumber()
	case r == 't' || r == 'f' || r == 'n':
		return p.parseLiteral()
	default:
		return nil, p.errorf("unexpected character %q", r)
	}
}

func (p *parser) parseObject() (map[string]any, error) {
	p.next() // consume '{'
	obj := make(map[string]any)

	p.skipSpace()
	if p.peek() == '}' {
		p.next()
		return obj, nil
	}

	for {
		p.skipSpace()

		// Trailing comma: `{"a": 1,}` leaves us looking at the brace.
		if p.peek() == '}' {
			p.next()
			return obj, nil
		}

		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}

		p.skipSpace()
		if p.peek() != ':' {
			return nil, p.errorf("expected ':' after object key %q", key)
		}
		p.next()

		p.skipSpace()
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj[key] = value

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.next()
		case '}':
			p.next()
			return obj, nil
		default:
			return nil, p.errorf("expected ',' or '}' in object")
		}
	}
}

func (p *parser) parseArray() ([]any, error) {
	p.next() // consume '['
	arr := make([]any, 0)

	p.skipSpace()
	if p.peek() == ']' {
		p.next()
		return arr, nil
	}

	for {
		p.skipSpace()

		if p.peek() == ']' {
			p.next()
			return arr, nil
		}

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.next()
		case ']':
			p.next()
			return arr, nil
		default:
			return nil, p.errorf("expected ',' or ']' in array")
		}
	}
}

// parseKey accepts quoted keys (single or double) and bare identifier keys.
func (p *parser) parseKey() (string, error) {
	r := p.peek()
	if r == '"' || r == '\'' {
		return p.parseString()
	}
	if !isIdentStart(r) {
		return "", p.errorf("expected object key")
	}

	start := p.pos
	for !p.eof() && isIdentPart(p.peek()) {
		p.next()
	}
	return p.src[start:p.pos], nil
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func (p *parser) parseString() (string, error) {
	quote := p.next()

	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated string")
		}
		r := p.next()

		switch r {
		case quote:
			return b.String(), nil
		case '\\':
			if p.eof() {
				return "", p.errorf("unterminated escape sequence")
			}
			esc := p.next()
			switch esc {
			case '"', '\'', '\\', '/':
				b.WriteRune(esc)
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				decoded, err := p.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				b.WriteRune(decoded)
			default:
				return "", p.errorf("invalid escape character %q", esc)
			}
		default:
			b.WriteRune(r)
		}
	}
}

// parseUnicodeEscape decodes the 4-hex-digit payload of a \u escape.
// A high surrogate followed by a \u-escaped low surrogate is combined
// into the full code point, as encoding/json does; an unpaired
// surrogate half becomes the replacement character.
func (p *parser) parseUnicodeEscape() (rune, error) {
	r1, err := p.parseHex4()
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(r1) {
		return r1, nil
	}
	if strings.HasPrefix(p.src[p.pos:], `\u`) {
		start := p.pos
		p.pos += 2
		r2, err := p.parseHex4()
		if err != nil {
			return 0, err
		}
		if combined := utf16.DecodeRune(r1, r2); combined != utf8.RuneError {
			return combined, nil
		}
		p.pos = start
	}
	return utf8.RuneError, nil
}

func (p *parser) parseHex4() (rune, error) {
	if p.pos+4 > len(p.src) {
		return 0, p.errorf("truncated unicode escape")
	}
	code, err := strconv.ParseUint(p.src[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, p.errorf("invalid unicode escape")
	}
	p.pos += 4
	return rune(code), nil
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos

	if p.peek() == '-' {
		p.next()
	}
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		p.next()
	}
	if p.peek() == '.' {
		p.next()
		for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
			p.next()
		}
	}
	if r := p.peek(); r == 'e' || r == 'E' {
		p.next()
		if r := p.peek(); r == '+' || r == '-' {
			p.next()
		}
		for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
			p.next()
		}
	}

	text := p.src[start:p.pos]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, p.errorf("invalid number %q", text)
	}
	return value, nil
}

func (p *parser) parseLiteral() (any, error) {
	for _, lit := range []struct {
		text  string
		value any
	}{
		{"true", true},
		{"false", false},
		{"null", nil},
	} {
		if strings.HasPrefix(p.src[p.pos:], lit.text) {
			end := p.pos + len(lit.text)
			// "nullify" must not parse as null followed by garbage.
			if end < len(p.src) {
				r, _ := utf8.DecodeRuneInString(p.src[end:])
				if isIdentPart(r) {
					break
				}
			}
			p.pos = end
			return lit.value, nil
		}
	}
	return nil, p.errorf("invalid literal")
}
