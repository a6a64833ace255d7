package token

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// Reader is an incremental JSON token reader with path tracking.
// It wraps a jsontext.Decoder and keeps its own frame stack so Path can
// report the location of the value currently being read in the
// "$.member.list[2]" form used by decode error messages.
type Reader struct {
	dec   *jsontext.Decoder
	stack []frame
}

// frame records position within one open object or array.
type frame struct {
	inArray bool
	name    string // last member name read, object frames only
	index   int    // elements completed so far, array frames only
	pending bool   // a member name was read but its value not yet consumed
}

// NewReader creates a Reader consuming from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: jsontext.NewDecoder(r)}
}

// NewStringReader creates a Reader over an in-memory JSON document.
func NewStringReader(s string) *Reader {
	return NewReader(strings.NewReader(s))
}

// Peek reports the kind of the next token without consuming it.
func (r *Reader) Peek() Kind {
	k := kindOf(r.dec.PeekKind())
	if k == String && r.expectName() {
		return Name
	}

	return k
}

// expectName reports whether the cursor sits where an object member name
// is expected.
func (r *Reader) expectName() bool {
	if len(r.stack) == 0 {
		return false
	}

	top := &r.stack[len(r.stack)-1]

	return !top.inArray && !top.pending
}

// valueDone updates the enclosing frame after a complete value was consumed.
func (r *Reader) valueDone() {
	if len(r.stack) == 0 {
		return
	}

	top := &r.stack[len(r.stack)-1]
	if top.inArray {
		top.index++
	} else {
		top.pending = false
	}
}

// Path returns the JSON path of the value most recently read or about to be
// read, rooted at "$".
func (r *Reader) Path() string {
	var b strings.Builder

	b.WriteByte('$')

	for i := range r.stack {
		f := &r.stack[i]
		if f.inArray {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(f.index))
			b.WriteByte(']')
		} else if f.name != "" {
			b.WriteByte('.')
			b.WriteString(f.name)
		}
	}

	return b.String()
}

// BeginObject consumes an object-begin token.
func (r *Reader) BeginObject() error {
	tok, err := r.dec.ReadToken()
	if err != nil {
		return err
	}

	if tok.Kind() != '{' {
		return fmt.Errorf("expected begin object at %s, got %s", r.Path(), kindOf(tok.Kind()))
	}

	r.stack = append(r.stack, frame{})

	return nil
}

// EndObject consumes an object-end token.
func (r *Reader) EndObject() error {
	tok, err := r.dec.ReadToken()
	if err != nil {
		return err
	}

	if tok.Kind() != '}' {
		return fmt.Errorf("expected end object at %s, got %s", r.Path(), kindOf(tok.Kind()))
	}

	r.stack = r.stack[:len(r.stack)-1]
	r.valueDone()

	return nil
}

// BeginArray consumes an array-begin token.
func (r *Reader) BeginArray() error {
	tok, err := r.dec.ReadToken()
	if err != nil {
		return err
	}

	if tok.Kind() != '[' {
		return fmt.Errorf("expected begin array at %s, got %s", r.Path(), kindOf(tok.Kind()))
	}

	r.stack = append(r.stack, frame{inArray: true})

	return nil
}

// EndArray consumes an array-end token.
func (r *Reader) EndArray() error {
	tok, err := r.dec.ReadToken()
	if err != nil {
		return err
	}

	if tok.Kind() != ']' {
		return fmt.Errorf("expected end array at %s, got %s", r.Path(), kindOf(tok.Kind()))
	}

	r.stack = r.stack[:len(r.stack)-1]
	r.valueDone()

	return nil
}

// More reports whether the enclosing object or array has further members
// or elements.
func (r *Reader) More() bool {
	switch r.dec.PeekKind() {
	case '}', ']', 0:
		return false
	default:
		return true
	}
}

// NextName consumes and returns an object member name.
func (r *Reader) NextName() (string, error) {
	tok, err := r.dec.ReadToken()
	if err != nil {
		return "", err
	}

	if tok.Kind() != '"' {
		return "", fmt.Errorf("expected name at %s, got %s", r.Path(), kindOf(tok.Kind()))
	}

	name := tok.String()

	if len(r.stack) > 0 {
		top := &r.stack[len(r.stack)-1]
		top.name = name
		top.pending = true
	}

	return name, nil
}

// NextString consumes and returns a string value.
func (r *Reader) NextString() (string, error) {
	tok, err := r.dec.ReadToken()
	if err != nil {
		return "", err
	}

	if tok.Kind() != '"' {
		return "", fmt.Errorf("expected string at %s, got %s", r.Path(), kindOf(tok.Kind()))
	}

	r.valueDone()

	return tok.String(), nil
}

// NextInt consumes and returns an integer number value.
func (r *Reader) NextInt() (int64, error) {
	tok, err := r.dec.ReadToken()
	if err != nil {
		return 0, err
	}

	if tok.Kind() != '0' {
		return 0, fmt.Errorf("expected number at %s, got %s", r.Path(), kindOf(tok.Kind()))
	}

	r.valueDone()

	return tok.Int(), nil
}

// NextFloat consumes and returns a number value.
func (r *Reader) NextFloat() (float64, error) {
	tok, err := r.dec.ReadToken()
	if err != nil {
		return 0, err
	}

	if tok.Kind() != '0' {
		return 0, fmt.Errorf("expected number at %s, got %s", r.Path(), kindOf(tok.Kind()))
	}

	r.valueDone()

	return tok.Float(), nil
}

// NextBool consumes and returns a boolean value.
func (r *Reader) NextBool() (bool, error) {
	tok, err := r.dec.ReadToken()
	if err != nil {
		return false, err
	}

	if k := tok.Kind(); k != 't' && k != 'f' {
		return false, fmt.Errorf("expected boolean at %s, got %s", r.Path(), kindOf(tok.Kind()))
	}

	r.valueDone()

	return tok.Bool(), nil
}

// NextNull consumes a null literal.
func (r *Reader) NextNull() error {
	tok, err := r.dec.ReadToken()
	if err != nil {
		return err
	}

	if tok.Kind() != 'n' {
		return fmt.Errorf("expected null at %s, got %s", r.Path(), kindOf(tok.Kind()))
	}

	r.valueDone()

	return nil
}

// SkipValue consumes and discards the next value and its entire subtree.
func (r *Reader) SkipValue() error {
	if err := r.dec.SkipValue(); err != nil {
		return err
	}

	r.valueDone()

	return nil
}
