package token

import (
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// Writer is an incremental JSON token writer.
//
// SerializeNulls controls whether object adapters emit members whose value
// is null. It is a property of the writer, set per encode call; adapters
// never carry it, so toggling the mode for one call cannot leak into
// concurrent users of a shared adapter.
type Writer struct {
	enc *jsontext.Encoder

	SerializeNulls bool
}

// NewWriter creates a Writer emitting compact JSON to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: jsontext.NewEncoder(w)}
}

// Name writes an object member name.
func (w *Writer) Name(name string) error {
	return w.enc.WriteToken(jsontext.String(name))
}

// String writes a string value.
func (w *Writer) String(v string) error {
	return w.enc.WriteToken(jsontext.String(v))
}

// Int writes an integer number value.
func (w *Writer) Int(v int64) error {
	return w.enc.WriteToken(jsontext.Int(v))
}

// Float writes a number value.
func (w *Writer) Float(v float64) error {
	return w.enc.WriteToken(jsontext.Float(v))
}

// Bool writes a boolean value.
func (w *Writer) Bool(v bool) error {
	return w.enc.WriteToken(jsontext.Bool(v))
}

// Null writes a null literal.
func (w *Writer) Null() error {
	return w.enc.WriteToken(jsontext.Null)
}

// BeginObject writes an object-begin token.
func (w *Writer) BeginObject() error {
	return w.enc.WriteToken(jsontext.ObjectStart)
}

// EndObject writes an object-end token.
func (w *Writer) EndObject() error {
	return w.enc.WriteToken(jsontext.ObjectEnd)
}

// BeginArray writes an array-begin token.
func (w *Writer) BeginArray() error {
	return w.enc.WriteToken(jsontext.ArrayStart)
}

// EndArray writes an array-end token.
func (w *Writer) EndArray() error {
	return w.enc.WriteToken(jsontext.ArrayEnd)
}
