package token

import "github.com/go-json-experiment/json/jsontext"

// Kind classifies the next item in the token stream.
type Kind int

const (
	EOF Kind = iota
	Null
	Bool
	Number
	String
	Name
	BeginObject
	EndObject
	BeginArray
	EndArray
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Name:
		return "name"
	case BeginObject:
		return "begin object"
	case EndObject:
		return "end object"
	case BeginArray:
		return "begin array"
	case EndArray:
		return "end array"
	default:
		return "unknown"
	}
}

// kindOf maps a jsontext kind to a token Kind. Whether a quoted string is a
// member name or a value depends on reader position, so '"' maps to String
// and the reader promotes it to Name from its own frame state.
func kindOf(k jsontext.Kind) Kind {
	switch k {
	case 'n':
		return Null
	case 'f', 't':
		return Bool
	case '0':
		return Number
	case '"':
		return String
	case '{':
		return BeginObject
	case '}':
		return EndObject
	case '[':
		return BeginArray
	case ']':
		return EndArray
	default:
		return EOF
	}
}
