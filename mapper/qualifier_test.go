package mapper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonbind/schema"
	"jsonbind/token"
)

// uppercased declares one member whose string adapter is narrowed by an
// @uppercase qualifier.
type uppercased struct {
	Code string
}

func uppercasedDescriptor() *schema.ObjectDescriptor {
	return &schema.ObjectDescriptor{
		TypeName: "Uppercased",
		Members: []schema.MemberDescriptor{
			{
				Name: "code", Kind: schema.Param, Type: schema.String(),
				Qualifiers: []schema.Qualifier{schema.Qual("uppercase")},
				Get:        func(v any) any { return v.(*uppercased).Code },
			},
		},
		New: func(a *schema.Args) any {
			return &uppercased{Code: schema.Arg(a, 0, "")}
		},
	}
}

func upperDecode(r *token.Reader) (any, error) {
	s, err := r.NextString()
	if err != nil {
		return nil, err
	}

	return strings.ToUpper(s), nil
}

func upperEncode(w *token.Writer, v any) error {
	return w.String(strings.ToUpper(v.(string)))
}

func TestQualifiedMemberUsesCustomAdapter(t *testing.T) {
	m, err := NewBuilder().
		RegisterDescriptor(uppercasedDescriptor()).
		Register(schema.String(), []schema.Qualifier{schema.Qual("uppercase")}, upperDecode, upperEncode).
		Build()
	require.NoError(t, err)

	ad, err := For[uppercased](m, schema.Object("Uppercased"))
	require.NoError(t, err)

	out, err := ad.FromJSON(`{"code":"abc"}`)
	require.NoError(t, err)
	assert.Equal(t, "ABC", out.Code)

	doc, err := ad.ToJSON(&uppercased{Code: "def"})
	require.NoError(t, err)
	assert.Equal(t, `{"code":"DEF"}`, doc)
}

func TestUnmatchedQualifiersFailResolution(t *testing.T) {
	m, err := NewBuilder().Build()
	require.NoError(t, err)

	_, err = m.Adapter(schema.String(), schema.Qual("uppercase"))
	require.Error(t, err)

	var nae *NoAdapterError
	require.ErrorAs(t, err, &nae)
	assert.Contains(t, nae.Error(), "no adapter for type with qualifiers")
}

func TestQualifiedMemberWithoutCustomAdapterFailsBuild(t *testing.T) {
	// The member's qualifier set matches no registration, which is
	// statically detectable, so the build fails rather than first use.
	_, err := NewBuilder().RegisterDescriptor(uppercasedDescriptor()).Build()
	require.Error(t, err)

	var nae *NoAdapterError
	require.ErrorAs(t, err, &nae)
	assert.Contains(t, err.Error(), `member "code" of Uppercased`)
}

func TestParameterizedQualifiersAreDistinctKeys(t *testing.T) {
	truncate := func(n int) DecodeFunc {
		return func(r *token.Reader) (any, error) {
			s, err := r.NextString()
			if err != nil {
				return nil, err
			}

			if len(s) > n {
				s = s[:n]
			}

			return s, nil
		}
	}

	m, err := NewBuilder().
		Register(schema.String(), []schema.Qualifier{schema.QualArg("truncate", "2")}, truncate(2), nil).
		Register(schema.String(), []schema.Qualifier{schema.QualArg("truncate", "4")}, truncate(4), nil).
		Build()
	require.NoError(t, err)

	two, err := m.Adapter(schema.String(), schema.QualArg("truncate", "2"))
	require.NoError(t, err)

	four, err := m.Adapter(schema.String(), schema.QualArg("truncate", "4"))
	require.NoError(t, err)

	assert.NotSame(t, two, four)

	v, err := two.Decode(token.NewStringReader(`"abcdef"`))
	require.NoError(t, err)
	assert.Equal(t, "ab", v)

	v, err = four.Decode(token.NewStringReader(`"abcdef"`))
	require.NoError(t, err)
	assert.Equal(t, "abcd", v)
}

func TestFirstRegisteredCustomWins(t *testing.T) {
	first := func(r *token.Reader) (any, error) {
		if _, err := r.NextString(); err != nil {
			return nil, err
		}

		return "first", nil
	}
	second := func(r *token.Reader) (any, error) {
		if _, err := r.NextString(); err != nil {
			return nil, err
		}

		return "second", nil
	}

	m, err := NewBuilder().
		Register(schema.String(), []schema.Qualifier{schema.Qual("tagged")}, first, nil).
		Register(schema.String(), []schema.Qualifier{schema.Qual("tagged")}, second, nil).
		Build()
	require.NoError(t, err)

	ad, err := m.Adapter(schema.String(), schema.Qual("tagged"))
	require.NoError(t, err)

	v, err := ad.Decode(token.NewStringReader(`"x"`))
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestDirectionalCustomAdapterFallsBack(t *testing.T) {
	// Decode-only registration for the bare String type: encode must
	// delegate to the built-in string adapter.
	m, err := NewBuilder().
		Register(schema.String(), nil, upperDecode, nil).
		Build()
	require.NoError(t, err)

	ad, err := m.Adapter(schema.String())
	require.NoError(t, err)

	v, err := ad.Decode(token.NewStringReader(`"abc"`))
	require.NoError(t, err)
	assert.Equal(t, "ABC", v)

	doc, err := m.ToJSON(schema.String(), "plain")
	require.NoError(t, err)
	assert.Equal(t, `"plain"`, doc)
}

func TestCustomAdapterNullStillHitsNonNullCheck(t *testing.T) {
	// A custom adapter that maps empty strings to nil. The member is
	// non-nullable, so the engine's check fires after the custom decode.
	nilForEmpty := func(r *token.Reader) (any, error) {
		s, err := r.NextString()
		if err != nil {
			return nil, err
		}

		if s == "" {
			return nil, nil
		}

		return s, nil
	}

	m, err := NewBuilder().
		RegisterDescriptor(uppercasedDescriptor()).
		Register(schema.String(), []schema.Qualifier{schema.Qual("uppercase")}, nilForEmpty, nil).
		Build()
	require.NoError(t, err)

	ad, err := For[uppercased](m, schema.Object("Uppercased"))
	require.NoError(t, err)

	_, err = ad.FromJSON(`{"code":""}`)
	require.Error(t, err)

	var de *DataError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Non-null value 'code' was null at $.code", de.Error())
}

func TestCustomAdapterWithoutDirectionsFailsBuild(t *testing.T) {
	_, err := NewBuilder().Register(schema.String(), nil, nil, nil).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither direction")
}
