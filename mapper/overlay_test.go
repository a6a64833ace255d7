package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonbind/overlay"
	"jsonbind/schema"
)

const personOverlay = `
types:
  - type: Person
    names:
      nick: alias
    transient: [tags]
`

func TestBuilderAppliesOverlay(t *testing.T) {
	f, err := overlay.Parse([]byte(personOverlay))
	require.NoError(t, err)

	m, err := NewBuilder().
		RegisterDescriptor(addressDescriptor()).
		RegisterDescriptor(personDescriptor()).
		Overlay(f).
		Build()
	require.NoError(t, err)

	ad, err := For[person](m, schema.Object("Person"))
	require.NoError(t, err)

	p := &person{ID: "p1", Name: "Ada", Nick: strPtr("ada"), Tags: []string{"x"}}

	doc, err := ad.ToJSON(p)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"p1","name":"Ada","alias":"ada"}`, doc)

	out, err := ad.FromJSON(`{"id":"p1","alias":"ada","tags":["dropped"]}`)
	require.NoError(t, err)
	require.NotNil(t, out.Nick)
	assert.Equal(t, "ada", *out.Nick)
	assert.Nil(t, out.Tags)
}

func TestBuilderRejectsOverlayForUnknownType(t *testing.T) {
	f, err := overlay.Parse([]byte("types:\n  - type: Ghost\n"))
	require.NoError(t, err)

	_, err = NewBuilder().
		RegisterDescriptor(personDescriptor()).
		Overlay(f).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid overlay")
}
