package token

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterObject(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)

	require.NoError(t, w.BeginObject())
	require.NoError(t, w.Name("s"))
	require.NoError(t, w.String("hi"))
	require.NoError(t, w.Name("i"))
	require.NoError(t, w.Int(42))
	require.NoError(t, w.Name("b"))
	require.NoError(t, w.Bool(false))
	require.NoError(t, w.Name("n"))
	require.NoError(t, w.Null())
	require.NoError(t, w.EndObject())

	got := strings.TrimSuffix(buf.String(), "\n")
	assert.Equal(t, `{"s":"hi","i":42,"b":false,"n":null}`, got)
}

func TestWriterArray(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)

	require.NoError(t, w.BeginArray())
	require.NoError(t, w.Float(1.5))
	require.NoError(t, w.Int(2))
	require.NoError(t, w.EndArray())

	got := strings.TrimSuffix(buf.String(), "\n")
	assert.Equal(t, `[1.5,2]`, got)
}
