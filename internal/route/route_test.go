package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{name: "multiple names", names: []string{"A", "B", "D"}, want: `["A","B","D"]`},
		{name: "single name", names: []string{"A"}, want: `["A"]`},
		{name: "empty sequence", names: nil, want: `[]`},
		{name: "names are written verbatim, unescaped", names: []string{`say "hi"`}, want: `["say "hi""]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.names))
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	names := []string{"A", "B", "C"}

	text := Encode(names)
	assert.Equal(t, `["A","B","C"]`, text)

	got, err := Decode(text)
	require.NoError(t, err)
	assert.Equal(t, names, got)
}

func TestDecodeRejectsMalformedText(t *testing.T) {
	_, err := Decode(`["A",`)
	assert.Error(t, err)
}

func TestRecord(t *testing.T) {
	t.Run("non-empty route is a single string entry", func(t *testing.T) {
		rec := Record([]string{"A", "B"})
		require.Equal(t, 1, rec.Len())

		text, ok := rec.GetString(Key)
		require.True(t, ok)
		assert.Equal(t, `["A","B"]`, text)
	})

	t.Run("empty route is zero entries, not an empty array value", func(t *testing.T) {
		rec := Record(nil)
		require.NotNil(t, rec)
		assert.Equal(t, 0, rec.Len())
		_, ok := rec.Get(Key)
		assert.False(t, ok)
	})
}
