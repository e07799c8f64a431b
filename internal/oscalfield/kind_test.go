package oscalfield

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidate(t *testing.T) {
	require.NoError(t, Token("valid-token_1").Validate())
	require.NoError(t, Token("_leading").Validate())
	require.Error(t, Token("1leading").Validate())
	require.Error(t, Token("has space").Validate())
}

func TestUUIDVersions(t *testing.T) {
	cases := map[string]bool{
		"00000000-0000-1000-8000-000000000000": false, // v1
		"00000000-0000-2000-8000-000000000000": false, // v2
		"00000000-0000-3000-8000-000000000000": false, // v3
		"00000000-0000-4000-8000-000000000000": true,  // v4
		"00000000-0000-5000-8000-000000000000": true,  // v5
		"not-a-uuid":                            false,
	}
	for raw, want := range cases {
		err := UUID(raw).Validate()
		if want {
			assert.NoError(t, err, raw)
		} else {
			assert.Error(t, err, raw)
		}
	}
}

func TestDateLeapYears(t *testing.T) {
	require.NoError(t, Date("2000-02-29").Validate())
	require.Error(t, Date("1900-02-29").Validate())
	require.Error(t, Date("2100-02-29").Validate())
	require.NoError(t, Date("2024-02-29").Validate())
	require.NoError(t, Date("2024-02-29Z").Validate())
	require.NoError(t, Date("2024-02-29+02:00").Validate())
}

func TestHashLengths(t *testing.T) {
	rejected := []int{27, 29, 31, 33}
	for _, n := range rejected {
		require.Error(t, Hash(repeatHex(n)).Validate(), "len %d", n)
	}
	accepted := []int{28, 32, 48, 64}
	for _, n := range accepted {
		require.NoError(t, Hash(repeatHex(n)).Validate(), "len %d", n)
	}
	require.Error(t, Hash("zz"+repeatHex(26)).Validate())
}

func repeatHex(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = 'a'
	}
	return string(out)
}

func TestBase64Rejects(t *testing.T) {
	require.NoError(t, Base64("aGVsbG8=").Validate())
	require.Error(t, Base64("has space").Validate())
	require.Error(t, Base64("under_score").Validate())
	require.Error(t, Base64("dash-es").Validate())
}

func TestPositiveAndNonNegativeInt(t *testing.T) {
	require.NoError(t, PositiveInt(1).Validate())
	require.Error(t, PositiveInt(0).Validate())
	require.NoError(t, NonNegativeInt(0).Validate())
	require.Error(t, NonNegativeInt(-1).Validate())
}

func TestMarkupRoundTrip(t *testing.T) {
	t.Setenv(MarkupRenderModeEnv, "")
	var m Markup
	require.NoError(t, json.Unmarshal([]byte(`"**bold**"`), &m))
	assert.Equal(t, Markup("**bold**"), m)
}

func TestMarkupRenderedWhenEnabled(t *testing.T) {
	t.Setenv(MarkupRenderModeEnv, markupRenderModeEnabled)
	var m Markup
	require.NoError(t, json.Unmarshal([]byte(`"**bold**"`), &m))
	assert.Contains(t, string(m), "<strong>")
}

func TestURIRequiresScheme(t *testing.T) {
	require.NoError(t, URI("https://example.com/a").Validate())
	require.Error(t, URI("/relative/path").Validate())
}

func TestURIReferenceAcceptsRelative(t *testing.T) {
	require.NoError(t, URIReference("/relative/path").Validate())
	require.NoError(t, URIReference("https://example.com/a").Validate())
}
