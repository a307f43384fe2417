package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsForAbsentFields(t *testing.T) {
	v, err := New(Config{})
	require.NoError(t, err)

	assert.Equal(t, 48, v.MaxFontSize())
	assert.True(t, v.IsAllowedSpacing(16))
	assert.True(t, v.IsAllowedColorToken("destructive-foreground"))
}

func TestNew_ExplicitlyEmptySetIsConfigError(t *testing.T) {
	_, err := New(Config{FontWeights: []int{}})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "fontWeights")
}

func TestNew_CollectsAllErrors(t *testing.T) {
	_, err := New(Config{
		SpacingScale:    []int{-4, 8},
		TypographySizes: []int{0},
		FontWeights:     []int{50},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spacingScale[0]")
	assert.Contains(t, err.Error(), "typographySizes[0]")
	assert.Contains(t, err.Error(), "fontWeights[0]")
}

func TestLoadFromBytes_UnrecognizedFieldsIgnored(t *testing.T) {
	doc := []byte(`{
		"spacingScale": [0, 8, 16],
		"futureField": {"anything": true}
	}`)
	v, err := LoadFromBytes(doc)
	require.NoError(t, err)

	assert.True(t, v.IsAllowedSpacing(8))
	assert.False(t, v.IsAllowedSpacing(7))
}

func TestLoadFromBytes_MalformedJSON(t *testing.T) {
	_, err := LoadFromBytes([]byte(`{not json`))
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile("does-not-exist.json")
	require.Error(t, err)
}

func TestScaleTables(t *testing.T) {
	px, ok := SpacingIndexToPx(4)
	require.True(t, ok)
	assert.Equal(t, 16, px)

	px, ok = SpacingIndexToPx(11)
	require.True(t, ok)
	assert.Equal(t, 44, px)

	_, ok = SpacingIndexToPx(13)
	assert.False(t, ok)

	px, ok = TextSizeToPx("2xl")
	require.True(t, ok)
	assert.Equal(t, 24, px)

	w, ok := FontWeightToValue("light")
	require.True(t, ok)
	assert.Equal(t, 300, w)

	assert.True(t, IsTextSizeName("base"))
	assert.False(t, IsTextSizeName("white"))
}
