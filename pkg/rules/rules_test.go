package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokenlint/pkg/compliance"
)

func TestGet(t *testing.T) {
	r, ok := Get(SpacingArbitraryValue)
	require.True(t, ok)
	assert.Equal(t, compliance.CategorySpacing, r.Category)
	assert.Equal(t, compliance.SeverityError, r.Severity)

	_, ok = Get("no-such-rule")
	assert.False(t, ok)
}

func TestMustGet_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { MustGet("no-such-rule") })
	assert.NotPanics(t, func() { MustGet(ColorLiteral) })
}

func TestFormat(t *testing.T) {
	r := MustGet(ColorLiteral)
	msg := r.Format("bg-white")
	assert.Contains(t, msg, `"bg-white"`)
}

func TestAll_CoversEveryCategory(t *testing.T) {
	all := All()
	require.Len(t, all, 10)

	seen := map[compliance.Category]bool{}
	for _, r := range all {
		seen[r.Category] = true
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Message)
	}
	assert.True(t, seen[compliance.CategorySpacing])
	assert.True(t, seen[compliance.CategoryTypographySize])
	assert.True(t, seen[compliance.CategoryTypographyWeight])
	assert.True(t, seen[compliance.CategoryColor])
	assert.True(t, seen[compliance.CategoryComponentHeight])
}

func TestAll_StableOrder(t *testing.T) {
	first := All()
	second := All()
	assert.Equal(t, first, second)
}

func TestEscapeHatchRulesAreErrors(t *testing.T) {
	for _, id := range []string{SpacingArbitraryValue, FontSizeArbitrary, HeightArbitrary, ColorLiteral} {
		assert.Equal(t, compliance.SeverityError, MustGet(id).Severity, "rule %s", id)
	}
}
