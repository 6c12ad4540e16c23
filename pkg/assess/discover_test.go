package assess

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mutantsSource = `package mutants

// _TestOffByOne adds one more than it should.
// Exercise the smallest sums to see it.
func _TestOffByOne(a, b int) int { return a + b + 1 }

// helper is not a mutant.
func helper() {}

// _TestBrokenStack is a stack that drops every push.
type _TestBrokenStack struct{}

// method named like a mutant must not qualify
func (s *_TestBrokenStack) _TestPush() {}

func container() {
	// nested declarations never qualify
	_testNested := func() {}
	_ = _testNested
}

func _testlowercase() {}
`

func TestScanSource(t *testing.T) {
	t.Parallel()

	// When
	assets, err := ScanSource(context.Background(), []byte(mutantsSource))

	// Then only top-level declarations with the reserved prefix qualify,
	// matched case-insensitively, in declaration order
	require.NoError(t, err)
	require.Len(t, assets, 3)

	assert.Equal(t, "_TestOffByOne", assets[0].Name)
	assert.Equal(t, AssetFunction, assets[0].Kind)
	assert.Equal(t, "_TestOffByOne adds one more than it should.\nExercise the smallest sums to see it.", assets[0].Doc)

	assert.Equal(t, "_TestBrokenStack", assets[1].Name)
	assert.Equal(t, AssetType, assets[1].Kind)
	assert.Equal(t, "_TestBrokenStack is a stack that drops every push.", assets[1].Doc)

	assert.Equal(t, "_testlowercase", assets[2].Name)
	assert.Equal(t, AssetFunction, assets[2].Kind)
	assert.Empty(t, assets[2].Doc)
}

func TestScanSource_NoMutants(t *testing.T) {
	t.Parallel()

	assets, err := ScanSource(context.Background(), []byte("package clean\n\nfunc Add(a, b int) int { return a + b }\n"))

	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestScanFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ScanFile(context.Background(), "does/not/exist.go")

	assert.Error(t, err)
}
