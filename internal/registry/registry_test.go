package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/kwargs/internal/coerce"
)

func TestAdd_AssignsOrdinalsInDeclarationOrder(t *testing.T) {
	// --- Arrange ---
	reg := New()

	// --- Act ---
	require.NoError(t, reg.Add("sourcefile", "input file path", coerce.Path()))
	require.NoError(t, reg.Add("sinkfile", "output file path", coerce.Path()))
	require.NoError(t, reg.Add("nsamples", "sampling count", coerce.Int(), WithDefault(10)))

	// --- Assert ---
	specs := reg.Specs()
	require.Len(t, specs, 3)
	assert.Equal(t, 3, reg.Len())
	for i, name := range []string{"sourcefile", "sinkfile", "nsamples"} {
		assert.Equal(t, name, specs[i].Name)
		assert.Equal(t, i+1, specs[i].Ordinal)
	}
	assert.True(t, specs[0].Mandatory())
	assert.False(t, specs[2].Mandatory())
	assert.Equal(t, 10, specs[2].Default)
}

func TestAdd_DuplicateName(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Add("a", "", nil))

	err := reg.Add("a", "again", coerce.Int())

	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Name)
	assert.Equal(t, 1, reg.Len(), "failed declaration must not consume an ordinal")

	require.NoError(t, reg.Add("b", "", nil))
	spec, err := reg.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, 2, spec.Ordinal)
}

func TestAdd_InvalidName(t *testing.T) {
	reg := New()
	require.Error(t, reg.Add("", "", nil))
	require.Error(t, reg.Add("a=b", "", nil))
	assert.Equal(t, 0, reg.Len())
}

func TestAdd_NilCoercerDefaultsToString(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Add("name", "", nil))

	spec, err := reg.Lookup("name")
	require.NoError(t, err)
	assert.Equal(t, "string", spec.Coercer.TypeName())
}

func TestLookup_Unknown(t *testing.T) {
	reg := New()

	_, err := reg.Lookup("missing")

	var unknown *UnknownNameError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "missing", unknown.Name)
}

func TestSpecs_ReturnsCopy(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Add("a", "", nil))

	specs := reg.Specs()
	specs[0].Name = "mutated"

	spec, err := reg.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "a", spec.Name)
}

func TestDefaultString(t *testing.T) {
	assert.Equal(t, "None", Spec{}.DefaultString())
	assert.Equal(t, "10", Spec{Default: 10, HasDefault: true}.DefaultString())
	assert.Equal(t, "<nil>", Spec{HasDefault: true}.DefaultString())
}
