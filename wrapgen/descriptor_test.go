package wrapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

const descriptorFixture = `
GetUnits:
  cmdtype: function
  descr: Get the current unit scale string.
  returns: [Units, String]
  sig: []
SetUnits:
  cmdtype: subroutine
  descr: Set the unit scale string.
  returns: []
  sig:
    - [Units, String]
T_ENTITY:
  cmdtype: datastruct
  descr: Entity record.
  returns: []
  sig:
    - [Idnum, Long]
    - [Name, String]
Foo:
  cmdtype: gizmo
  descr: Nobody knows.
  returns: []
  sig: []
`

func TestDescriptorStoreDecoding(t *testing.T) {
	var store map[string]Descriptor
	require.NoError(t, yaml.Unmarshal([]byte(descriptorFixture), &store))
	require.Len(t, store, 4)

	fn := store["GetUnits"]
	assert.Equal(t, KindFunction, fn.Kind)
	require.NotNil(t, fn.Returns)
	assert.Equal(t, Param{Name: "Units", Type: "String"}, *fn.Returns)
	assert.Empty(t, fn.Sig)

	sub := store["SetUnits"]
	assert.Equal(t, KindSubroutine, sub.Kind)
	assert.Nil(t, sub.Returns)
	require.Len(t, sub.Sig, 1)
	assert.Equal(t, Param{Name: "Units", Type: "String"}, sub.Sig[0])

	ds := store["T_ENTITY"]
	assert.Equal(t, KindDatastruct, ds.Kind)
	require.Len(t, ds.Sig, 2)
	assert.Equal(t, "Idnum", ds.Sig[0].Name)
	assert.Equal(t, "Name", ds.Sig[1].Name)

	// Unrecognized cmdtype degrades to unknown rather than failing the load.
	assert.Equal(t, KindUnknown, store["Foo"].Kind)
}

func TestParamRejectsMalformedEntry(t *testing.T) {
	var p Param
	err := yaml.Unmarshal([]byte(`[OnlyAName]`), &p)
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, KindFunction, ParseKind("function"))
	assert.Equal(t, KindSubroutine, ParseKind("subroutine"))
	assert.Equal(t, KindDatastruct, ParseKind("datastruct"))
	assert.Equal(t, KindUnknown, ParseKind("unknown"))
	assert.Equal(t, KindUnknown, ParseKind(""))
	assert.Equal(t, KindUnknown, ParseKind("Function"))
}
