package wrapgen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedClock() time.Time {
	return time.Date(2017, 3, 14, 15, 9, 26, 0, time.UTC)
}

func testGenerator() *Generator {
	g := NewGenerator(Config{StubDir: "stubs"}, zap.NewNop().Sugar())
	g.Now = fixedClock
	return g
}

func testStore() map[string]Descriptor {
	return map[string]Descriptor{
		"GetUnits": {
			Kind:    KindFunction,
			Descr:   "Get the current unit scale string.",
			Returns: &Param{Name: "Units", Type: "String"},
		},
		"SetUnits": {
			Kind:  KindSubroutine,
			Descr: "Set the unit scale string.",
			Sig:   []Param{{Name: "Units", Type: "String"}},
		},
		"T_ENTITY": {
			Kind:  KindDatastruct,
			Descr: "Entity record.",
			Sig:   []Param{{Name: "Idnum", Type: "Long"}, {Name: "Name", Type: "String"}},
		},
		"Foo": {
			Kind:  KindUnknown,
			Descr: "Nobody knows.",
		},
	}
}

func TestGenerateSkipsUnknownCommands(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer
	n, err := g.generate(&buf, testStore(), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	out := buf.String()
	assert.Contains(t, out, "def GetUnits(")
	assert.Contains(t, out, "def SetUnits(")
	assert.Contains(t, out, "def T_ENTITY(")
	assert.NotContains(t, out, "def Foo(")
}

func TestGenerateDeterministicOrder(t *testing.T) {
	g := testGenerator()

	var first, second bytes.Buffer
	_, err := g.generate(&first, testStore(), nil)
	require.NoError(t, err)
	_, err = g.generate(&second, testStore(), nil)
	require.NoError(t, err)

	// Same inputs, same clock: byte-identical artifacts.
	assert.Equal(t, first.String(), second.String())

	// Wrappers come out in sorted name order regardless of map iteration.
	out := first.String()
	assert.Less(t, strings.Index(out, "def GetUnits("), strings.Index(out, "def SetUnits("))
	assert.Less(t, strings.Index(out, "def SetUnits("), strings.Index(out, "def T_ENTITY("))
}

func TestGenerateWritesPreambleFirst(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer
	_, err := g.generate(&buf, testStore(), nil)
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "#! /usr/bin/env python\n"))
	assert.Contains(t, out, "2017-03-14 15:09:26 - File generated")
	assert.Contains(t, out, "machine generated")
	assert.Contains(t, out, "class Wrap(object):")
	// The class skeleton precedes the first wrapper.
	assert.Less(t, strings.Index(out, "class Wrap(object):"), strings.Index(out, "def GetUnits("))
}

func TestGenerateEmptyStore(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer
	n, err := g.generate(&buf, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Contains(t, buf.String(), "class Wrap(object):")
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()

	apiPath := filepath.Join(dir, "api.yaml")
	require.NoError(t, os.WriteFile(apiPath, []byte(descriptorFixture), 0o644))
	docPath := filepath.Join(dir, "docs.yaml")
	require.NoError(t, os.WriteFile(docPath, []byte(docFixture), 0o644))
	outPath := filepath.Join(dir, "fredwrap.py")

	g := NewGenerator(Config{
		APIFile: apiPath,
		DocFile: docPath,
		Output:  outPath,
		StubDir: "stubs",
	}, nil)
	g.Now = fixedClock
	require.NoError(t, g.Run())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "def GetUnits(self):")
	assert.Contains(t, out, "Returns the current units setting.")
	assert.Contains(t, out, "def T_ENTITY(self, Idnum=None, Name=None):")
	// SetUnits has no doc entry in the fixture; its wrapper still renders.
	assert.Contains(t, out, "def SetUnits(self, Units):")
	assert.NotContains(t, out, "def Foo(")
}

func TestRunMissingDescriptorStoreAborts(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(Config{
		APIFile: filepath.Join(dir, "absent.yaml"),
		DocFile: filepath.Join(dir, "absent-docs.yaml"),
		Output:  filepath.Join(dir, "out.py"),
		StubDir: "stubs",
	}, nil)
	g.Now = fixedClock

	err := g.Run()
	require.Error(t, err)
	// Fail-fast: no artifact is produced.
	_, statErr := os.Stat(filepath.Join(dir, "out.py"))
	assert.True(t, os.IsNotExist(statErr))
}
