package ada_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/adatags/ada"
)

func tagsOf(t *testing.T, src string, opts ...ada.Option) []ada.Tag {
	t.Helper()
	reader := ada.NewSourceReader([]byte(src))
	var sink ada.SliceSink
	err := ada.FindTags(context.Background(), reader, &sink, ada.NewOptions(opts...))
	require.NoError(t, err)
	return sink.Tags
}

func findTag(tags []ada.Tag, name string) (ada.Tag, bool) {
	for _, tag := range tags {
		if tag.Name == name {
			return tag, true
		}
	}
	return ada.Tag{}, false
}

func TestPackageAndVariable(t *testing.T) {
	src := `package P is X : Integer; end P;`

	tags := tagsOf(t, src)
	require.Len(t, tags, 2)

	p, ok := findTag(tags, "P")
	require.True(t, ok)
	assert.Equal(t, ada.Package, p.Kind)
	assert.Equal(t, 1, p.Line)
	assert.Nil(t, p.Scope)

	x, ok := findTag(tags, "X")
	require.True(t, ok)
	assert.Equal(t, ada.Variable, x.Kind)
	require.NotNil(t, x.Scope)
	assert.Equal(t, "package", x.Scope.KindName)
	assert.Equal(t, "P", x.Scope.Name)
	assert.False(t, x.IsFileScope)

	tagsNoFileScope := tagsOf(t, src, ada.WithFileScope(false))
	assert.Len(t, tagsNoFileScope, 2)
}

func TestPrivateSectionFlipsFileScope(t *testing.T) {
	src := `package P is
  procedure Q;
private
  R : Integer;
end P;`

	tags := tagsOf(t, src, ada.WithFileScope(true))
	require.Len(t, tags, 3)

	q, ok := findTag(tags, "Q")
	require.True(t, ok)
	assert.Equal(t, ada.SubprogramSpec, q.Kind)
	assert.False(t, q.IsFileScope)

	r, ok := findTag(tags, "R")
	require.True(t, ok)
	assert.Equal(t, ada.Variable, r.Kind)
	assert.True(t, r.IsFileScope)

	visible := tagsOf(t, src, ada.WithFileScope(false))
	names := map[string]bool{}
	for _, tag := range visible {
		names[tag.Name] = true
	}
	assert.Equal(t, map[string]bool{"P": true, "Q": true}, names)
}

func TestSubprogramWithLoopVariable(t *testing.T) {
	src := `procedure Main is
  I : Integer;
begin
  for K in 1..10 loop
    null;
  end loop;
end Main;`

	withAutovar := tagsOf(t, src, ada.WithKind(ada.AutomaticVariable, true))
	_, hasMain := findTag(withAutovar, "Main")
	assert.True(t, hasMain)
	_, hasI := findTag(withAutovar, "I")
	assert.True(t, hasI)
	_, hasK := findTag(withAutovar, "K")
	assert.True(t, hasK)

	withoutAutovar := tagsOf(t, src)
	_, hasK = findTag(withoutAutovar, "K")
	assert.False(t, hasK)
}

func TestEnumerationLiterals(t *testing.T) {
	src := `package Colors is
  type Color is (Red, Green, Blue);
end Colors;`

	tags := tagsOf(t, src, ada.WithFileScope(true))

	color, ok := findTag(tags, "Color")
	require.True(t, ok)
	assert.Equal(t, ada.Type, color.Kind)

	for _, name := range []string{"Red", "Green", "Blue"} {
		lit, ok := findTag(tags, name)
		require.True(t, ok, "expected literal %s", name)
		assert.Equal(t, ada.EnumLiteral, lit.Kind)
		require.NotNil(t, lit.Scope)
		assert.Equal(t, "Color", lit.Scope.Name)
	}
}

func TestRecordComponentsPerLineAttribution(t *testing.T) {
	src := "package Recs is\n" +
		"  type Rec is record\n" +
		"    A, B : Integer;\n" +
		"    C : Float;\n" +
		"  end record;\n" +
		"end Recs;\n"

	tags := tagsOf(t, src, ada.WithFileScope(true))

	a, ok := findTag(tags, "A")
	require.True(t, ok)
	b, ok := findTag(tags, "B")
	require.True(t, ok)
	c, ok := findTag(tags, "C")
	require.True(t, ok)

	assert.Equal(t, ada.RecordComponent, a.Kind)
	assert.Equal(t, a.Line, b.Line)
	assert.Greater(t, c.Line, b.Line)
}

func TestGenericFormals(t *testing.T) {
	src := `generic
  type T is private;
  with function F (X : T) return T;
package G is
end G;`

	tags := tagsOf(t, src, ada.WithFileScope(true), ada.WithKind(ada.AutomaticVariable, true))

	tFormal, ok := findTag(tags, "T")
	require.True(t, ok)
	assert.Equal(t, ada.Formal, tFormal.Kind)
	require.NotNil(t, tFormal.Scope)
	assert.Equal(t, "G", tFormal.Scope.Name)

	fFormal, ok := findTag(tags, "F")
	require.True(t, ok)
	assert.Equal(t, ada.Formal, fFormal.Kind)
	assert.Equal(t, "G", fFormal.Scope.Name)

	x, ok := findTag(tags, "X")
	require.True(t, ok)
	assert.Equal(t, ada.AutomaticVariable, x.Kind)
	require.NotNil(t, x.Scope)
	assert.Equal(t, "F", x.Scope.Name)
}

func TestQualifiedTags(t *testing.T) {
	src := `package P is
  procedure Q;
end P;`

	tags := tagsOf(t, src, ada.WithQualifiedTags(true))

	_, hasQualified := findTag(tags, "P.Q")
	assert.True(t, hasQualified)
	_, hasPlain := findTag(tags, "Q")
	assert.True(t, hasPlain)
}

func TestCommentDoesNotBreakIdentifier(t *testing.T) {
	src := `package P is Foo--bar : Integer; end P;`
	tags := tagsOf(t, src, ada.WithFileScope(true))
	_, ok := findTag(tags, "Foo--bar")
	assert.True(t, ok)
}

func TestAcceptDoesNotDuplicateEntryTag(t *testing.T) {
	src := `task body T is
begin
  accept E (X : Integer) do
    null;
  end E;
end T;`

	tags := tagsOf(t, src, ada.WithKind(ada.AutomaticVariable, true))

	_, hasT := findTag(tags, "T")
	assert.True(t, hasT)

	entryCount := 0
	for _, tag := range tags {
		if tag.Name == "E" {
			entryCount++
		}
	}
	assert.Equal(t, 0, entryCount, "an accept statement must not re-emit its entry's spec tag")

	x, ok := findTag(tags, "X")
	require.True(t, ok)
	assert.Equal(t, ada.AutomaticVariable, x.Kind)
	require.NotNil(t, x.Scope)
	assert.Equal(t, "T", x.Scope.Name)
}

func TestUnterminatedBlockTerminates(t *testing.T) {
	src := `package P is
  X : Integer;`
	assert.NotPanics(t, func() {
		tagsOf(t, src)
	})
}
