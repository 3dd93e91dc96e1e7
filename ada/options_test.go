package ada_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/adatags/ada"
)

func TestNewOptionsDefaults(t *testing.T) {
	o := ada.NewOptions()
	assert.True(t, o.KindEnabled(ada.Package))
	assert.False(t, o.KindEnabled(ada.AutomaticVariable))
	assert.True(t, o.FileScope)
	assert.False(t, o.QualifiedTags)
}

func TestWithKindOverride(t *testing.T) {
	o := ada.NewOptions(ada.WithKind(ada.AutomaticVariable, true))
	assert.True(t, o.KindEnabled(ada.AutomaticVariable))
}

func TestLoadOptionsFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.yaml")
	content := "fileScope: true\nqualifiedTags: true\nkinds:\n  autovar: true\n  package: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	o, err := ada.LoadOptions(path)
	require.NoError(t, err)
	assert.True(t, o.FileScope)
	assert.True(t, o.QualifiedTags)
	assert.True(t, o.KindEnabled(ada.AutomaticVariable))
	assert.False(t, o.KindEnabled(ada.Package))
}

func TestLoadOptionsRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kinds:\n  bogus: true\n"), 0o644))

	_, err := ada.LoadOptions(path)
	assert.Error(t, err)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := ada.LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
