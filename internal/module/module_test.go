package module

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	updaterScript = "META-INF/com/google/android/updater-script"
	updateBinary  = "META-INF/com/google/android/update-binary"
)

// writeZip builds a zip at dir/name with the given entries and returns its path.
func writeZip(t *testing.T, dir, name string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for entry, content := range entries {
		ew, err := w.Create(entry)
		require.NoError(t, err)
		_, err = ew.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return path
}

func validEntries(prop string) map[string]string {
	return map[string]string{
		updaterScript: "#MAGISK\n",
		updateBinary:  "#!/sbin/sh\n",
		"module.prop": prop,
	}
}

func TestInspect_ValidModule(t *testing.T) {
	dir := t.TempDir()
	prop := "id=com.example.mod\nname=Example Mod\nversion=v1.2\nversionCode=12\nauthor=someone\n"
	path := writeZip(t, dir, "example.zip", validEntries(prop))

	mod, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, "com.example.mod", mod.ID)
	assert.Equal(t, "Example Mod", mod.Name)
	assert.Equal(t, "v1.2", mod.Version)
	assert.Equal(t, "12", mod.VersionCode)
	assert.Equal(t, "someone", mod.Author)
	assert.Equal(t, "example.zip", mod.File)
}

func TestInspect_MissingMarkers(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]map[string]string{
		"no markers": {
			"module.prop": "id=x\n",
		},
		"only updater-script": {
			updaterScript: "#MAGISK\n",
			"module.prop": "id=x\n",
		},
		"only update-binary": {
			updateBinary:  "#!/sbin/sh\n",
			"module.prop": "id=x\n",
		},
	}
	for name, entries := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeZip(t, dir, name+".zip", entries)
			_, err := Inspect(path)
			require.ErrorIs(t, err, ErrNotModule)
		})
	}
}

func TestInspect_MissingProp(t *testing.T) {
	dir := t.TempDir()
	path := writeZip(t, dir, "noprop.zip", map[string]string{
		updaterScript: "#MAGISK\n",
		updateBinary:  "#!/sbin/sh\n",
	})

	_, err := Inspect(path)
	require.ErrorIs(t, err, ErrNoProp)
}

func TestInspect_EmptyID(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"blank value":       "id=\nname=x\n",
		"whitespace value":  "id=   \nname=x\n",
		"no id line":        "name=x\nversion=1\n",
		"spaces around key": "id = spaced\n", // not the literal "id=" prefix
	}
	for name, prop := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeZip(t, dir, name+".zip", validEntries(prop))
			_, err := Inspect(path)
			require.ErrorIs(t, err, ErrNoID)
		})
	}
}

func TestInspect_LaterNonEmptyIDWins(t *testing.T) {
	dir := t.TempDir()
	path := writeZip(t, dir, "dup.zip", validEntries("id=  \nid=real.id\n"))

	mod, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, "real.id", mod.ID)
}

func TestInspect_TrimsAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := writeZip(t, dir, "crlf.zip", validEntries("  id=crlf.mod  \r\nname=CRLF\r\n"))

	mod, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, "crlf.mod", mod.ID)
	assert.Equal(t, "CRLF", mod.Name)
}

func TestInspect_CorruptArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.zip")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip"), 0o644))

	_, err := Inspect(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotModule)
	assert.NotErrorIs(t, err, ErrNoProp)
	assert.NotErrorIs(t, err, ErrNoID)
}

func TestParseProps(t *testing.T) {
	data := []byte("# comment\nid=mod\nname = My Mod \n\nbogus line\nempty=\nid=shadowed\n")
	props := ParseProps(data)

	assert.Equal(t, "mod", props["id"])
	assert.Equal(t, "My Mod", props["name"])
	assert.NotContains(t, props, "empty")
	assert.NotContains(t, props, "bogus line")
}
