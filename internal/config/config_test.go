package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuestep/internal/value"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingOptional(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadMissingRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	require.Error(t, err)
}

func TestLoadValues(t *testing.T) {
	c, err := Load(write(t, "unit: px\nvalue: 240\nno_color: true\nlog_file: /tmp/v.log\n"), false)
	require.NoError(t, err)
	u, _ := c.StartUnit()
	v, _ := c.StartValue()
	assert.Equal(t, value.Pixel, u)
	assert.Equal(t, 240.0, v)
	assert.True(t, c.NoColor)
	assert.Equal(t, "/tmp/v.log", c.LogFile)
}

func TestLoadCommaString(t *testing.T) {
	c, err := Load(write(t, "value: \"12,5\"\n"), false)
	require.NoError(t, err)
	v, err := c.StartValue()
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)
	u, err := c.StartUnit()
	require.NoError(t, err)
	assert.Equal(t, value.Percent, u)
}

func TestLoadRejectsBadFields(t *testing.T) {
	_, err := Load(write(t, "unit: em\n"), false)
	assert.Error(t, err)
	_, err = Load(write(t, "value: abc\n"), false)
	assert.Error(t, err)
	_, err = Load(write(t, "value: [1, 2]\n"), false)
	assert.Error(t, err)
	_, err = Load(write(t, "unit: [\n"), false)
	assert.Error(t, err)
}

func TestLoadRejectsNonFiniteValue(t *testing.T) {
	for _, body := range []string{"value: .nan\n", "value: .inf\n", "unit: px\nvalue: -.inf\n"} {
		_, err := Load(write(t, body), false)
		assert.Error(t, err, body)
	}
	_, err := Config{Value: 12.5}.StartValue()
	assert.NoError(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	in := Config{Unit: "px", Value: 33.5, NoColor: true}
	require.NoError(t, Save(path, in))
	out, err := Load(path, false)
	require.NoError(t, err)
	v, err := out.StartValue()
	require.NoError(t, err)
	assert.Equal(t, 33.5, v)
	assert.Equal(t, "px", out.Unit)
	assert.True(t, out.NoColor)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("HOME", "/home/x")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(AppDir, FileName), filepath.Join(filepath.Base(filepath.Dir(p)), filepath.Base(p)))
}
