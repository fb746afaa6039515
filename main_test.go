package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuestep/internal/value"
)

// isolate points the default config lookup at an empty temp dir.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func TestEvalScenarioText(t *testing.T) {
	isolate(t)
	script := "focus\ntype 150\nblur\nunit px\nfocus\ntype 150\nblur\nunit %\n"
	var out bytes.Buffer
	require.NoError(t, cmdEval(nil, strings.NewReader(script), &out))
	got := out.String()
	assert.Contains(t, got, "value:      100%")
	assert.Contains(t, got, "previous:   100")
	assert.Contains(t, got, "increment:  disabled")
	assert.Contains(t, got, `last:       accepted (typed "150")`)
}

func TestEvalJSONRevert(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	script := "focus\ntype 50\nblur\nfocus\ntype 150\nblur\nhover plus on\n"
	require.NoError(t, cmdEval([]string{"--json"}, strings.NewReader(script), &out))
	var res evalResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "50", res.Text)
	assert.Equal(t, 50.0, res.PreviousValid)
	assert.Equal(t, "reverted", res.LastOutcome)
	assert.Equal(t, "150", res.LastTyped)
	assert.Equal(t, 7, res.Events)
	assert.Empty(t, res.Tooltip)
}

func TestEvalTooltipAtZero(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	require.NoError(t, cmdEval([]string{"--json", "--value", "0"}, strings.NewReader("hover minus on\n"), &out))
	var res evalResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.True(t, res.DecrementDisabled)
	assert.Equal(t, "Value must greater than 0", res.Tooltip)
}

func TestEvalScriptFileAndConfig(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	conf := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("unit: px\nvalue: 300\n"), 0644))
	script := filepath.Join(dir, "s.txt")
	require.NoError(t, os.WriteFile(script, []byte("inc\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, cmdEval([]string{"--config", conf, script}, nil, &out))
	assert.Contains(t, out.String(), "value:      300.1px")
}

func TestEvalRejectsNonFiniteConfigValue(t *testing.T) {
	isolate(t)
	conf := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("value: .nan\n"), 0644))
	var out bytes.Buffer
	require.Error(t, cmdEval([]string{"--config", conf}, strings.NewReader("dec\ninc\n"), &out))
	assert.NotContains(t, out.String(), "NaN")
}

func TestEvalErrors(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	err := cmdEval(nil, strings.NewReader("wiggle\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	err = cmdEval([]string{"--unit", "em"}, strings.NewReader(""), &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUsage))

	err = cmdEval([]string{"a", "b"}, nil, &out)
	assert.True(t, errors.Is(err, errUsage))

	err = cmdEval([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, strings.NewReader(""), &out)
	assert.Error(t, err)
}

func TestFlagsOverrideConfig(t *testing.T) {
	isolate(t)
	conf := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("unit: px\nvalue: 300\nlog_file: from-config.log\n"), 0644))
	st, err := resolve(startFlags{config: conf, unit: "%", value: "12,5", logFile: "flag.log"})
	require.NoError(t, err)
	assert.Equal(t, value.Percent, st.unit)
	assert.Equal(t, 12.5, st.value)
	assert.Equal(t, "flag.log", st.logFile)
}

func TestResolveBuiltinDefaults(t *testing.T) {
	isolate(t)
	st, err := resolve(startFlags{})
	require.NoError(t, err)
	assert.Equal(t, value.Percent, st.unit)
	assert.Equal(t, 1.0, st.value)
	assert.Empty(t, st.logFile)
}

func TestFormatAndExtract(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cmdFormat([]string{"123.10", "0", "-0.0000000001", "0.30000000000000004"}, &out))
	assert.Equal(t, "123.1\n0\n0\n0.3\n", out.String())

	require.Error(t, cmdFormat([]string{"abc"}, &out))
	require.Error(t, cmdFormat([]string{"NaN"}, &out))
	require.Error(t, cmdFormat([]string{"-Inf"}, &out))
	assert.True(t, errors.Is(cmdFormat(nil, &out), errUsage))

	out.Reset()
	require.NoError(t, cmdExtract([]string{"12,5", "a123", "123abc", ".5"}, &out))
	assert.Equal(t, "12.5\ninvalid\n123\n0.5\n", out.String())
}

func TestCheckStartValue(t *testing.T) {
	assert.NoError(t, checkStartValue("%", "100"))
	assert.NoError(t, checkStartValue("px", "2048"))
	assert.Error(t, checkStartValue("%", "150"))
	assert.Error(t, checkStartValue("%", "-1"))
	assert.Error(t, checkStartValue("%", "abc"))
	assert.Error(t, checkStartValue("em", "1"))
}
