package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	loaded, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.Equal(t, OutputFormatXML, loaded.Output.Format)
	assert.Equal(t, 2, loaded.Output.Indent)
}

func TestLoadConfig_Override(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
store:
  files:
    - base.yaml
    - /etc/app/override.json
  envPrefix: APP_
output:
  format: table
logging:
  level: debug
`)

	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "base.yaml"), "/etc/app/override.json"}, loaded.Store.Files)
	assert.Equal(t, "APP_", loaded.Store.EnvPrefix)
	assert.Equal(t, OutputFormatTable, loaded.Output.Format)
	assert.Equal(t, DefaultIndent, loaded.Output.Indent, "unset keys keep defaults")
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestLoadConfig_EmptyValuesFallBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "output:\n  format: \"\"\n  indent: 0\nlogging:\n  level: \"\"\n")

	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "output: [")

	_, err := LoadConfig(dir)
	require.Error(t, err)

	var cfgErr ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrorTypeParse, cfgErr.ErrorType)
	assert.Equal(t, configFileName, cfgErr.FileName)
}

func TestLoadConfig_WrongType(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "output:\n  indent: wide\n")

	_, err := LoadConfig(dir)
	var cfgErr ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ErrorTypeParse, cfgErr.ErrorType)
	assert.NotEmpty(t, cfgErr.Suggestions)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "output:\n  format: html\nlogging:\n  level: loud\n")

	_, err := LoadConfig(dir)
	var cfgErr ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ErrorTypeValidation, cfgErr.ErrorType)
	assert.Contains(t, cfgErr.Message, "output.format")
	assert.Contains(t, cfgErr.Message, "logging.level")
	assert.Contains(t, cfgErr.DetailedError(), "Suggestions:")
}

func TestLoadConfig_Unreadable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, configFileName), 0755))

	_, err := LoadConfig(dir)
	var cfgErr ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ErrorTypeIO, cfgErr.ErrorType)
}

func TestGetDefaultConfigPath(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()

	osUserHomeDir = func() (string, error) { return "/home/test", nil }
	path, err := GetDefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/home/test/.config/confkit", path)

	osUserHomeDir = func() (string, error) { return "", errors.New("no home") }
	_, err = GetDefaultConfigPath()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(GetDefaultConfig()))

	c := GetDefaultConfig()
	c.Output.Indent = 40
	c.Store.Files = []string{" "}
	err := Validate(c)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
	assert.Equal(t, "output.indent", errs[0].Field)
	assert.Equal(t, "store.files[0]", errs[1].Field)
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("/tmp/x/config.yaml", ErrorTypeParse, "bad indent")
	assert.Equal(t, "[parse] config.yaml: bad indent", err.Error())
	assert.Contains(t, err.DetailedError(), "File: /tmp/x/config.yaml")
}
