package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/astef/bitset"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"bitset"}, args...))
	return out.String(), err
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", "1001101")
	require.NoError(t, err)
	assert.Equal(t,
		"bits:    [7]{1001101}\n"+
			"size:    7\n"+
			"count:   4\n"+
			"first-0: 1\n"+
			"first-1: 0\n"+
			"words:   1 (8 B)\n",
		out)
}

func TestInspectNotFound(t *testing.T) {
	out, err := run(t, "inspect", "[0]{}")
	require.NoError(t, err)
	assert.Contains(t, out, "first-0: none\n")
	assert.Contains(t, out, "first-1: none\n")
	assert.Contains(t, out, "words:   0 (0 B)\n")
}

func TestCombine(t *testing.T) {
	tests := map[string]struct {
		args     []string
		expected string
	}{
		"default_and":   {[]string{"combine", "1100", "1010"}, "[4]{1000}\n"},
		"or":            {[]string{"combine", "--op", "or", "1100", "1010"}, "[4]{1110}\n"},
		"xor":           {[]string{"combine", "--op", "xor", "1100", "1010"}, "[4]{0110}\n"},
		"left_size":     {[]string{"combine", "--op", "or", "10", "0111"}, "[2]{11}\n"},
		"global_option": {[]string{"--default-op", "xor", "combine", "1100", "1010"}, "[4]{0110}\n"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestCombineErrors(t *testing.T) {
	_, err := run(t, "combine", "--op", "nand", "1", "1")
	assert.Error(t, err)

	_, err = run(t, "combine", "1")
	assert.Error(t, err)

	_, err = run(t, "combine", "12", "1")
	assert.ErrorIs(t, err, bitset.ErrInvalidLiteral)
}

func TestNotAndResize(t *testing.T) {
	out, err := run(t, "not", "100")
	require.NoError(t, err)
	assert.Equal(t, "[3]{011}\n", out)

	out, err = run(t, "resize", "--size", "5", "111")
	require.NoError(t, err)
	assert.Equal(t, "[5]{11100}\n", out)

	_, err = run(t, "resize", "111")
	assert.Error(t, err, "size is required")
}

func TestGet(t *testing.T) {
	tests := map[string]struct {
		index    string
		expected string
	}{
		"first":    {"0", "1\n"},
		"second":   {"1", "0\n"},
		"negative": {"-1", "1\n"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, "get", "--", "1001101", tc.index)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}

	_, err := run(t, "get", "101", "3")
	assert.ErrorIs(t, err, bitset.ErrOutOfBounds)
	_, err = run(t, "get", "101", "x")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	tests := map[string]struct {
		to       string
		expected string
	}{
		"roaring":         {"roaring", "{0,3,4,6}\n"},
		"bits_and_blooms": {"bits-and-blooms", "{0,3,4,6}\n"},
		"bitlist":         {"bitlist", "0xd9\n"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, "convert", "--to", tc.to, "1001101")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}

	_, err := run(t, "convert", "--to", "protobuf", "1")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default-op: xor\nverbosity: debug\nlog-format: json\n"), 0o600))

	out, err := run(t, "--config-file", path, "combine", "1100", "1010")
	require.NoError(t, err)
	assert.Equal(t, "[4]{0110}\n", out)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	// flags win over the file
	out, err = run(t, "--config-file", path, "--default-op", "or", "combine", "1100", "1010")
	require.NoError(t, err)
	assert.Equal(t, "[4]{1110}\n", out)
}

func TestLoggingFlags(t *testing.T) {
	_, err := run(t, "--log-format", "xml", "not", "1")
	assert.Error(t, err)

	_, err = run(t, "--verbosity", "loud", "not", "1")
	assert.Error(t, err)

	_, err = run(t, "--verbosity", "warn", "--log-format", "text", "not", "1")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}
