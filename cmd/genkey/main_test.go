package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fingerprints of keys derived from the RFC 5869 A.1 inputs.
const (
	fingerprint32    = "8368ec2ea306ad2d2c4526cb18926e5f2d0fa95f9fb87a640d39e80b2bea41bf"
	fingerprint42    = "b421bf493199866037dfe54b7dc67467326bad6055cdb78e48525eb1db5841a8"
	fingerprintNames = "9fdb45580a6ed17ba0e9d4a78a037873a5ef776892d062cd21909bad3401bb98"

	vectorKeyHex = "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf"
)

func writeInput(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func vectorEnvironment(t *testing.T) map[string]string {
	t.Helper()
	dir := t.TempDir()
	return map[string]string{
		envIkmLocation:    writeInput(t, dir, "ikm.dat", bytes.Repeat([]byte{0x0b}, 22)),
		envPepperLocation: writeInput(t, dir, "pepper.dat", nil),
		envSaltLocation:   writeInput(t, dir, "salt.dat", []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c}),
		envInfoLocation:   writeInput(t, dir, "info.dat", []byte{0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8, 0xf9}),
	}
}

func run(t *testing.T, environment map[string]string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(args, environment, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("prints the fingerprint only", func(t *testing.T) {
		t.Parallel()
		code, stdout, stderr := run(t, vectorEnvironment(t))
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, fingerprint32+"\n", stdout)
		assert.Empty(t, stderr)
	})

	t.Run("length flag", func(t *testing.T) {
		t.Parallel()
		code, stdout, stderr := run(t, vectorEnvironment(t), "--length", "42")
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, fingerprint42+"\n", stdout)
	})

	t.Run("length from environment", func(t *testing.T) {
		t.Parallel()
		env := vectorEnvironment(t)
		env["GENKEY_OUTPUT_BYTE_COUNT"] = "42"
		code, stdout, stderr := run(t, env)
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, fingerprint42+"\n", stdout)
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		t.Parallel()
		env := vectorEnvironment(t)
		env["GENKEY_OUTPUT_BYTE_COUNT"] = "42"
		code, stdout, stderr := run(t, env, "-n", "32")
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, fingerprint32+"\n", stdout)
	})

	t.Run("info from names", func(t *testing.T) {
		t.Parallel()
		env := vectorEnvironment(t)
		delete(env, envInfoLocation)
		code, stdout, stderr := run(t, env, "--fqdn", "api.example.com", "--code-name", "orion")
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, fingerprintNames+"\n", stdout)
	})

	t.Run("env file supplies locations", func(t *testing.T) {
		t.Parallel()
		env := vectorEnvironment(t)
		var lines []string
		for k, v := range env {
			lines = append(lines, k+"="+v)
		}
		envFile := writeInput(t, t.TempDir(), "genkey.env", []byte(strings.Join(lines, "\n")+"\n"))

		code, stdout, stderr := run(t, map[string]string{}, "--env-file", envFile)
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, fingerprint32+"\n", stdout)
	})

	t.Run("oversized input is truncated quietly", func(t *testing.T) {
		t.Parallel()
		env := vectorEnvironment(t)
		env["GENKEY_MAX_READ_BYTES"] = "22"
		env[envIkmLocation] = writeInput(t, t.TempDir(), "ikm.dat", append(bytes.Repeat([]byte{0x0b}, 22), "trailing"...))
		code, stdout, stderr := run(t, env)
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, fingerprint32+"\n", stdout)
		assert.Empty(t, stderr)
	})

	t.Run("truncation is reported at warn level", func(t *testing.T) {
		t.Parallel()
		env := vectorEnvironment(t)
		env["GENKEY_MAX_READ_BYTES"] = "22"
		env["GENKEY_LOG_LEVEL"] = "warn"
		env[envIkmLocation] = writeInput(t, t.TempDir(), "ikm.dat", append(bytes.Repeat([]byte{0x0b}, 22), "trailing"...))
		code, stdout, stderr := run(t, env)
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, fingerprint32+"\n", stdout)
		assert.Contains(t, stderr, "source truncated to read limit")
		assert.Contains(t, stderr, envIkmLocation)
	})

	t.Run("debug logs never carry the key", func(t *testing.T) {
		t.Parallel()
		env := vectorEnvironment(t)
		env["GENKEY_LOG_LEVEL"] = "debug"
		env["GENKEY_LOG_FORMAT"] = "json"
		code, stdout, stderr := run(t, env)
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, fingerprint32+"\n", stdout)
		assert.Contains(t, stderr, "key derived")
		assert.Contains(t, stderr, fingerprint32)
		assert.NotContains(t, stderr, vectorKeyHex)
	})
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(t *testing.T, env map[string]string)
		args    []string
		message string
	}{
		{
			name:    "missing ikm location",
			mutate:  func(_ *testing.T, env map[string]string) { delete(env, envIkmLocation) },
			message: "env var ENV_SECRET_IKM_LOCATION missing",
		},
		{
			name:    "missing pepper location",
			mutate:  func(_ *testing.T, env map[string]string) { delete(env, envPepperLocation) },
			message: "env var ENV_SECRET_PEPPER_LOCATION missing",
		},
		{
			name: "unreadable salt file",
			mutate: func(t *testing.T, env map[string]string) {
				env[envSaltLocation] = filepath.Join(t.TempDir(), "absent.dat")
			},
			message: "unable to read file",
		},
		{
			name: "short ikm",
			mutate: func(t *testing.T, env map[string]string) {
				env[envIkmLocation] = writeInput(t, t.TempDir(), "ikm.dat", []byte("short"))
			},
			message: "too short secret",
		},
		{
			name: "short salt",
			mutate: func(t *testing.T, env map[string]string) {
				env[envSaltLocation] = writeInput(t, t.TempDir(), "salt.dat", []byte("salt"))
			},
			message: "too short salt",
		},
		{
			name: "short info",
			mutate: func(t *testing.T, env map[string]string) {
				env[envInfoLocation] = writeInput(t, t.TempDir(), "info.dat", []byte("info"))
			},
			message: "too short info",
		},
		{
			name: "ikm truncated below the floor by the read cap",
			mutate: func(_ *testing.T, env map[string]string) {
				env["GENKEY_MAX_READ_BYTES"] = "9"
			},
			message: "too short secret",
		},
		{
			name:    "zero length",
			args:    []string{"--length", "0"},
			message: "output byte count out of range",
		},
		{
			name:    "length above the hkdf limit",
			args:    []string{"--length", "8161"},
			message: "output byte count out of range",
		},
		{
			name:    "fqdn without code name",
			args:    []string{"--fqdn", "api.example.com"},
			message: "must be set together",
		},
		{
			name:    "bad log level",
			mutate:  func(_ *testing.T, env map[string]string) { env["GENKEY_LOG_LEVEL"] = "loud" },
			message: "invalid log level",
		},
		{
			name:    "ikm location is a directory",
			mutate:  func(t *testing.T, env map[string]string) { env[envIkmLocation] = t.TempDir() },
			message: "unable to read file",
		},
		{
			name:    "bad length variable",
			mutate:  func(_ *testing.T, env map[string]string) { env["GENKEY_OUTPUT_BYTE_COUNT"] = "many" },
			message: `parsing "many"`,
		},
		{
			name:    "unexpected argument",
			args:    []string{"extra"},
			message: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := vectorEnvironment(t)
			if tt.mutate != nil {
				tt.mutate(t, env)
			}

			code, stdout, stderr := run(t, env, tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.True(t, strings.HasPrefix(stderr, "error: "), stderr)
			assert.Contains(t, stderr, tt.message)
			assert.Equal(t, 1, strings.Count(stderr, "\n"), "exactly one line: %q", stderr)
			assert.NotContains(t, stderr, vectorKeyHex)
		})
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("match", func(t *testing.T) {
		t.Parallel()
		code, stdout, stderr := run(t, vectorEnvironment(t), "verify", fingerprint32)
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, "ok\n", stdout)
	})

	t.Run("match with length flag", func(t *testing.T) {
		t.Parallel()
		code, stdout, stderr := run(t, vectorEnvironment(t), "verify", "-n", "42", strings.ToUpper(fingerprint42))
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, "ok\n", stdout)
	})

	t.Run("mismatch", func(t *testing.T) {
		t.Parallel()
		code, stdout, stderr := run(t, vectorEnvironment(t), "verify", fingerprint42)
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Equal(t, "error: fingerprint mismatch\n", stderr)
	})

	t.Run("mismatch is logged at info level", func(t *testing.T) {
		t.Parallel()
		env := vectorEnvironment(t)
		env["GENKEY_LOG_LEVEL"] = "info"
		code, _, stderr := run(t, env, "verify", fingerprint42)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, `msg="fingerprint mismatch"`)
		assert.Contains(t, stderr, `error="fingerprint mismatch"`)
		assert.True(t, strings.HasSuffix(stderr, "error: fingerprint mismatch\n"), stderr)
		assert.NotContains(t, stderr, vectorKeyHex)
	})

	t.Run("malformed fingerprint", func(t *testing.T) {
		t.Parallel()
		code, _, stderr := run(t, vectorEnvironment(t), "verify", "abc")
		assert.Equal(t, 1, code)
		assert.Equal(t, "error: invalid argument: invalid fingerprint format\n", stderr)
	})

	t.Run("missing argument", func(t *testing.T) {
		t.Parallel()
		code, _, stderr := run(t, vectorEnvironment(t), "verify")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "accepts 1 arg(s)")
	})
}
