package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes twalactl with args against an isolated environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", ":memory:")
	t.Setenv("ASSET_SOURCE", "static")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestTokenCmd(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	out, err := run(t, "token", "--user", "12")
	require.NoError(t, err)

	tok, err := jwt.Parse(strings.TrimSpace(out), func(*jwt.Token) (interface{}, error) {
		return []byte("cli-secret"), nil
	})
	require.NoError(t, err)
	sub, _ := tok.Claims.(jwt.MapClaims)["sub"].(float64)
	assert.Equal(t, float64(12), sub)
}

func TestTokenCmd_JSON(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	out, err := run(t, "--json", "token", "--user", "3", "--ttl", "30m")
	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.NotEmpty(t, res["token"])
	assert.EqualValues(t, 1800, res["expires_in"])
}

func TestTokenCmd_Errors(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := run(t, "token", "--user", "1")
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "cli-secret")
	_, err = run(t, "token")
	assert.ErrorContains(t, err, "--user")
}

func TestCatalogCmds(t *testing.T) {
	out, err := run(t, "catalog", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "TICKER"))
	assert.True(t, strings.HasPrefix(lines[1], "BAI"), "catalog order is preserved")

	out, err = run(t, "--json", "catalog", "search", "ensa")
	require.NoError(t, err)
	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "ENSA", items[0]["ticker"])

	_, err = run(t, "catalog", "search")
	assert.Error(t, err, "query argument is required")
}

func TestCatalogSeedAndMigrate(t *testing.T) {
	out, err := run(t, "catalog", "seed", "--migrate")
	require.NoError(t, err)
	assert.Regexp(t, `^seeded \d+ assets`, out)

	out, err = run(t, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "migrated sqlite database\n", out)
}
