package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatLoop(t *testing.T) {
	in := strings.NewReader("hola\n\nfalla\nexit\nnunca\n")
	var out bytes.Buffer
	var seen []string

	err := chatLoop(context.Background(), in, &out, func(ctx context.Context, text string) (string, error) {
		seen = append(seen, text)
		if text == "falla" {
			return "", errors.New("backend down")
		}
		return "respuesta a " + text, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"hola", "falla"}, seen)
	assert.Contains(t, out.String(), "respuesta a hola")
	assert.Contains(t, out.String(), "error: backend down")
	assert.NotContains(t, out.String(), "nunca")
}

func TestChatLoopStopsAtEOF(t *testing.T) {
	var out bytes.Buffer
	calls := 0
	err := chatLoop(context.Background(), strings.NewReader("ping"), &out, func(ctx context.Context, text string) (string, error) {
		calls++
		return "pong", nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, out.String(), "pong")
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	want := []string{"ask", "chat", "check", "costdb", "tools"}
	var got []string
	for _, c := range root.Commands() {
		got = append(got, c.Name())
	}
	assert.Subset(t, got, want)
	assert.NotNil(t, root.PersistentFlags().Lookup("env"))

	cmd, _, err := root.Find([]string{"costdb", "seed"})
	require.NoError(t, err)
	assert.Equal(t, "seed", cmd.Name())
}

func TestCostDBMigrateAndSeedCommands(t *testing.T) {
	t.Setenv("COSTDB_DRIVER", "sqlite")
	t.Setenv("COSTDB_DSN", t.TempDir()+"/costs.db")

	for _, args := range [][]string{{"costdb", "migrate"}, {"costdb", "seed"}} {
		root := newRootCmd()
		root.SetArgs(args)
		root.SetOut(&bytes.Buffer{})
		require.NoError(t, root.ExecuteContext(context.Background()), args)
	}
}
