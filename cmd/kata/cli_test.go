package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execKata(t *testing.T, args ...string) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	os.Stdout = old
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out), execErr
}

func TestListShowsEveryTopic(t *testing.T) {
	out, err := execKata(t, "list")

	require.NoError(t, err)
	for _, topic := range []string{"cstring", "bits", "linked-list", "gatt"} {
		assert.Contains(t, out, topic)
	}
}

func TestListOneTopic(t *testing.T) {
	out, err := execKata(t, "list", "embedded")

	require.NoError(t, err)
	assert.Contains(t, out, "embedded/frame-parser")

	_, err = execKata(t, "list", "no-such-topic")
	assert.Error(t, err)
}

func TestRunSingleDrill(t *testing.T) {
	out, err := execKata(t, "run", "arrays/kadane")

	require.NoError(t, err)
	assert.Contains(t, out, "1/1 drills passed")
}

func TestRunTopicFlag(t *testing.T) {
	out, err := execKata(t, "run", "--topic", "sliding-window")
	defer func() { runTopic = "" }()

	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "3/3 drills passed"), out)
}

func TestRunWithoutSelectionFails(t *testing.T) {
	_, err := execKata(t, "run")

	assert.Error(t, err)
}
