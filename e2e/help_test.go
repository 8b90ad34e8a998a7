//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	// Ensure the test binary exists (it should be built by TestMain)
	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// Not through a PTY since it exits immediately
	out, err := exec.Command(binPath, "-help").CombinedOutput()
	require.NoError(t, err, "-help should exit cleanly")

	output := string(out)
	require.True(t, strings.Contains(output, "-dir"), "usage lists the directory flag")
	require.True(t, strings.Contains(output, "-config"), "usage lists the config flag")
	require.True(t, strings.Contains(output, "-debug"), "usage lists the debug flag")
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-d", workspace))
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys("?"))
	require.True(t, tf.SeePlain("lens help"), "help opens in the pager")

	// Leaving the pager gives the terminal back to the search screen
	tf.Reset()
	require.NoError(t, tf.SendKeys("q"))
	require.True(t, tf.OutputContainsPlain("NORMAL", 3*time.Second))

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(2*time.Second))
}
