package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func exitCode(err error) int {
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return -1
}

func TestSessionRun(t *testing.T) {
	testCases := []struct {
		src    string
		out    string
		errOut string
		code   int
	}{
		{"func sq(x: Int) -> Int { x * x }\nsq(4)", "16\n", "", 0},
		{"1 + 2\n3 * 4", "3\n12\n", "", 0},
		{"1 +", "", "[line 1:4] Error at end: Expect expression after '+'.\n", exitDataErr},
		{"f(1)", "", "[func main] Error: Undefined function 'f'.\n", exitDataErr},
		{"1 / 0", "", "[func main] Runtime error: Division by zero.\n", exitSoftwareErr},
		{"func main(x: Int) -> Int { x }", "", "[func main] Error: Function 'main' takes no parameters.\n", exitDataErr},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		var out, errOut bytes.Buffer
		s := newSession(&out, &errOut, false)
		s.run(tc.src)

		assert.Equal(tc.out, out.String(), tc.src)
		assert.Equal(tc.errOut, errOut.String(), tc.src)
		if tc.code == 0 {
			assert.NoError(s.status(), tc.src)
		} else {
			assert.Equal(tc.code, exitCode(s.status()), tc.src)
		}
	}
}

func TestSessionKeepsFunctions(t *testing.T) {
	assert := assert.New(t)

	var out, errOut bytes.Buffer
	s := newSession(&out, &errOut, false)
	s.run("func inc(x: Int) -> Int { x + 1 }")
	s.run("inc(inc(1))")

	assert.Equal("3\n", out.String())
	assert.Empty(errOut.String())
}

func TestSessionShowTokens(t *testing.T) {
	assert := assert.New(t)

	var out, errOut bytes.Buffer
	s := newSession(&out, &errOut, true)
	s.run("7")

	assert.Equal("7\n", out.String())
	assert.Equal("1:1 INTEGER \"7\"\n1:2 EOF \"\"\n", errOut.String())
}

func TestParseCommand(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	add := writeSource(t, dir, "add.swift", "func add(a: Int, b: Int) -> Int { a + b }\nadd(1, 2)\n")
	expr := writeSource(t, dir, "expr.swift", "1 + 2 * 3\n")

	out, errOut, err := execute(t, "parse", add)
	assert.NoError(err)
	assert.Empty(errOut)
	assert.Equal("(func add ((a Int) (b Int)) Int (+ a b))\n(func main () Int (call add 1 2))\n", out)

	out, _, err = execute(t, "parse", add, expr)
	assert.NoError(err)
	assert.Equal("; "+add+"\n"+
		"(func add ((a Int) (b Int)) Int (+ a b))\n(func main () Int (call add 1 2))\n"+
		"; "+expr+"\n"+
		"(func main () Int (+ 1 (* 2 3)))\n", out)
}

func TestParseCommandErrors(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	good := writeSource(t, dir, "good.swift", "1\n")
	bad := writeSource(t, dir, "bad.swift", "func f() -> Text { 1 }\n")

	out, errOut, err := execute(t, "parse", good, bad)
	assert.Equal(exitDataErr, exitCode(err))
	assert.Contains(out, "(func main () Int 1)")
	assert.Equal("[line 1:13] Error at 'Text': Unknown type 'Text'.\n", errOut)

	missing := filepath.Join(dir, "missing.swift")
	out, errOut, err = execute(t, "parse", missing, good)
	assert.Equal(exitDataErr, exitCode(err))
	assert.Equal("; "+missing+"\n; "+good+"\n(func main () Int 1)\n", out)
	assert.Contains(errOut, missing)
	assert.Contains(errOut, "no such file or directory")

	_, _, err = execute(t, "parse")
	assert.Error(err)
}

func TestTokensCommand(t *testing.T) {
	assert := assert.New(t)
	path := writeSource(t, t.TempDir(), "src.swift", "f(x)")

	out, _, err := execute(t, "tokens", path)
	assert.NoError(err)
	assert.Equal("1:1 IDENTIFIER \"f\"\n1:2 ( \"(\"\n1:3 IDENTIFIER \"x\"\n1:4 ) \")\"\n1:5 EOF \"\"\n", out)

	path = writeSource(t, t.TempDir(), "bad.swift", "1 $")
	_, errOut, err := execute(t, "tokens", path)
	assert.Equal(exitDataErr, exitCode(err))
	assert.Equal("[line 1:3] Error: Unexpected character.\n", errOut)
}

func TestRunCommand(t *testing.T) {
	assert := assert.New(t)
	path := writeSource(t, t.TempDir(), "fact.swift",
		"func fact(n: Int) -> Int { if n { n * fact(n - 1) } else { 1 } }\nfact(5)\n")

	out, errOut, err := execute(t, "run", path)
	assert.NoError(err)
	assert.Empty(errOut)
	assert.Equal("120\n", out)

	path = writeSource(t, t.TempDir(), "div.swift", "1 / 0\n")
	_, _, err = execute(t, "run", path)
	assert.Equal(exitSoftwareErr, exitCode(err))
}

func TestConfigFlag(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	path := writeSource(t, dir, "src.swift", "1")

	_, _, err := execute(t, "--config", filepath.Join(dir, "swiftlet.json"), "run", path)
	assert.Error(err)

	conf := writeSource(t, dir, "swiftlet.toml", "watch_debounce = \"20ms\"\n")
	_, _, err = execute(t, "--config", conf, "run", path)
	assert.NoError(err)
	assert.Equal(20*time.Millisecond, cfg.WatchDebounce)

	_, _, err = execute(t, "--config", "", "run", path)
	assert.NoError(err)
}

func TestWatchReruns(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "src.swift", "1")
	other := filepath.Join(dir, "other.swift")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reruns := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, path, 10*time.Millisecond, new(bytes.Buffer), func() {
			reruns <- struct{}{}
		})
	}()

	// the watcher is set up asynchronously, keep writing until it notices
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(5 * time.Second)
	for seen := false; !seen; {
		select {
		case <-reruns:
			seen = true
		case <-ticker.C:
			require.NoError(t, os.WriteFile(other, []byte("2"), 0o644))
			require.NoError(t, os.WriteFile(path, []byte("2"), 0o644))
		case <-deadline:
			t.Fatal("no rerun after writing the watched file")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
