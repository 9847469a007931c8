package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdslide/internal/cli"
	"github.com/yaklabco/mdslide/pkg/format"
)

const deck = "# Intro\n\nHello **world**\n---\n## Code\n\n```go\npackage main\n```\n---\nThanks\n"

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"}
}

// project creates an isolated directory holding deck.md and returns its path.
func project(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	path := filepath.Join(dir, "deck.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--color", "never"}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	assert.Equal(t, "mdslide", cmd.Use)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{
		"split", "locate", "start", "outline", "format",
		"table", "render", "watch", "init", "version",
	} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	for _, flag := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestHelpIsStyled(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "format", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--prefix")
	assert.Contains(t, out, "Global Flags:")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
}

func TestSplitCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "split", "--json", project(t, deck))
	require.NoError(t, err)

	var parts []string
	require.NoError(t, json.Unmarshal([]byte(out), &parts))
	require.Len(t, parts, 3)
	assert.Equal(t, "Thanks", parts[2])
}

func TestSplitFromStdin(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "a\n---\nb", "split")
	require.NoError(t, err)
	assert.Equal(t, "a\n\n---\n\nb\n", out)
}

func TestLocateAndStart(t *testing.T) {
	t.Parallel()

	path := project(t, deck)
	secondDelimiter := strings.LastIndex(deck, "---")

	out, _, err := execute(t, "", "locate", "--cursor", "0", path)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, _, err = execute(t, "", "locate", "--cursor", "1000", path)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = execute(t, "", "start", "--slide", "2", path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(secondDelimiter+4)+"\n", out)

	out, _, err = execute(t, "", "start", "--slide", "9", path)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestLocateRequiresCursor(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "locate", project(t, deck))
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestOutlineCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "outline", project(t, deck))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0  Intro  @0", lines[0])
	assert.Contains(t, lines[1], "Code  [go]")
	assert.Contains(t, lines[2], "Thanks")
}

func TestFormatCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "hello world", "format", "--start", "0", "--end", "5", "--marker", "italic")
	require.NoError(t, err)
	assert.Equal(t, "*hello* world", out)

	out, _, err = execute(t, "hello world", "format", "--start", "6", "--end", "11",
		"--prefix", "<u>", "--suffix", "</u>", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"document":"hello <u>world</u>","start":9,"end":14}`, out)
}

func TestFormatInPlace(t *testing.T) {
	t.Parallel()

	path := project(t, "make it bold")

	out, _, err := execute(t, "", "format", "--start", "8", "--end", "12", "--in-place", path)
	require.NoError(t, err)
	assert.Equal(t, "10 14\n", out)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "make it **bold**", string(content))

	_, _, err = execute(t, "", "format", "--start", "10", "--end", "14", "--in-place", path)
	require.NoError(t, err)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "make it bold", string(content))
}

func TestFormatUsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"missing end", []string{"format", "--start", "1"}},
		{"in-place without file", []string{"format", "--start", "0", "--end", "1", "--in-place"}},
		{"unknown marker", []string{"format", "--start", "0", "--end", "1", "--marker", "blink"}},
		{"suffix without prefix", []string{"format", "--start", "0", "--end", "1", "--suffix", "x"}},
		{"unknown flag", []string{"format", "--nope"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, "text", tc.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
		})
	}
}

func TestTableCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "table", "--rows", "2", "--cols", "2")
	require.NoError(t, err)
	assert.Equal(t, format.Table(2, 2), out)

	_, _, err = execute(t, "", "table", "--rows", "0")
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestRenderCommand(t *testing.T) {
	t.Parallel()

	path := project(t, deck)
	output := filepath.Join(filepath.Dir(path), "deck.html")

	_, _, err := execute(t, "", "render", "--output", output, path)
	require.NoError(t, err)

	page, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(page), `<section class="slide"`))
	assert.Contains(t, string(page), "<strong>world</strong>")
	assert.Contains(t, string(page), "<title>deck</title>")
}

func TestRenderFragmentUsesConfig(t *testing.T) {
	t.Parallel()

	path := project(t, "one\ntwo")
	cfg := filepath.Join(filepath.Dir(path), ".mdslide.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("render:\n  breaks: false\n"), 0o644))

	out, _, err := execute(t, "", "render", "--fragment", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "<br")

	out, _, err = execute(t, "", "render", "--fragment", "--breaks", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<br")
}

func TestInitCommand(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), ".mdslide.yml")

	_, _, err := execute(t, "", "init", "--output", output)
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "default_marker: bold")

	_, _, err = execute(t, "", "init", "--output", output)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))

	_, _, err = execute(t, "", "init", "--output", output, "--force")
	require.NoError(t, err)
}

func TestExitCodes(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "split", filepath.Join(t.TempDir(), "missing.md"))
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))

	path := project(t, deck)
	cfg := filepath.Join(filepath.Dir(path), ".mdslide.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("watch:\n  delay: -1s\n"), 0o644))

	_, _, err = execute(t, "", "split", path)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))

	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitInternalError, cli.ExitCode(assert.AnError))
}

func TestWatchCommand(t *testing.T) {
	t.Parallel()

	path := project(t, "# One")
	output := filepath.Join(filepath.Dir(path), "deck.html")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := cli.NewRootCommand(testInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"watch", "--output", output, "--delay", "10ms", path})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	readOutput := func() string {
		content, err := os.ReadFile(output)
		if err != nil {
			return ""
		}
		return string(content)
	}

	require.Eventually(t, func() bool {
		return strings.Contains(readOutput(), "<h1>One</h1>")
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("# One\n---\n# Two"), 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(readOutput(), "<h1>Two</h1>")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchRequiresOutput(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "watch", project(t, deck))
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}
