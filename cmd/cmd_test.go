package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaiFongPan/kvpage/internal/config"
	"github.com/HaiFongPan/kvpage/internal/kv"
	"github.com/HaiFongPan/kvpage/internal/layout"
	"github.com/HaiFongPan/kvpage/internal/textfit"
)

const deviceDoc = `title: Info
entries:
  - [Period, "00:00:00"]
  - "----"
  - [Page, 5]
`

// execute runs the root command with fresh flag state and a private
// config file.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "config.toml")
	cfgBody := fmt.Sprintf("[log]\nfile = %q\n", filepath.Join(dir, "app.log"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0644))

	for _, c := range []*cobra.Command{rootCmd, renderCmd, snapshotCmd} {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", cfgPath))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "device.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestRender_FirstPage(t *testing.T) {
	out, err := execute(t, "render", writeDoc(t, deviceDoc), "--width", "16", "--height", "4")
	require.NoError(t, err)

	assert.Equal(t, " Info         × \n"+
		" ──────────1/2─ \n"+
		" Period00:00:00 \n"+
		" ────────────── \n", out)
}

func TestRender_AllPages(t *testing.T) {
	out, err := execute(t, "render", writeDoc(t, deviceDoc), "--width", "16", "--height", "4", "--all", "--title", "Clock")
	require.NoError(t, err)

	assert.Equal(t, " Clock        × \n"+
		" ──────────1/2─ \n"+
		" Period00:00:00 \n"+
		" ────────────── \n"+
		"\n"+
		" Clock        × \n"+
		" ──────────2/2─ \n"+
		" Page         5 \n"+
		"                \n", out)
}

func TestRender_PageOutOfRange(t *testing.T) {
	_, err := execute(t, "render", writeDoc(t, deviceDoc), "--width", "16", "--height", "4", "--page", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 3 out of range (1-2)")
}

func TestRender_InvalidDocument(t *testing.T) {
	_, err := execute(t, "render", writeDoc(t, "title: [unterminated"), "--width", "16", "--height", "4")
	assert.Error(t, err)
}

func TestSnapshot_WritesScaledPNG(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "page.png")
	out, err := execute(t, "snapshot", writeDoc(t, deviceDoc), "-o", outPath, "--width", "120", "--height", "80", "--scale", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved page 1/")

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 240, cfg.Width)
	assert.Equal(t, 160, cfg.Height)
}

func TestSnapshot_RequiresOutput(t *testing.T) {
	_, err := execute(t, "snapshot", writeDoc(t, deviceDoc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --output or --inline is required")
}

func TestSnapshot_RejectsBadScale(t *testing.T) {
	_, err := execute(t, "snapshot", writeDoc(t, deviceDoc), "-o", "-", "--scale", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scale must be at least 1")
}

func TestDisplayOptions(t *testing.T) {
	opts := displayOptions(config.DisplayConfig{
		ItemHeight: 2,
		Padding:    3,
		LabelInset: 4,
		Touch:      true,
		Degenerate: "FAIL",
	})

	assert.Equal(t, kv.Options{
		ItemHeight: 2,
		Padding:    3,
		RuleHeight: 1,
		LabelInset: 4,
		Touch:      true,
		Degenerate: kv.DegenerateFail,
	}, opts)
}

func TestSeekPage(t *testing.T) {
	entries := kv.Ingest([]any{
		[2]string{"a", "1"},
		[2]string{"b", "2"},
		[2]string{"c", "3"},
	})
	p, err := kv.New(entries, layout.Size{W: 16, H: 3}, "T", textfit.NewCellFace(), kv.DefaultOptions(), nil)
	require.NoError(t, err)
	require.Equal(t, 3, p.TotalPages())

	require.NoError(t, seekPage(p, 3))
	assert.Equal(t, 3, p.Page())
	assert.Error(t, seekPage(p, 0))
	assert.Error(t, seekPage(p, 4))
}
