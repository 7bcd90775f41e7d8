package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/kvpage/internal/kv"
	"github.com/HaiFongPan/kvpage/internal/layout"
	"github.com/HaiFongPan/kvpage/internal/textfit"
	"github.com/HaiFongPan/kvpage/internal/tui"
)

var (
	renderPage int
	renderAll  bool
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render [source]",
	Short: "Print pages as plain text",
	Long: `Render pages of a document as plain text, laid out exactly as the
interactive pager shows them.

Examples:
  kvpage render device.yaml                 # First page
  kvpage render device.yaml --page 2        # Second page
  kvpage render device.yaml --all           # Every page
  cat device.yaml | kvpage render --width 40 --height 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: renderPages,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().IntVarP(&renderPage, "page", "p", 1, "page to render, starting at 1")
	renderCmd.Flags().BoolVarP(&renderAll, "all", "a", false, "render every page")
	renderCmd.MarkFlagsMutuallyExclusive("page", "all")
}

func renderPages(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	ref, err := sourceRef(args)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd.Context(), cfg, ref, nil)
	if err != nil {
		return err
	}

	width, height := cfg.Display.Width, cfg.Display.Height
	if cmd.Flags().Changed("width") {
		width = viewWidth
	}
	if cmd.Flags().Changed("height") {
		height = viewHeight
	}
	viewport := tui.ResolveViewport(width, height, tui.TerminalSize)

	opts := displayOptions(cfg.Display)
	opts.Touch = false
	pager, err := kv.New(doc.Entries, viewport, documentTitle(doc), textfit.NewCellFace(), opts, nil)
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"pages":    pager.TotalPages(),
		"per_page": pager.PerPage(),
		"all":      renderAll,
	}).Debug("Rendering")

	out := cmd.OutOrStdout()
	if !renderAll {
		if err := seekPage(pager, renderPage); err != nil {
			return err
		}
		return writePage(out, pager, viewport)
	}

	for {
		if err := writePage(out, pager, viewport); err != nil {
			return err
		}
		if !pager.NextPage() {
			return nil
		}
		fmt.Fprintln(out)
	}
}

func writePage(w io.Writer, p *kv.Pager, viewport layout.Size) error {
	grid := layout.NewGrid(viewport.W, viewport.H)
	grid.Paint(p.View(), layout.Point{})
	_, err := fmt.Fprintln(w, grid.String())
	return err
}
