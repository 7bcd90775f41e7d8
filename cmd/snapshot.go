package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/kvpage/internal/kv"
	"github.com/HaiFongPan/kvpage/internal/layout"
	"github.com/HaiFongPan/kvpage/internal/snapshot"
)

var (
	snapshotOutput string
	snapshotPage   int
	snapshotScale  int
	snapshotInline bool
)

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot [source]",
	Short: "Paint a page to a PNG image",
	Long: `Paint one page of a document to a PNG image using a 7x13 pixel font.
Width and height are in pixels and default to the snapshot config section.

Examples:
  kvpage snapshot device.yaml -o page.png              # First page
  kvpage snapshot device.yaml -o page.png --page 2     # Second page
  kvpage snapshot device.yaml -o - --scale 3 > big.png # Enlarged, to stdout
  kvpage snapshot device.yaml --inline                 # Show in kitty/iTerm2/sixel terminals`,
	Args: cobra.MaximumNArgs(1),
	RunE: snapshotPageCmd,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "", "output PNG path, - for stdout")
	snapshotCmd.Flags().IntVarP(&snapshotPage, "page", "p", 1, "page to paint, starting at 1")
	snapshotCmd.Flags().IntVar(&snapshotScale, "scale", 1, "integer scale factor")
	snapshotCmd.Flags().BoolVar(&snapshotInline, "inline", false, "display the image in the terminal")
}

func snapshotPageCmd(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	if snapshotOutput == "" && !snapshotInline {
		return fmt.Errorf("either --output or --inline is required")
	}
	if snapshotScale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", snapshotScale)
	}

	ref, err := sourceRef(args)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd.Context(), cfg, ref, nil)
	if err != nil {
		return err
	}

	viewport := layout.Size{W: cfg.Snapshot.Width, H: cfg.Snapshot.Height}
	if cmd.Flags().Changed("width") {
		viewport.W = viewWidth
	}
	if cmd.Flags().Changed("height") {
		viewport.H = viewHeight
	}

	painter := snapshot.NewPainter()
	pager, err := kv.New(doc.Entries, viewport, documentTitle(doc), painter.Face, snapshotOptions(cfg.Snapshot, cfg.Display.Degenerate), nil)
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}
	if err := seekPage(pager, snapshotPage); err != nil {
		return err
	}

	img := snapshot.Scale(painter.Paint(pager.View(), viewport), snapshotScale)
	logrus.WithFields(logrus.Fields{
		"page":  pager.Page(),
		"pages": pager.TotalPages(),
		"scale": snapshotScale,
	}).Debug("Snapshot painted")

	if snapshotInline {
		proto := snapshot.DetectProtocol(os.Getenv)
		if err := snapshot.WriteInline(cmd.OutOrStdout(), img, proto); err != nil {
			return err
		}
	}

	switch snapshotOutput {
	case "":
		return nil
	case "-":
		return snapshot.Encode(cmd.OutOrStdout(), img)
	default:
		if err := snapshot.Save(img, snapshotOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved page %d/%d to %s\n", pager.Page(), pager.TotalPages(), snapshotOutput)
		return nil
	}
}
