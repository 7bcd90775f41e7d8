package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/HaiFongPan/kvpage/internal/config"
	"github.com/HaiFongPan/kvpage/internal/kv"
	"github.com/HaiFongPan/kvpage/internal/r2"
	"github.com/HaiFongPan/kvpage/internal/source"
)

// sourceRef returns the source argument, defaulting to stdin when it is
// piped.
func sourceRef(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return source.Stdin, nil
	}
	return "", fmt.Errorf("no source given (pass a file, - for stdin, or r2://bucket/key)")
}

func defaultTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.General.DefaultTimeout) * time.Second
}

// remote creates the R2 client on first use.
func remote(cfg *config.Config) source.Remote {
	return func(ctx context.Context) (source.Fetcher, error) {
		client, err := r2.NewClient(ctx, &cfg.R2)
		if err != nil {
			return nil, fmt.Errorf("failed to create R2 client: %w", err)
		}
		return client, nil
	}
}

func loadDocument(ctx context.Context, cfg *config.Config, ref string, binder source.ActionBinder) (*source.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout(cfg))
	defer cancel()

	return source.Load(ctx, ref, os.Stdin, remote(cfg), binder)
}

func documentTitle(doc *source.Document) string {
	if viewTitle != "" {
		return viewTitle
	}
	return doc.Title
}

func displayOptions(d config.DisplayConfig) kv.Options {
	return kv.Options{
		ItemHeight: d.ItemHeight,
		Padding:    d.Padding,
		RuleHeight: 1,
		LabelInset: d.LabelInset,
		Touch:      d.Touch,
		Degenerate: kv.Degenerate(strings.ToLower(d.Degenerate)),
	}
}

func snapshotOptions(s config.SnapshotConfig, degenerate string) kv.Options {
	return kv.Options{
		ItemHeight: s.ItemHeight,
		Padding:    s.Padding,
		RuleHeight: 1,
		LabelInset: s.LabelInset,
		Degenerate: kv.Degenerate(strings.ToLower(degenerate)),
	}
}

// seekPage moves p to page n, counting from 1.
func seekPage(p *kv.Pager, n int) error {
	if n < 1 || n > p.TotalPages() {
		return fmt.Errorf("page %d out of range (1-%d)", n, p.TotalPages())
	}
	for p.Page() < n {
		p.NextPage()
	}
	return nil
}
