package actions

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyToClipboard writes content to the system clipboard.
func CopyToClipboard(content string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard tool found (install xclip, xsel or wl-clipboard)")
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
