// Package actions turns the action names found in entry documents into
// callbacks the pager runs when a row is tapped.
package actions

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/kvpage/internal/kv"
	"github.com/HaiFongPan/kvpage/internal/tui/messaging"
)

const (
	// ActionCopy copies the row value to the clipboard.
	ActionCopy = "copy"
	// ActionCopyKey copies the row key to the clipboard.
	ActionCopyKey = "copy-key"
	// ExecPrefix introduces a shell command, e.g. "exec:uptime".
	ExecPrefix = "exec:"
)

// Runner executes a shell command and returns its combined output.
type Runner func(ctx context.Context, command string, env []string) (string, error)

// Binder builds actions that report through a status manager.
type Binder struct {
	Timeout   time.Duration
	Status    messaging.StatusManager
	Clipboard func(string) error
	Run       Runner
}

// NewBinder returns a binder using the system clipboard and sh. status may
// be nil, in which case results are only logged.
func NewBinder(timeout time.Duration, status messaging.StatusManager) *Binder {
	return &Binder{
		Timeout:   timeout,
		Status:    status,
		Clipboard: CopyToClipboard,
		Run:       ShellRunner,
	}
}

// Bind returns the named action for a row, or nil when the name is
// empty or unknown.
func (b *Binder) Bind(name, key, value string) kv.Action {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nil
	case name == ActionCopy:
		return func() { b.copy(value, "value") }
	case name == ActionCopyKey:
		return func() { b.copy(key, "key") }
	case strings.HasPrefix(name, ExecPrefix):
		command := strings.TrimSpace(strings.TrimPrefix(name, ExecPrefix))
		if command == "" {
			logrus.WithField("key", key).Warn("Empty exec action ignored")
			return nil
		}
		return func() { b.exec(command, key, value) }
	default:
		logrus.WithFields(logrus.Fields{
			"key":    key,
			"action": name,
		}).Warn("Unknown action ignored")
		return nil
	}
}

func (b *Binder) copy(text, what string) {
	if err := b.Clipboard(text); err != nil {
		logrus.WithError(err).Error("Failed to copy to clipboard")
		b.report(fmt.Sprintf("Copy failed: %v", err), messaging.MessageError)
		return
	}
	logrus.WithField("length", len(text)).Debug("Copied to clipboard")
	b.report(fmt.Sprintf("Copied %s to clipboard", what), messaging.MessageSuccess)
}

func (b *Binder) exec(command, key, value string) {
	ctx := context.Background()
	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}

	env := []string{"KVPAGE_KEY=" + key, "KVPAGE_VALUE=" + value}
	logger := logrus.WithField("command", command)
	start := time.Now()

	out, err := b.Run(ctx, command, env)
	logger = logger.WithField("duration", time.Since(start))
	if err != nil {
		logger.WithError(err).Error("Action command failed")
		b.report(fmt.Sprintf("%s: %v", command, err), messaging.MessageError)
		return
	}

	logger.Info("Action command finished")
	msg := firstLine(out)
	if msg == "" {
		msg = fmt.Sprintf("%s: done", command)
	}
	b.report(msg, messaging.MessageSuccess)
}

func (b *Binder) report(msg string, msgType messaging.MessageType) {
	if b.Status != nil {
		b.Status.SetMessage(msg, msgType)
	}
}

// ShellRunner runs command with sh -c, adding env to the process
// environment.
func ShellRunner(ctx context.Context, command string, env []string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Env = append(os.Environ(), env...)
	cmd.WaitDelay = time.Second
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return buf.String(), fmt.Errorf("timed out: %w", ctx.Err())
		}
		return buf.String(), err
	}
	return buf.String(), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}
