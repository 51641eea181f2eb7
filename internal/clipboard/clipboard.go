// Package clipboard copies feedback text to the system clipboard, falling back
// to an OSC52 escape sequence when no clipboard helper is available (for
// example over SSH).
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

type Method uint8

const (
	MethodSystem Method = iota
	MethodOSC52
)

func (m Method) String() string {
	switch m {
	case MethodOSC52:
		return "osc52"
	default:
		return "system"
	}
}

// Copier replaces the clipboard contents with text.
type Copier interface {
	Copy(ctx context.Context, text string) (Method, error)
}

const disableOSC52Env = "COMMENTBANK_DISABLE_OSC52"

var writeAll = clipboard.WriteAll
var writeOSC52 = writeOSC52Clipboard

var openTTYForWrite = func() (io.WriteCloser, error) {
	return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
}

type Service struct {
	DisableOSC52 bool
}

func (s Service) Copy(ctx context.Context, text string) (Method, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	type result struct {
		method Method
		err    error
	}
	systemWrite, oscWrite := writeAll, writeOSC52
	done := make(chan result, 1)
	go func() {
		method, err := s.copy(text, systemWrite, oscWrite)
		done <- result{method: method, err: err}
	}()
	select {
	case <-ctx.Done():
		return MethodSystem, ctx.Err()
	case res := <-done:
		return res.method, res.err
	}
}

func (s Service) copy(text string, systemWrite, oscWrite func(string) error) (Method, error) {
	err := systemWrite(text)
	if err == nil {
		return MethodSystem, nil
	}
	if s.DisableOSC52 {
		return MethodSystem, fmt.Errorf("system clipboard failed: %s", humanizeError(err))
	}
	oscErr := oscWrite(text)
	if oscErr == nil {
		return MethodOSC52, nil
	}
	return MethodSystem, combineErrors(err, oscErr)
}

// WithReturn appends a newline when withReturn is set, so the pasted comment
// ends its line.
func WithReturn(text string, withReturn bool) string {
	if withReturn {
		return text + "\n"
	}
	return text
}

func writeOSC52Clipboard(text string) error {
	if !shouldAttemptOSC52() {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := openTTYForWrite()
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return writeOSC52Sequence(tty, text)
}

func writeOSC52Sequence(w io.Writer, text string) error {
	termName := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if os.Getenv("TMUX") != "" {
		// tmux may or may not pass plain OSC52 through depending on its
		// set-clipboard option, so send both forms.
		if _, err := osc52.New(text).WriteTo(w); err != nil {
			return err
		}
		_, err := osc52.New(text).Tmux().WriteTo(w)
		return err
	}
	if strings.HasPrefix(termName, "screen") {
		_, err := osc52.New(text).Screen().WriteTo(w)
		return err
	}
	_, err := osc52.New(text).WriteTo(w)
	return err
}

func shouldAttemptOSC52() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(disableOSC52Env))) {
	case "1", "true", "yes", "on":
		return false
	}
	termName := strings.TrimSpace(os.Getenv("TERM"))
	if termName == "" || strings.EqualFold(termName, "dumb") {
		return false
	}
	return true
}

func combineErrors(systemErr, oscErr error) error {
	oscMsg := humanizeError(oscErr)
	if missingDisplay() {
		return fmt.Errorf("no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset); OSC52 fallback failed: %s", oscMsg)
	}
	return fmt.Errorf("system clipboard failed: %s; OSC52 fallback failed: %s", humanizeError(systemErr), oscMsg)
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "exit status 1" {
		if missingDisplay() {
			return "no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset)"
		}
		return "clipboard helper exited with status 1"
	}
	return msg
}

func missingDisplay() bool {
	return strings.TrimSpace(os.Getenv("DISPLAY")) == "" && strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) == ""
}
