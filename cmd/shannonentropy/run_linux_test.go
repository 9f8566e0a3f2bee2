//go:build linux

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestRun_TerminalOutput(t *testing.T) {
	input := writeInput(t, t.TempDir(), "aab.txt", []byte("AAB"))
	ptmx, tty := openTerminal(t)
	stderr := tempStream(t, "stderr")

	err := run(context.Background(), []string{"shannonentropy", input}, func(string) string { return "" }, tty, stderr)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	want := "File: " + input + "\nShannon entropy: 0.9182958340544896\n"
	if got := readTerminal(t, ptmx, 2); got != want {
		t.Errorf("terminal output = %q, want %q", got, want)
	}
}

// Helper functions

func openTerminal(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()

	ptmx, err := os.OpenFile("/dev/ptmx", os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		t.Skipf("pseudo-terminals unavailable: %v", err)
	}
	t.Cleanup(func() { ptmx.Close() })

	fd := int(ptmx.Fd())
	if err := unix.IoctlSetPointerInt(fd, unix.TIOCSPTLCK, 0); err != nil {
		t.Skipf("failed to unlock pty: %v", err)
	}
	n, err := unix.IoctlGetInt(fd, unix.TIOCGPTN)
	if err != nil {
		t.Skipf("failed to get pty number: %v", err)
	}

	tty, err = os.OpenFile(fmt.Sprintf("/dev/pts/%d", n), os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		t.Skipf("failed to open pty slave: %v", err)
	}
	t.Cleanup(func() { tty.Close() })

	return ptmx, tty
}

func readTerminal(t *testing.T, ptmx *os.File, lines int) string {
	t.Helper()

	done := make(chan string, 1)
	go func() {
		var out []byte
		buf := make([]byte, 256)
		for strings.Count(string(out), "\n") < lines {
			n, err := ptmx.Read(buf)
			out = append(out, buf[:n]...)
			if err != nil {
				break
			}
		}
		done <- string(out)
	}()

	select {
	case out := <-done:
		return strings.ReplaceAll(out, "\r\n", "\n")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out reading terminal output")
		return ""
	}
}
