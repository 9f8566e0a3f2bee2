package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kula-app/shannonentropy/internal/logging"
)

// Precision is the number of digits printed after the decimal point
const Precision = 16

// Mode selects how a result is rendered
type Mode int

const (
	// Pipe renders one machine-readable line: "<path>|<entropy>"
	Pipe Mode = iota

	// Interactive renders a labelled two-line block for humans
	Interactive
)

func (m Mode) String() string {
	switch m {
	case Interactive:
		return "interactive"
	case Pipe:
		return "pipe"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ModeFor picks Interactive when f is a terminal and Pipe otherwise
func ModeFor(f *os.File) Mode {
	if logging.IsTerminal(f) {
		return Interactive
	}
	return Pipe
}

// Write renders the entropy of path to w in the given mode
func Write(w io.Writer, mode Mode, path string, entropy float64) error {
	value := FormatEntropy(entropy)

	var err error
	switch mode {
	case Interactive:
		_, err = fmt.Fprintf(w, "File: %s\nShannon entropy: %s\n", path, value)
	case Pipe:
		_, err = fmt.Fprintf(w, "%s|%s\n", path, value)
	default:
		return fmt.Errorf("unknown report mode %v", mode)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// FormatEntropy formats an entropy value with Precision fractional digits
func FormatEntropy(entropy float64) string {
	return strconv.FormatFloat(entropy, 'f', Precision, 64)
}
