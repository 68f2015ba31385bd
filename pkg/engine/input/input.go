package input

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin
func GetInput() (string, error) {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadEscape decodes the rest of an escape sequence after ESC.
// A lone ESC is reported as "escape".
func tryReadEscape() string {
	b2, err := readByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// codeForByte names a single raw byte the way the bindings table does
func codeForByte(b byte) string {
	switch b {
	case 3:
		return "ctrl_c"
	case '\r', '\n':
		return "enter"
	case '\t':
		return "tab"
	case ' ':
		return "space"
	}
	if b >= 33 && b < 127 {
		return string(b)
	}
	return ""
}

// ErrNotTerminal is returned by ReadKey when stdin is not a terminal.
var ErrNotTerminal = errors.New("input: stdin is not a terminal")

// ReadKey puts the terminal into raw mode, reads one key press and returns
// its code. Keys that need no Enter include arrows, ESC and Ctrl+C.
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	// Reset the buffered reader to avoid conflicts with raw mode
	stdinReader = nil

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer term.Restore(fd, oldState)

	b, err := readByte()
	if err != nil {
		return "", err
	}
	if b == 0x1b {
		return tryReadEscape(), nil
	}
	return codeForByte(b), nil
}

// GetInputWithArrows reads a single key when stdin is a terminal and falls
// back to line input otherwise, then maps it to an intent.
func GetInputWithArrows() (Intent, error) {
	code, err := ReadKey()
	if errors.Is(err, ErrNotTerminal) {
		var line string
		line, err = GetInput()
		code = line
	}
	if err != nil {
		return Intent{Action: ActionQuit}, err
	}
	return IntentFor(DeviceTerminal, code), nil
}
