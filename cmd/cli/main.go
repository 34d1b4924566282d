// Command goviet-cli is an interactive terminal demo of the engine: it
// puts the terminal in raw mode, pumps bytes from stdin through a
// background goroutine (the same reader-goroutine-plus-channel shape as
// a raw-mode terminal reader), and echoes the composed text.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/username/goviet-ime/internal/engine"
)

// byteReader pumps stdin bytes into a channel so the main loop can
// select over input and never block the terminal restore on exit.
type byteReader struct {
	data chan byte
	err  chan error
}

func newByteReader(f *os.File) *byteReader {
	r := &byteReader{data: make(chan byte, 256), err: make(chan error, 1)}
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := f.Read(buf)
			for i := 0; i < n; i++ {
				r.data <- buf[i]
			}
			if err != nil {
				r.err <- err
				return
			}
		}
	}()
	return r
}

func main() {
	methodFlag := "telex"
	if len(os.Args) > 1 {
		methodFlag = os.Args[1]
	}
	settings := engine.DefaultSettings()
	if methodFlag == "vni" {
		settings.Method = engine.MethodVNI
	}

	e := engine.New(settings, nil)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to enter raw mode:", err)
		os.Exit(1)
	}
	defer term.Restore(fd, oldState)

	fmt.Printf("goviet-cli: %s mode, Ctrl-C to quit\r\n", settings.Method)

	reader := newByteReader(os.Stdin)
	for {
		select {
		case b := <-reader.data:
			if b == 0x03 { // Ctrl-C
				fmt.Print("\r\n")
				return
			}
			handleByte(e, b)
		case <-reader.err:
			return
		}
	}
}

func handleByte(e *engine.Engine, b byte) {
	switch b {
	case 0x7f, 0x08:
		apply(e.ProcessKey(engine.KeyEvent{Key: engine.KeyBackspace}))
		return
	case '\r', '\n':
		apply(e.ProcessKey(engine.KeyEvent{Key: engine.KeyReturn}))
		fmt.Print("\r\n")
		return
	case 0x1b:
		apply(e.ProcessKey(engine.KeyEvent{Key: engine.KeyEscape}))
		return
	}

	r := rune(b)
	key, ok := engine.RuneToKey(r)
	if !ok {
		fmt.Printf("%c", r)
		return
	}
	apply(e.ProcessKey(engine.KeyEvent{Key: key, Uppercase: r >= 'A' && r <= 'Z'}))
}

// apply renders a Result to the terminal: erase Backspace characters,
// then type Codepoints. A real terminal has no addressable backspace-N,
// so this demo approximates it with literal backspace-space-backspace
// triples, good enough for a demo host, not a production rendering path.
func apply(res engine.Result) {
	for i := 0; i < res.Backspace; i++ {
		fmt.Print("\b \b")
	}
	for _, r := range res.Codepoints {
		fmt.Printf("%c", r)
	}
}
