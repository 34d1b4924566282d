package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/username/goviet-ime/internal/engine"
	"github.com/username/goviet-ime/internal/host"
)

const (
	serviceName = "com.github.goviet.ime"
	objectPath  = "/Engine"

	modShift   = 1 << 0
	modControl = 1 << 2
)

// InputEngine is the D-Bus object that receives key events from Fcitx5.
// One process serves one text field, so it wraps a single engine
// directly rather than going through a host.SessionStore.
type InputEngine struct {
	engine *engine.Engine
	logger *log.Logger
}

// NewInputEngine creates a new InputEngine with default settings.
func NewInputEngine(logger *log.Logger) *InputEngine {
	return &InputEngine{
		engine: engine.New(engine.DefaultSettings(), logger),
		logger: logger,
	}
}

// ProcessKey handles key events from Fcitx5 frontend.
// Input: keysym (X11 keycode), modifiers (Shift/Ctrl/Alt state)
// Output: handled (was key consumed), commitText (text to commit), preeditText (composition)
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, string, string, *dbus.Error) {
	key, ok := keysymToKey(keysym)
	if !ok {
		return false, "", string(e.engine.Buffer()), nil
	}

	ev := engine.KeyEvent{
		Key:       key,
		Uppercase: modifiers&modShift != 0,
		Ctrl:      modifiers&modControl != 0,
	}

	result := host.Dispatch(e.engine, host.OpProcessKey, host.Request{Key: ev})

	if e.logger != nil {
		e.logger.Printf("keysym=0x%x mods=0x%x action=%d backspace=%d commit=%q preedit=%q",
			keysym, modifiers, result.Action, result.Backspace, string(result.Codepoints), string(e.engine.Buffer()))
	}

	handled := result.Action != engine.ActionNone
	return handled, string(result.Codepoints), string(e.engine.Buffer()), nil
}

// Reset clears the current composition state.
func (e *InputEngine) Reset() *dbus.Error {
	host.Dispatch(e.engine, host.OpClear, host.Request{})
	fmt.Println(">>> [GoViet] Engine reset")
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	host.Dispatch(e.engine, host.OpSetEnabled, host.Request{Bool: enabled})
	fmt.Printf(">>> [GoViet] Engine enabled: %v\n", enabled)
	return nil
}

// SetMethod switches between Telex and VNI. methodName is "telex" or "vni".
func (e *InputEngine) SetMethod(methodName string) *dbus.Error {
	m := engine.MethodTelex
	if methodName == "vni" {
		m = engine.MethodVNI
	}
	host.Dispatch(e.engine, host.OpSetMethod, host.Request{Method: m})
	return nil
}

// GetPreedit returns the current preedit string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return string(e.engine.Buffer()), nil
}

func main() {
	// 1. Connect to Session Bus
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	// 2. Register Service Name
	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}

	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	// 3. Setup Logging
	logFile, err := os.OpenFile("typing.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [GoViet] Logging to typing.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [GoViet] Failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	// 4. Create and export the engine
	inputEngine := NewInputEngine(logger)

	err = conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	// 5. Print startup banner
	fmt.Println("================================================")
	fmt.Println("GoViet-IME Backend is running!")
	fmt.Println("================================================")
	fmt.Printf("  Service:     %s\n", serviceName)
	fmt.Printf("  Object Path: %s\n", objectPath)
	fmt.Printf("  Input Method: %s\n", inputEngine.engine.Settings().Method)
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	// 6. Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n>>> [GoViet] Shutting down...")
}
