package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level request from the viewer.
type Action int

const (
	ActionNone Action = iota

	ActionQuit
	ActionRegenerate  // Generate a new dungeon with a fresh seed
	ActionReplay      // Regenerate the current seed
	ActionDump        // Write the map and cost field dumps
	ActionToggleField // Show or hide the cost field overlay
	ActionHelp
)

// Intent is the 4th-layer, high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "r", "arrow_up", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Terminal raw mode, tcell and ebiten already deliver one event per key
// press, so this is a thin wrapper.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	"r":     ActionRegenerate,
	"n":     ActionRegenerate,
	"space": ActionRegenerate,
	"enter": ActionRegenerate,

	"R": ActionReplay,

	"d":    ActionDump,
	"dump": ActionDump,
	"f12":  ActionDump,

	"f":   ActionToggleField,
	"tab": ActionToggleField,

	"?":    ActionHelp,
	"h":    ActionHelp,
	"help": ActionHelp,
}

// reserved codes can never be rebound
var reserved = map[string]bool{
	"escape": true,
	"ctrl_c": true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentFor maps a code straight to an intent, for backends that have no
// separate raw event stage.
func IntentFor(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{
		Device:    device,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionQuit:
		return "Quit"
	case ActionRegenerate:
		return "New Dungeon"
	case ActionReplay:
		return "Replay Seed"
	case ActionDump:
		return "Dump"
	case ActionToggleField:
		return "Toggle Cost Field"
	case ActionHelp:
		return "Help"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help text doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
