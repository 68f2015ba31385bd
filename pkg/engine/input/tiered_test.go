package input

import "testing"

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"q", ActionQuit},
		{"escape", ActionQuit},
		{"ctrl_c", ActionQuit},
		{"r", ActionRegenerate},
		{"space", ActionRegenerate},
		{"R", ActionReplay},
		{"d", ActionDump},
		{"f", ActionToggleField},
		{"?", ActionHelp},
		{"arrow_up", ActionNone},
		{"", ActionNone},
	}
	for _, tt := range tests {
		got := MapToIntent(DebouncedInput{Device: DeviceKeyboard, Code: tt.code})
		if got.Action != tt.want {
			t.Errorf("MapToIntent(%q) = %s, want %s", tt.code, ActionName(got.Action), ActionName(tt.want))
		}
	}
}

func TestCodeForByte(t *testing.T) {
	tests := map[byte]string{
		3:    "ctrl_c",
		'\r': "enter",
		'\t': "tab",
		' ':  "space",
		'r':  "r",
		'R':  "R",
		0x01: "",
	}
	for b, want := range tests {
		if got := codeForByte(b); got != want {
			t.Errorf("codeForByte(%d) = %q, want %q", b, got, want)
		}
	}
}

func TestSetSingleBinding(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	defer func() { bindings = saved }()

	SetSingleBinding(ActionQuit, "x")
	if got := IntentFor(DeviceKeyboard, "x").Action; got != ActionQuit {
		t.Errorf("x -> %s, want Quit", ActionName(got))
	}
	if got := IntentFor(DeviceKeyboard, "q").Action; got != ActionNone {
		t.Errorf("q still bound to %s", ActionName(got))
	}
	// Reserved codes survive rebinding.
	if got := IntentFor(DeviceKeyboard, "escape").Action; got != ActionQuit {
		t.Errorf("escape -> %s, want Quit", ActionName(got))
	}

	SetSingleBinding(ActionDump, "escape")
	if got := IntentFor(DeviceKeyboard, "escape").Action; got != ActionQuit {
		t.Errorf("reserved escape was rebound to %s", ActionName(got))
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionQuit]
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
}
