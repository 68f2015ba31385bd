package gameplay

import (
	"log"

	engineinput "simpledungeon/pkg/engine/input"
	"simpledungeon/pkg/game/i18n"
	"simpledungeon/pkg/game/renderer"
)

// ProcessIntent handles a high-level input intent. It returns false when
// the session should end.
func ProcessIntent(s *Session, intent engineinput.Intent) bool {
	switch intent.Action {
	case engineinput.ActionNone:
		return true

	case engineinput.ActionQuit:
		return false

	case engineinput.ActionRegenerate:
		s.Regenerate(s.NewSeed())

	case engineinput.ActionReplay:
		seed := s.Level.Seed
		s.Regenerate(seed)
		s.Level.AddMessage(i18n.T("MSG_REPLAY", seed))

	case engineinput.ActionToggleField:
		s.ToggleField()

	case engineinput.ActionDump:
		paths, err := s.Dump()
		for _, p := range paths {
			s.Level.AddMessage(i18n.T("MSG_DUMPED", p))
		}
		if err != nil {
			log.Printf("gameplay: dump: %v", err)
			s.Level.AddMessage(i18n.T("MSG_DUMP_FAILED", err.Error()))
		}

	case engineinput.ActionHelp:
		s.Level.AddMessage(i18n.T("HELP_TITLE") + ":")
		for _, line := range renderer.HelpLines() {
			s.Level.AddMessage("  " + line)
		}
	}
	return true
}

// Run draws the level and handles input until the user quits
func Run(s *Session) {
	for {
		renderer.Clear()
		renderer.RenderFrame(s.Level)
		if !ProcessIntent(s, renderer.GetInput()) {
			return
		}
	}
}
