package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"simpledungeon/pkg/engine/terminal"
	"simpledungeon/pkg/game/config"
	"simpledungeon/pkg/game/gameplay"
	"simpledungeon/pkg/game/generator"
	"simpledungeon/pkg/game/i18n"
	"simpledungeon/pkg/game/renderer"
	"simpledungeon/pkg/game/renderer/ebiten"
	"simpledungeon/pkg/game/renderer/screen"
	"simpledungeon/pkg/game/renderer/tui"
)

// resolveRenderer turns "auto" into a concrete backend
func resolveRenderer(name string) string {
	name = strings.ToLower(name)
	if name != config.RendererAuto {
		return name
	}
	if terminal.IsInteractive() {
		return config.RendererScreen
	}
	return config.RendererTUI
}

// setupLogging sends diagnostics to the log file when one is given. Full
// screen backends own the terminal, so without a file their logs are dropped.
func setupLogging(cfg config.Config, backend string) (io.Closer, error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		log.SetOutput(f)
		return f, nil
	}
	if !cfg.DumpOnly && (backend == config.RendererScreen || backend == config.RendererEbiten) {
		log.SetOutput(io.Discard)
	}
	return nil, nil
}

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	backend := resolveRenderer(cfg.Renderer)
	logFile, err := setupLogging(cfg, backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := i18n.Load(cfg.Language); err != nil {
		log.Printf("i18n: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := gameplay.NewSession(cfg, generator.New(cfg))
	if err := s.Start(seed); err != nil {
		fmt.Fprintln(os.Stderr, i18n.T("MSG_GENERATION_FAILED", err.Error()))
		os.Exit(1)
	}

	if cfg.DumpOnly {
		paths, err := s.Dump()
		for _, p := range paths {
			fmt.Println(p)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, i18n.T("MSG_DUMP_FAILED", err.Error()))
			os.Exit(1)
		}
		return
	}

	switch backend {
	case config.RendererEbiten:
		e := ebiten.New()
		renderer.SetRenderer(e)
		if err := renderer.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", backend, err)
			os.Exit(1)
		}
		if err := e.Run(func() { gameplay.Run(s) }); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", backend, err)
			if logFile != nil {
				logFile.Close()
			}
			os.Exit(1)
		}
		return

	case config.RendererScreen:
		if !terminal.Fits(cfg.Width, cfg.Height, 17) {
			log.Print(i18n.T("MSG_TOO_SMALL", cfg.Width, cfg.Height))
		}
		renderer.SetRenderer(screen.New())

	default:
		renderer.SetRenderer(tui.New())
	}

	if err := renderer.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", backend, err)
		os.Exit(1)
	}
	gameplay.Run(s)
	renderer.Close()
}
