package main

import (
	"context"
	"embed"
	"log"
	"os"

	"Chronodesk/config"
	"Chronodesk/i18n"
	"Chronodesk/quote"
	"Chronodesk/sound"
	"Chronodesk/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

const appVersion = "0.4.2"

//go:embed assets/*
var content embed.FS

type options struct {
	configPath string
	lang       string
	mute       bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:     "chronodesk",
		Short:   "Stopwatch, analog clock and flip date panel in one small window",
		Version: appVersion,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "settings file (default ~/.chronodesk/config.yaml)")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "UI language: en, pt, es or ru")
	cmd.Flags().BoolVar(&opts.mute, "mute", false, "start with every sound muted")
	return cmd
}

// loadSettings reads the config file, falling back to defaults, and applies
// the command line overrides.
func loadSettings(opts options) (*config.Manager, config.Config) {
	cfg := *config.DefaultConfig()
	manager, err := config.NewManager(opts.configPath)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	} else {
		cfg = manager.GetConfig()
	}
	if opts.mute {
		cfg.Sound.Muted = true
	}
	return manager, cfg
}

func run(opts options) error {
	manager, cfg := loadSettings(opts)

	i18n.SetLang(cfg.Language)
	if opts.lang != "" {
		i18n.SetLang(opts.lang)
	}

	fyneApp := app.New()

	if iconBytes, err := content.ReadFile("assets/icon.svg"); err == nil {
		fyneApp.SetIcon(fyne.NewStaticResource("icon.svg", iconBytes))
	} else {
		log.Printf("Failed to load icon. %v", err)
	}

	th := ui.NewCustomTheme()
	fyneApp.Settings().SetTheme(th)

	player := sound.NewPlayer(sound.OpenSpeaker(sound.DefaultSampleRate), sound.DefaultSampleRate)
	loadAudioFiles(player, content, cfg.Sound)

	a := NewAppManager(content, clockwork.NewRealClock(), player, quote.NewRotator(cfg.Quotes, nil))
	a.ApplySoundConfig(cfg.Sound)

	board := ui.NewBoard(a, fyneApp, th)
	a.SetRenderer(board)

	w := ui.CreateMainWindow(a, board, float32(cfg.Window.Width), float32(cfg.Window.Height))
	a.mainWindow = w

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.SetOnClosed(func() {
		cancel()
	})

	if manager != nil {
		err := manager.WatchConfig(ctx, func(c config.Config) {
			if opts.mute {
				c.Sound.Muted = true
			}
			a.ApplySoundConfig(c.Sound)
		})
		if err != nil {
			log.Printf("Config changes will not be picked up: %v", err)
		}
	}

	go a.Run(ctx)

	w.ShowAndRun()
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
