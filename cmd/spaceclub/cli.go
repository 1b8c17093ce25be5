package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spaceclub/spaceclub/app"
	"github.com/spaceclub/spaceclub/audio"
	"github.com/spaceclub/spaceclub/config"
	"github.com/spaceclub/spaceclub/content"
	"github.com/spaceclub/spaceclub/core"
	"github.com/spaceclub/spaceclub/pages"
	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/service"
	"github.com/spaceclub/spaceclub/terminal"
	"github.com/spaceclub/spaceclub/window"
)

// cli holds flag values and the resolved configuration shared by all commands
type cli struct {
	configPath string
	debug      bool
	color      string
	contentDir string
	noAudio    bool

	cfg     config.Config
	logFile *os.File
	lookup  config.LookupFunc
	now     func() time.Time
}

func newCLI() *cli {
	return &cli{lookup: config.OSEnv, now: time.Now}
}

func (c *cli) close() {
	if c.logFile != nil {
		c.logFile.Close()
		c.logFile = nil
	}
}

func (c *cli) root() *cobra.Command {
	root := &cobra.Command{
		Use:   "spaceclub",
		Short: "Equinox space-tech club site in the terminal",
		Long: `Browse the club's pages (events, team, gallery, about, contact) and
explore the interactive orbital scene of its divisions.

Keys: tab/shift-tab or 1-6 switch pages, j/k scroll, enter activates,
o opens the orbital scene, esc closes it, q quits.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTerminal(cmd.Context(), false)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "TOML config file")
	pf.BoolVar(&c.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	pf.StringVar(&c.color, "color", "auto", "color mode: auto, truecolor, 256")
	pf.StringVar(&c.contentDir, "content-dir", "", "directory with site/events/team/gallery JSON (default bundled)")
	pf.BoolVar(&c.noAudio, "no-audio", false, "disable interface sounds")

	root.AddCommand(c.sceneCmd(), c.windowCmd(), c.pageCmd(), c.contentCmd())
	return root
}

// prepare resolves configuration: defaults, file, environment, then explicitly set flags
func (c *cli) prepare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath, c.lookup)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = c.debug
	}
	if flags.Changed("color") {
		cfg.Color = c.color
	}
	if flags.Changed("content-dir") {
		cfg.ContentDir = c.contentDir
	}
	if flags.Changed("no-audio") {
		cfg.Audio.Enabled = !c.noAudio
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.logFile = setupLogging(cfg.Debug)
	return nil
}

func (c *cli) sceneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scene",
		Short: "Open the orbital scene directly; closing it exits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTerminal(cmd.Context(), true)
		},
	}
}

func (c *cli) windowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open the orbital scene in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hub, err := c.startServices(false)
			if err != nil {
				return err
			}
			defer hub.StopAll()

			return window.Run(window.Options{
				Scene:  c.cfg.SceneConfig(),
				FPS:    c.cfg.FPS,
				Title:  "Equinox Orbital",
				Player: service.MustGet[*audio.Service](hub, "audio").Player(),
			})
		},
	}
}

func (c *cli) pageCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:       "page <name>",
		Short:     "Print one page to stdout",
		Args:      cobra.ExactArgs(1),
		ValidArgs: pageNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pages.ParsePage(args[0])
			if err != nil {
				return err
			}
			cs, err := c.loadContent()
			if err != nil {
				return err
			}
			return pages.Print(cmd.OutOrStdout(), p, cs, c.now(), width)
		},
	}
	cmd.Flags().IntVar(&width, "width", parameter.PrintWidth, "wrap width in columns")
	return cmd
}

func (c *cli) contentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Validate site content and summarize it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := c.loadContent()
			if err != nil {
				return err
			}
			now := c.now()
			events, members, images := cs.Counts()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: content ok\n", cs.Site.Name)
			fmt.Fprintf(out, "  events:  %d (%d upcoming, %d past)\n", events, len(cs.Upcoming(now)), len(cs.Past(now)))
			fmt.Fprintf(out, "  team:    %d in %d divisions\n", members, len(cs.TeamByDivision()))
			fmt.Fprintf(out, "  gallery: %d\n", images)
			return nil
		},
	}
}

func pageNames() []string {
	var names []string
	for _, p := range pages.All() {
		names = append(names, p.String())
	}
	return names
}

// loadContent runs the content service alone, for commands without a screen
func (c *cli) loadContent() (*content.Content, error) {
	svc := content.NewService(c.cfg.ContentDir)
	if err := svc.Init(); err != nil {
		return nil, err
	}
	return svc.Content(), nil
}

// startServices registers and initializes the shared services
func (c *cli) startServices(withContent bool) (*service.Hub, error) {
	hub := service.NewHub()
	if withContent {
		if err := hub.Register(content.NewService(c.cfg.ContentDir)); err != nil {
			return nil, err
		}
	}
	if err := hub.Register(audio.NewService(c.cfg.Audio.Enabled, c.cfg.Audio.MasterVolume)); err != nil {
		return nil, err
	}
	if err := hub.InitAll(); err != nil {
		return nil, err
	}
	if err := hub.StartAll(); err != nil {
		hub.StopAll()
		return nil, err
	}
	log.Printf("spaceclub: services %v", hub.Names())
	return hub, nil
}

func (c *cli) runTerminal(ctx context.Context, sceneOnly bool) error {
	hub, err := c.startServices(true)
	if err != nil {
		return err
	}
	defer hub.StopAll()

	mode, err := c.cfg.ColorMode()
	if err != nil {
		return err
	}
	keys, err := c.cfg.KeyTable()
	if err != nil {
		return err
	}
	term, err := terminal.New(mode)
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	core.SetCrashTerminal(term)
	defer term.Fini()

	a := app.New(term, app.Options{
		Scene:     c.cfg.SceneConfig(),
		FPS:       c.cfg.FPS,
		Content:   service.MustGet[*content.Service](hub, "content").Content(),
		Player:    service.MustGet[*audio.Service](hub, "audio").Player(),
		Keys:      keys,
		SceneOnly: sceneOnly,
		Now:       c.now,
	})
	log.Printf("spaceclub: running (%s, scene only %v)", mode, sceneOnly)
	return a.Run(ctx)
}
