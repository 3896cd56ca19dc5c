package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/terminalboard/domain"
	"github.com/CrestNiraj12/terminalboard/infra/auth"
	"github.com/CrestNiraj12/terminalboard/infra/board"
	"github.com/CrestNiraj12/terminalboard/infra/config"
	"github.com/CrestNiraj12/terminalboard/infra/editor"
	"github.com/CrestNiraj12/terminalboard/infra/logging"
	"github.com/CrestNiraj12/terminalboard/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: terminalboard [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

// initialSearchType picks the remembered search type, falling back to the default.
func initialSearchType(st config.UIState) domain.SearchType {
	if parsed, err := domain.ParseSearchType(st.SearchType); err == nil {
		return parsed
	}
	return domain.DefaultSearchType
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("TerminalBoard %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	// 1. Load config from environment and config.yaml.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// 2. Logging goes to a file; stdout belongs to the TUI.
	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	log.WithFields(logrus.Fields{
		"base_url": cfg.BaseURL,
		"timeout":  cfg.RequestTimeout.String(),
	}).Info("starting")

	// 3. Build infrastructure.
	tokenProvider := auth.FromPath(cfg.TokenPath)
	httpClient := board.NewClient(cfg.BaseURL, tokenProvider, cfg.RequestTimeout, log)

	// 4. Build services (concrete types satisfy app.* interfaces).
	postSvc := board.NewPostService(httpClient)
	commentSvc := board.NewCommentService(httpClient)
	rankingSvc := board.NewRankingService(httpClient)
	editorSvc := editor.NewEnvEditor()

	uiState, err := config.LoadUIState(cfg.UIStatePath)
	if err != nil {
		log.WithError(err).Warn("ignoring unreadable ui state")
	}

	// 5. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Posts:      postSvc,
		Comments:   commentSvc,
		Rankings:   rankingSvc,
		Editor:     editorSvc,
		Log:        log,
		SearchType: initialSearchType(uiState),
		StatePath:  cfg.UIStatePath,
	})

	// 6. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited with error")
		fmt.Fprintf(os.Stderr, "terminalboard: %v\n", err)
		os.Exit(1)
	}
}
