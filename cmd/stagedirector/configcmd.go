package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/rinodrops/stagedirector/internal/config"
)

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  stagedirector config validate [--path PATH]")
	fmt.Fprintln(w, "  stagedirector config print [--path PATH]")
	fmt.Fprintln(w, "  stagedirector config init [--path PATH]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'stagedirector config <command> --help' for command-specific options.")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printConfigUsage(os.Stdout)
		return 0
	}

	switch args[0] {
	case "validate":
		return runConfigValidate(args[1:])
	case "print":
		return runConfigPrint(args[1:])
	case "init":
		return runConfigInit(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n\n", args[0])
		printConfigUsage(os.Stderr)
		return 2
	}
}

func configPathFlag(fs *flag.FlagSet) *string {
	return fs.String("path", "", "Config file path (default: ~/.config/stagedirector/config.yaml)")
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return config.DefaultConfigPath()
}

func runConfigValidate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := configPathFlag(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	resolved, err := resolveConfigPath(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if _, err := config.LoadFromPath(resolved); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("%s: OK\n", resolved)
	return 0
}

// printable mirrors Config for YAML output with the refresh interval
// rendered as a duration string instead of nanoseconds.
type printable struct {
	WindowGap     float64   `yaml:"window_gap"`
	EdgeGap       float64   `yaml:"edge_gap"`
	SidebarWidth  float64   `yaml:"sidebar_width"`
	Tolerance     float64   `yaml:"tolerance"`
	MaximizeSizes []float64 `yaml:"maximize_sizes"`
	Sidebar       struct {
		ProbeCommand    []string `yaml:"probe_command,omitempty"`
		RefreshInterval string   `yaml:"refresh_interval"`
	} `yaml:"sidebar"`
	Hotkeys  map[string]string `yaml:"hotkeys"`
	LogLevel string            `yaml:"log_level"`
}

func toPrintable(cfg config.Config) printable {
	p := printable{
		WindowGap:     cfg.WindowGap,
		EdgeGap:       cfg.EdgeGap,
		SidebarWidth:  cfg.SidebarWidth,
		Tolerance:     cfg.Tolerance,
		MaximizeSizes: cfg.MaximizeSizes,
		Hotkeys:       cfg.Hotkeys,
		LogLevel:      cfg.LogLevel,
	}
	p.Sidebar.ProbeCommand = cfg.Sidebar.ProbeCommand
	p.Sidebar.RefreshInterval = cfg.Sidebar.RefreshInterval.String()
	return p
}

func runConfigPrint(args []string) int {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := configPathFlag(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	resolved, err := resolveConfigPath(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg, err := config.LoadFromPath(resolved)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	out, err := yaml.Marshal(toPrintable(cfg))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Print(string(out))
	return 0
}

func runConfigInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := configPathFlag(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	resolved, err := resolveConfigPath(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	defaults := config.Default()
	windowGap := strconv.FormatFloat(defaults.WindowGap, 'g', -1, 64)
	edgeGap := strconv.FormatFloat(defaults.EdgeGap, 'g', -1, 64)
	sidebarWidth := strconv.FormatFloat(defaults.SidebarWidth, 'g', -1, 64)
	maximizeSizes := formatSizes(defaults.MaximizeSizes)
	probeCommand := ""
	logLevel := defaults.LogLevel
	confirmed := true

	numericField := func(name string) func(string) error {
		return func(s string) error {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return fmt.Errorf("%s must be a number", name)
			}
			return nil
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Window gap").
				Description("Pixels between adjacent windows").
				Validate(numericField("window gap")).
				Value(&windowGap),

			huh.NewInput().
				Title("Edge gap").
				Description("Pixels between windows and screen edges").
				Validate(numericField("edge gap")).
				Value(&edgeGap),

			huh.NewInput().
				Title("Sidebar width").
				Description("Pixels reserved for the workspace switcher strip").
				Validate(numericField("sidebar width")).
				Value(&sidebarWidth),

			huh.NewInput().
				Title("Maximize sizes").
				Description("Comma-separated fractions for the almost-maximize ladder").
				Value(&maximizeSizes),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Sidebar probe command").
				Description("Command whose output reports the sidebar dock edge (empty to disable)").
				Value(&probeCommand),

			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("debug", "debug"),
					huh.NewOption("info", "info"),
					huh.NewOption("warn", "warn"),
					huh.NewOption("error", "error"),
				).
				Value(&logLevel),

			huh.NewConfirm().
				Title(fmt.Sprintf("Write config to %s?", resolved)).
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if !confirmed {
		fmt.Println("Aborted, nothing written.")
		return 0
	}

	cfg := defaults
	cfg.WindowGap, _ = strconv.ParseFloat(windowGap, 64)
	cfg.EdgeGap, _ = strconv.ParseFloat(edgeGap, 64)
	cfg.SidebarWidth, _ = strconv.ParseFloat(sidebarWidth, 64)
	if sizes, err := parseSizeList(maximizeSizes); err == nil && len(sizes) > 0 {
		cfg.MaximizeSizes = sizes
	}
	if probeCommand != "" {
		cfg.Sidebar.ProbeCommand = strings.Fields(probeCommand)
	}
	cfg.LogLevel = logLevel

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	out, err := yaml.Marshal(toPrintable(cfg))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := os.WriteFile(resolved, out, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Printf("Wrote %s\n", resolved)
	return 0
}

func parseSizeList(s string) ([]float64, error) {
	var sizes []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid fraction %q", part)
		}
		sizes = append(sizes, f)
	}
	return sizes, nil
}
