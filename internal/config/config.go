package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/atomicstack/formshell/internal/app"
	"github.com/atomicstack/formshell/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig     = "FORMSHELL_CONFIG"
	envTitle      = "FORMSHELL_TITLE"
	envWidth      = "FORMSHELL_WIDTH"
	envHeight     = "FORMSHELL_HEIGHT"
	envBottomBar  = "FORMSHELL_BOTTOM_BAR"
	envBreakpoint = "FORMSHELL_BREAKPOINT"
	envDebug      = "FORMSHELL_DEBUG"
	envDark       = "FORMSHELL_DARK"
	envSchema     = "FORMSHELL_SCHEMA"
	envPlain      = "FORMSHELL_PLAIN"
	envTrace      = "FORMSHELL_TRACE"
	envLogFile    = "FORMSHELL_LOG_FILE"

	defaultTitle = "formshell"
)

// defaults holds option values before environment and flags are applied.
type defaults struct {
	title      string
	width      int
	height     int
	bottomBar  bool
	breakpoint int
	debug      bool
	dark       bool
	schema     string
	plain      bool
	trace      bool
	logFile    string
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// the environment, which wins over the config file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	file := configFileArg(args)
	if file == "" {
		file = env[envConfig]
	}
	base := defaults{title: defaultTitle, breakpoint: ui.DefaultMobileBreakpoint}
	if file != "" {
		var err error
		if base, err = readFile(file, base); err != nil {
			return Config{}, err
		}
	}

	fs := flag.NewFlagSet("formshell", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", file, "path to a config file (yaml, toml or json)")
	title := fs.String("title", envOrDefault(env, envTitle, base.title), "window and top bar title")
	width := fs.Int("width", envOrInt(env, envWidth, base.width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, base.height), "desired viewport height in rows (0 uses terminal height)")
	bottomBar := fs.Bool("bottom-bar", envOrBool(env, envBottomBar, base.bottomBar), "show the bottom bar on desktop-sized terminals")
	breakpoint := fs.Int("breakpoint", envOrInt(env, envBreakpoint, base.breakpoint), "width in cells below which the mobile layout is used")
	debug := fs.Bool("debug", envOrBool(env, envDebug, base.debug), "enable the debug tools page")
	dark := fs.Bool("dark", envOrBool(env, envDark, base.dark), "start in dark mode")
	schemaPath := fs.String("schema", envOrDefault(env, envSchema, base.schema), "path to a YAML validation schema (built-in sign-up form when empty)")
	plain := fs.Bool("plain", envOrBool(env, envPlain, base.plain), "fill the form with line prompts instead of the full-screen shell")
	trace := fs.Bool("trace", envOrBool(env, envTrace, base.trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, base.logFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Title:              *title,
			Width:              *width,
			Height:             *height,
			BottomBarOnDesktop: *bottomBar,
			MobileBreakpoint:   *breakpoint,
			Debug:              *debug,
			DarkMode:           *dark,
			SchemaPath:         *schemaPath,
			Plain:              *plain,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: file,
		Flags: map[string]string{
			"config":     file,
			"title":      *title,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"bottom-bar": strconv.FormatBool(*bottomBar),
			"breakpoint": strconv.Itoa(*breakpoint),
			"debug":      strconv.FormatBool(*debug),
			"dark":       strconv.FormatBool(*dark),
			"schema":     *schemaPath,
			"plain":      strconv.FormatBool(*plain),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configFileArg finds --config ahead of the full parse so the file can seed
// the flag defaults.
func configFileArg(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func readFile(path string, base defaults) (defaults, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	if v.IsSet("title") {
		base.title = v.GetString("title")
	}
	if v.IsSet("width") {
		base.width = v.GetInt("width")
	}
	if v.IsSet("height") {
		base.height = v.GetInt("height")
	}
	if v.IsSet("bottom-bar") {
		base.bottomBar = v.GetBool("bottom-bar")
	}
	if v.IsSet("breakpoint") {
		base.breakpoint = v.GetInt("breakpoint")
	}
	if v.IsSet("debug") {
		base.debug = v.GetBool("debug")
	}
	if v.IsSet("dark") {
		base.dark = v.GetBool("dark")
	}
	if v.IsSet("schema") {
		base.schema = v.GetString("schema")
	}
	if v.IsSet("plain") {
		base.plain = v.GetBool("plain")
	}
	if v.IsSet("trace") {
		base.trace = v.GetBool("trace")
	}
	if v.IsSet("log-file") {
		base.logFile = v.GetString("log-file")
	}
	return base, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks cross-field constraints and referenced files.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if cfg.App.MobileBreakpoint <= 0 {
		return fmt.Errorf("breakpoint must be > 0 (got %d)", cfg.App.MobileBreakpoint)
	}
	if path := cfg.App.SchemaPath; path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("schema: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("schema: %s is a directory", path)
		}
	}
	return nil
}
