// Package main provides the CLI entrypoint for haiku.
package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/haiku/internal/config"
	"github.com/verte-zerg/haiku/internal/datamuse"
	"github.com/verte-zerg/haiku/internal/generator"
	"github.com/verte-zerg/haiku/internal/logging"
	"github.com/verte-zerg/haiku/internal/model"
	"github.com/verte-zerg/haiku/internal/render"
	"github.com/verte-zerg/haiku/internal/tui"
	"github.com/verte-zerg/haiku/internal/wordlist"
)

const (
	defaultCount       = 1
	defaultMaxAttempts = 0
)

var (
	haikuNouns       string
	haikuAdjectives  string
	haikuEndpoint    string
	haikuTimeout     time.Duration
	haikuMaxAttempts int
	haikuSeed        int64
	haikuCount       int
	haikuVerbose     bool
	haikuStyle       bool

	relatedNoun      string
	relatedAdjective string

	logger *zap.Logger
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "haiku",
		Short:         "Generate a 5-7-5 haiku from Datamuse word associations",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			logger, err = logging.New(haikuVerbose)
			return err
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runHaikuCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&haikuNouns, "nouns", "", "seed noun list, one word per line (default: bundled list)")
	flags.StringVar(&haikuAdjectives, "adjectives", "", "seed adjective list, one word per line (default: bundled list)")
	flags.StringVar(&haikuEndpoint, "endpoint", datamuse.DefaultEndpoint, "Datamuse /words endpoint")
	flags.DurationVar(&haikuTimeout, "timeout", datamuse.DefaultTimeout, "per-request timeout")
	flags.IntVar(&haikuMaxAttempts, "max-attempts", defaultMaxAttempts, "noun draws per line before giving up (0 = unbounded)")
	flags.Int64Var(&haikuSeed, "seed", 0, "random seed for noun sampling (0 = time based)")
	flags.BoolVarP(&haikuVerbose, "verbose", "v", false, "log lookups to stderr")
	rootCmd.Flags().IntVarP(&haikuCount, "count", "n", defaultCount, "number of haiku to print")
	rootCmd.Flags().BoolVar(&haikuStyle, "style", false, "force framed output even when not a terminal")

	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newRelatedCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runHaikuCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := buildGenerator(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styled := render.ShouldStyle(out, cfg.Style)
	for i := 0; i < cfg.Count; i++ {
		h, err := gen.Haiku(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to generate haiku: %w", err)
		}
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if err := writeHaiku(out, h, styled); err != nil {
			return err
		}
	}
	return nil
}

func writeHaiku(w io.Writer, h model.Haiku, styled bool) error {
	text := render.Plain(h)
	if styled {
		text = render.Styled(h)
	}
	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse generated haiku interactively",
		Args:  cobra.NoArgs,
		RunE:  runTUICmd,
	}
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := buildGenerator(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(tui.NewModel(cmd.Context(), gen), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newRelatedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "related",
		Short: "List adjectives for a noun or nouns for an adjective",
		Args:  cobra.NoArgs,
		RunE:  runRelatedCmd,
	}
	cmd.Flags().StringVar(&relatedNoun, "noun", "", "noun to find modifying adjectives for")
	cmd.Flags().StringVar(&relatedAdjective, "adjective", "", "adjective to find modified nouns for")
	cmd.MarkFlagsMutuallyExclusive("noun", "adjective")
	cmd.MarkFlagsOneRequired("noun", "adjective")
	return cmd
}

func runRelatedCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	client := datamuse.NewClient(cfg.Endpoint, cfg.Timeout, logger)

	var words []model.Word
	if relatedNoun != "" {
		words, err = client.RelatedAdjectives(cmd.Context(), model.Word{Text: relatedNoun, PartOfSpeech: model.Noun})
	} else {
		words, err = client.RelatedNouns(cmd.Context(), model.Word{Text: relatedAdjective, PartOfSpeech: model.Adjective})
	}
	if err != nil {
		return err
	}
	for _, w := range words {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", w.Text, w.Syllables); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resolveConfig layers flags over environment over the config file.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	env, err := config.LoadEnv()
	if err != nil {
		return model.Config{}, err
	}
	env.Overlay(&fileCfg)

	applyStringConfig(cmd, "nouns", &haikuNouns, fileCfg.Haiku.Nouns)
	applyStringConfig(cmd, "adjectives", &haikuAdjectives, fileCfg.Haiku.Adjectives)
	applyIntConfig(cmd, "max-attempts", &haikuMaxAttempts, fileCfg.Haiku.MaxAttempts)
	applyIntConfig(cmd, "count", &haikuCount, fileCfg.Haiku.Count)
	applyBoolConfig(cmd, "style", &haikuStyle, fileCfg.Haiku.Style)
	applyStringConfig(cmd, "endpoint", &haikuEndpoint, fileCfg.Datamuse.Endpoint)
	if fileCfg.Datamuse.Timeout != nil {
		timeout := fileCfg.Datamuse.Timeout.Duration
		applyDurationConfig(cmd, "timeout", &haikuTimeout, &timeout)
	}

	cfg := model.Config{
		NounsPath:      haikuNouns,
		AdjectivesPath: haikuAdjectives,
		Endpoint:       haikuEndpoint,
		Timeout:        haikuTimeout,
		MaxAttempts:    haikuMaxAttempts,
		Seed:           haikuSeed,
		Count:          haikuCount,
		Verbose:        haikuVerbose,
		Style:          haikuStyle,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func buildGenerator(cfg model.Config) (*generator.Generator, error) {
	seeds, err := wordlist.LoadSeeds(cfg.NounsPath, cfg.AdjectivesPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("seed lists loaded",
		zap.Int("nouns", len(seeds.Nouns)),
		zap.Int("adjectives", len(seeds.Adjectives)),
	)

	client := datamuse.NewClient(cfg.Endpoint, cfg.Timeout, logger)
	opts := []generator.Option{
		generator.WithMaxAttempts(cfg.MaxAttempts),
		generator.WithLogger(logger),
	}
	if cfg.Seed != 0 {
		opts = append(opts, generator.WithSeed(cfg.Seed))
	}
	return generator.New(client, seeds.Nouns, opts...)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target, value *time.Duration) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# haiku configuration
# Uncomment a value to enable it. Environment variables (HAIKU_*) override
# config values and CLI flags override both.

[haiku]
# nouns = "/path/to/nouns.txt"           # Seed nouns, one per line (default: bundled)
# adjectives = "/path/to/adjectives.txt" # Seed adjectives, one per line (default: bundled)
# max-attempts = %d                      # Noun draws per line, 0 = unbounded
# count = %d                             # Haiku printed per run
# style = false                          # Framed output even when piped

[datamuse]
# endpoint = %q
# timeout = %q
`,
		defaultMaxAttempts,
		defaultCount,
		datamuse.DefaultEndpoint,
		datamuse.DefaultTimeout.String(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.MaxAttempts < 0 {
		return fmt.Errorf("--max-attempts must be >= 0")
	}
	if cfg.Count <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("--timeout must be > 0")
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("--endpoint must be an absolute URL")
	}
	return nil
}
