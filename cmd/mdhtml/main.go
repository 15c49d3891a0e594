// Command mdhtml renders a markdown file (or stdin) to HTML using the
// htmlcore compiler.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mdrender/htmlcore/compiler"
	"github.com/mdrender/htmlcore/source"
	"github.com/mdrender/htmlcore/tokenizer"
)

// ExitError carries a specific process exit code through the error chain.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit with code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// envConfig holds the settings caarlos0/env can fill from MDHTML_-prefixed
// environment variables, for the settings a shell script driving the CLI
// in CI would rather not pass as flags every time.
type envConfig struct {
	DangerousHTML     bool `env:"DANGEROUS_HTML" envDefault:"false"`
	DangerousProtocol bool `env:"DANGEROUS_PROTOCOL" envDefault:"false"`
}

var (
	configFile        string
	outPath           string
	dangerousHTML     bool
	dangerousProtocol bool
	lineEnding        string

	rootCmd = &cobra.Command{
		Use:   "mdhtml [FILE]",
		Short: "Compile markdown to HTML",
		Long:  "mdhtml reads a markdown document from a file or stdin and writes the compiled HTML to stdout.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  execute,
	}
)

func execute(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	opts := compiler.Options{
		AllowDangerousHTML:     dangerousHTML,
		AllowDangerousProtocol: dangerousProtocol,
		DefaultLineEnding:      parseLineEnding(lineEnding),
	}

	events, codes := tokenizer.Tokenize(input)
	html := compiler.Compile(events, codes, opts)

	if opts.AllowDangerousHTML {
		html = bluemonday.UGCPolicy().Sanitize(html)
	}

	out, err := openOutput()
	if err != nil {
		return err
	}
	defer out.Close() //nolint:errcheck

	if _, err := io.WriteString(out, html); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("unable to read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("unable to read %s: %w", args[0], err)
	}
	return string(b), nil
}

func openOutput() (io.WriteCloser, error) {
	if outPath == "" || outPath == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("unable to create %s: %w", outPath, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func parseLineEnding(s string) source.LineEnding {
	switch s {
	case "cr":
		return source.EndCR
	case "crlf":
		return source.EndCRLF
	default:
		return source.EndLF
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notify := make(chan os.Signal, 1)
	signal.Notify(notify, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-notify
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			log.Error(exitErr.Error())
			os.Exit(exitErr.Code)
		}
		log.Error("mdhtml failed", "err", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	rootCmd.Flags().BoolVar(&dangerousHTML, "dangerous-html", false, "pass raw HTML flow/text through unescaped")
	rootCmd.Flags().BoolVar(&dangerousProtocol, "dangerous-protocol", false, "disable the href/src scheme allow-lists")
	rootCmd.Flags().StringVar(&lineEnding, "line-ending", "lf", "line ending to use when the input has none (lf, cr, crlf)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/mdhtml/mdhtml.yml)")

	_ = viper.BindPFlag("dangerousHTML", rootCmd.Flags().Lookup("dangerous-html"))
	_ = viper.BindPFlag("dangerousProtocol", rootCmd.Flags().Lookup("dangerous-protocol"))
	_ = viper.BindPFlag("lineEnding", rootCmd.Flags().Lookup("line-ending"))

	cobra.OnInitialize(func() {
		loadConfig()

		var cfg envConfig
		if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "MDHTML_"}); err != nil {
			log.Warn("could not parse environment overrides", "err", err)
			return
		}
		if !rootCmd.Flags().Changed("dangerous-html") && cfg.DangerousHTML {
			dangerousHTML = true
		}
		if !rootCmd.Flags().Changed("dangerous-protocol") && cfg.DangerousProtocol {
			dangerousProtocol = true
		}
	})
}

func loadConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("mdhtml")
		viper.SetConfigType("yaml")
		if home, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, "mdhtml"))
		}
	}
	viper.SetEnvPrefix("mdhtml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn("could not parse configuration file", "err", err)
		}
		return
	}

	if viper.IsSet("dangerousHTML") && !rootCmd.Flags().Changed("dangerous-html") {
		dangerousHTML = viper.GetBool("dangerousHTML")
	}
	if viper.IsSet("dangerousProtocol") && !rootCmd.Flags().Changed("dangerous-protocol") {
		dangerousProtocol = viper.GetBool("dangerousProtocol")
	}
	if viper.IsSet("lineEnding") && !rootCmd.Flags().Changed("line-ending") {
		lineEnding = viper.GetString("lineEnding")
	}
}
