package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vimldn/invis/config"
)

// app carries what PersistentPreRunE resolved to the subcommands
type app struct {
	cfgFile string
	config  *config.Config
	logger  *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "invis",
		Short: "Invisalign referral site content service",
		Long: `invis serves the referral site's blog, location and service data
from the articles CSV and static catalog, and relays consultation
requests to the lead intake script.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initializeConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./invis.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("articles-source", "file", "articles source: file, http or s3")
	flags.String("articles-path", "", "articles CSV path for the file source")
	flags.String("articles-url", "", "articles CSV URL for the http source")

	root.AddCommand(newServeCmd(a), newArticlesCmd(a), newArticleCmd(a))
	return root
}

func (a *app) initializeConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	a.config = cfg
	a.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(a.logger)
	return nil
}
