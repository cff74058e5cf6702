package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fred-tools/apiwrapgen/wrapgen"
)

var (
	configPath string
	workdir    string
)

var rootCmd = &cobra.Command{
	Use:   "apiwrapgen",
	Short: "Generate the Python wrapper class for the FRED automation API",
	Long: `apiwrapgen reads the FRED command descriptor and documentation stores
and writes a Python module exposing every function, subroutine and
datastructure constructor as an ordinary method with a documented signature.

The artifact is wholly machine generated. Edit the stores and rerun
instead of editing the output file.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config path (built-in defaults when omitted)")
	rootCmd.Flags().StringVarP(&workdir, "workdir", "w", ".", "working directory; config paths resolve against it")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Resolve the config path before changing directory, so -c stays
	// relative to where the tool was invoked.
	if configPath != "" && !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		configPath = filepath.Clean(filepath.Join(wd, configPath))
	}
	if err := os.Chdir(workdir); err != nil {
		return errors.Wrapf(err, "enter workdir %s", workdir)
	}

	cfg, err := wrapgen.LoadConfig(configPath)
	if err != nil {
		return err
	}
	return wrapgen.NewGenerator(cfg, logger.Sugar()).Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
