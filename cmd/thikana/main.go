// Command thikana inspects and serves the Bangladesh administrative
// address hierarchy: 8 divisions, 64 districts and the upazilas beneath
// them.
//
// Usage:
//
//	thikana verify
//	thikana lookup Dhaka
//	thikana reconcile DHAKA 301 30102
//	thikana locate 23.8103 90.4125
//	thikana serve
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rasel530/thikana"
)

var Version = "dev"

// dataDir overrides the embedded reference data for every subcommand.
var dataDir string

func main() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	configureLogLevel(os.Getenv("LOG_LEVEL"))

	rootCmd := &cobra.Command{
		Use:          "thikana",
		Short:        "Bangladesh address hierarchy lookups, reconciliation and serving",
		Version:      Version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"directory whose divisions.json, districts.json and upazilas.json override the embedded data")

	rootCmd.AddCommand(verifyCmd())
	rootCmd.AddCommand(lookupCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(locateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func configureLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// newGazetteer builds a Gazetteer honoring the --data-dir flag.
func newGazetteer() (*thikana.Gazetteer, error) {
	if dataDir != "" {
		return thikana.New(thikana.WithDataDir(dataDir))
	}
	return thikana.New()
}
