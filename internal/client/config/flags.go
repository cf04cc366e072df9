package config

import (
	"flag"
	"os"
	"time"

	"github.com/craftedwonders/storefront/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the remote storefront service
//	-d string   path of the local sqlite database
//	-p int      catalog poll interval in seconds
//	-s int      search debounce in milliseconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-p", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the storefront service")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database")
	pollInterval := fs.Int("p", int(cfg.PollInterval.Seconds()), "catalog poll interval (in seconds)")
	searchDebounce := fs.Int("s", int(cfg.SearchDebounce.Milliseconds()), "search debounce (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PollInterval = time.Duration(*pollInterval) * time.Second
	cfg.SearchDebounce = time.Duration(*searchDebounce) * time.Millisecond
}
