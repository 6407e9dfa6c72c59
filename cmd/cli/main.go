package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-directory/internal/client"
	"github.com/spf13/cobra"
)

var (
	host     string
	verbose  bool
	cacheDir string
)

var rootCmd = &cobra.Command{
	Use:   "tennis-cli",
	Short: "A CLI to browse the tennis player directory and evaluate players",
	Long: `A command-line interface for searching the tennis player directory,
viewing player details and submitting skill and fitness evaluations.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "Directory for cached server replies (default: user cache dir)")
}

// newClient returns a client whose GET cache persists between runs. Without a
// usable cache directory it falls back to an in-memory cache.
func newClient() *client.Client {
	dir := cacheDir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			log.Warn("No user cache directory, caching in memory only", "error", err)
			return client.New(host)
		}
		dir = filepath.Join(base, "tennis-cli")
	}
	return client.New(host, client.WithCacheDir(dir))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
