// Command sectorstrength maintains the per-sector daily close files behind the
// sector strength dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"SectorStrength/internal/refresh"
)

func main() {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&runCmd{mode: refresh.ModeFull, synopsis: "download the full history and rewrite every panel file"}, "refresh")
	commander.Register(&runCmd{mode: refresh.ModeIncremental, synopsis: "append trading days after the last persisted date"}, "refresh")
	commander.Register(&statusCmd{}, "")
	commander.Register(&scheduleCmd{}, "")

	mode := flag.String("mode", string(refresh.ModeFull), "Refresh mode used when no subcommand is given (full, incremental).")
	flag.Parse()

	ctx := context.Background()
	if flag.NArg() == 0 {
		m, ok := refresh.ParseMode(*mode)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown mode %q, expected full or incremental\n", *mode)
			os.Exit(int(subcommands.ExitUsageError))
		}
		os.Exit(int(runMode(ctx, m)))
	}
	os.Exit(int(commander.Execute(ctx)))
}
