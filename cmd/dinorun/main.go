// dinorun is an endless runner whose jump is triggered by a happiness score.
//
// Usage:
//
//	dinorun play      - Play in the terminal
//	dinorun window    - Play in a desktop window
//	dinorun serve     - Start SSH server for remote play
//	dinorun sim       - Run a headless session and print the score
//	dinorun scores    - Show high scores
//	dinorun config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.dinorun/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--feed <path>         - Read happiness samples from a file or FIFO
//	--feed-addr <addr>    - Accept happiness samples over TCP
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSprites    string
	flagLogLevel   string
	flagLogFile    string
	flagName       string
	flagRoom       string
	flagFeed       string
	flagFeedAddr   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinorun",
	Short: "Dino Run - smile to jump",
	Long: `Dino Run is an endless runner. Obstacles scroll in from the right and
get faster over time; the dino jumps whenever the happiness score of a
face-expression feed crosses the threshold (or when you press Space).

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a headless session
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  dinorun play
  dinorun play --feed /tmp/happy.fifo
  dinorun window --difficulty hard
  dinorun serve --ssh :2222
  dinorun sim --autopilot --fps 0`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.StringVar(&flagDBPath, "db", "~/.dinorun/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagSprites, "sprites", "", "Path to a custom sprite sheet YAML")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagName, "name", "", "Player name (default: $USER)")
	pf.StringVar(&flagRoom, "room", "lobby", "Room code scores are filed under")
	pf.StringVar(&flagFeed, "feed", "", "File or FIFO of happiness samples")
	pf.StringVar(&flagFeedAddr, "feed-addr", "", "TCP address accepting happiness samples")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
