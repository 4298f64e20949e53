/*
main.go - Interactive analyzer entry point

PURPOSE:
  Runs the attendance analyzer as an interactive terminal session:
  students are entered line by line, thresholds are prompted, and the
  classified report is rendered with defaulters highlighted.

COMMAND-LINE FLAGS:
  -threshold   Default absence threshold as a percentage (default: 10)
  -streak      Default minimum present streak in days (default: 5)
  -no-color    Disable ANSI colors

ENVIRONMENT:
  An optional .env file (or the environment) can set the same defaults:
  ABSENCE_THRESHOLD, MIN_STREAK, NO_COLOR. Flags win over environment.

EXAMPLES:
  # Interactive session
  ./analyzer

  # Piped input; thresholds fall back to the defaults
  cat class.txt | ./analyzer -threshold=15 -streak=3 -no-color

SEE ALSO:
  - cli/session.go: The session loop
  - attendance: The statistics core
*/
package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/warp/attendance-engine/cli"
)

func main() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	threshold := flag.Float64("threshold", envFloat("ABSENCE_THRESHOLD", 10), "default absence threshold (percent)")
	streak := flag.Int("streak", envInt("MIN_STREAK", 5), "default minimum present streak (days)")
	noColor := flag.Bool("no-color", os.Getenv("NO_COLOR") != "", "disable ANSI colors")
	flag.Parse()

	session := cli.NewSession(os.Stdin, os.Stdout)
	session.NoColor = *noColor
	session.DefaultAbsencePercent = decimal.NewFromFloat(*threshold)
	session.DefaultMinStreak = *streak

	if err := session.Run(); err != nil {
		log.Fatalf("session failed: %v", err)
	}
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
