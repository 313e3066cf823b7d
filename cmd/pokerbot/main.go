package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Peter-Fernandes-1/Poker-Bot/internal/bot"
	"github.com/Peter-Fernandes-1/Poker-Bot/internal/config"
	"github.com/Peter-Fernandes-1/Poker-Bot/internal/deck"
	"github.com/Peter-Fernandes-1/Poker-Bot/internal/display"
	"github.com/Peter-Fernandes-1/Poker-Bot/internal/policy"
)

type CLI struct {
	Hole        string  `arg:"" optional:"" help:"Your two hole cards (e.g. 'AhKs')"`
	Board       string  `short:"b" help:"Community board cards (e.g. '2c7d9h')"`
	Budget      int     `short:"t" help:"Simulation budget in milliseconds" default:"10000"`
	Threshold   float64 `help:"Win probability at or above which to stay" default:"0.5"`
	Seed        int64   `help:"Random seed for reproducible results (0 seeds from the clock)"`
	Workers     int     `short:"w" help:"Simulation worker goroutines" default:"1"`
	Config      string  `short:"c" help:"Path to HCL config file" default:"pokerbot.hcl"`
	Interactive bool    `short:"i" help:"Run the interactive session instead of a one-shot estimate"`
	Debug       bool    `help:"Enable debug logging"`
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	stayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	foldStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}
	applyConfig(&cli, cfg)

	logger := log.New(os.Stderr)
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(parseLevel(cfg.UI.LogLevel))
	}
	if cfg.UI.LogFile != "" {
		file, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			ctx.Exit(1)
		}
		defer file.Close()
		logger.SetOutput(file)
	}

	advisor := bot.New(
		bot.WithLogger(logger),
		bot.WithSeed(cli.Seed),
		bot.WithWorkers(cli.Workers),
		bot.WithThreshold(cli.Threshold))
	budget := time.Duration(cli.Budget) * time.Millisecond

	if cli.Interactive {
		fmt.Print(titleStyle.Render(" ♠ ♥ Poker Bot ♦ ♣ "))
		fmt.Println()
		if err := display.Run(advisor, budget, logger); err != nil {
			log.Fatal("Failed to run session", "error", err)
		}
		ctx.Exit(0)
	}

	if cli.Hole == "" {
		fmt.Fprintln(os.Stderr, "Error: hole cards are required unless running with --interactive")
		ctx.Exit(1)
	}

	hole, err := deck.ParseCards(cli.Hole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hole cards: %v\n", err)
		ctx.Exit(1)
	}
	var board []deck.Card
	if cli.Board != "" {
		if board, err = deck.ParseCards(cli.Board); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
			ctx.Exit(1)
		}
	}

	if err := advisor.SetKnownCards(hole, board); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	advice, err := advisor.Advise(budget)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	displayAdvice(hole, board, advice)
}

// applyConfig fills in CLI values the user left at their kong defaults
// from the config file. Explicit flags win over the file.
func applyConfig(cli *CLI, cfg *config.Config) {
	if cli.Budget == 10000 && cfg.Simulation.TimeLimitMs != 10000 {
		cli.Budget = cfg.Simulation.TimeLimitMs
	}
	if cli.Threshold == policy.DefaultThreshold && cfg.Simulation.Threshold != policy.DefaultThreshold {
		cli.Threshold = cfg.Simulation.Threshold
	}
	if cli.Workers == 1 && cfg.Simulation.Workers != 1 {
		cli.Workers = cfg.Simulation.Workers
	}
	if cli.Seed == 0 && cfg.Simulation.Seed != 0 {
		cli.Seed = cfg.Simulation.Seed
	}
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

func displayAdvice(hole, board []deck.Card, advice bot.Advice) {
	if len(board) > 0 {
		fmt.Printf("%s\n", headerStyle.Render("board"))
		fmt.Printf("%s\n\n", formatCards(board))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("phase"),
		headerStyle.Render("win"),
		headerStyle.Render("trials"),
		headerStyle.Render("advice"))

	verdict := stayStyle.Render("STAY")
	if advice.Verdict == policy.Fold {
		verdict = foldStyle.Render("FOLD")
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
		handStyle.Render(formatCards(hole)),
		advice.Phase,
		winStyle.Render(fmt.Sprintf("%.1f%%", advice.WinRate*100)),
		advice.Trials,
		verdict)

	w.Flush()
	fmt.Printf("\n%d trials in %s\n", advice.Trials, advice.Elapsed.Round(time.Millisecond))
}

func formatCards(cards []deck.Card) string {
	out := ""
	for i, card := range cards {
		if i > 0 {
			out += " "
		}
		out += card.String()
	}
	return out
}
