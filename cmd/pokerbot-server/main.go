package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/Peter-Fernandes-1/Poker-Bot/internal/server"
)

type CLI struct {
	Addr    string `short:"a" help:"Address to listen on" default:":8080"`
	Budget  int    `short:"t" help:"Default simulation budget in milliseconds" default:"10000"`
	Seed    int64  `help:"Random seed for reproducible results (0 seeds from the clock)"`
	Workers int    `short:"w" help:"Simulation worker goroutines per request" default:"1"`
	Debug   bool   `help:"Enable debug logging"`
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	logger := log.New(os.Stderr)
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	srv := server.NewServer(cli.Addr,
		time.Duration(cli.Budget)*time.Millisecond,
		cli.Seed, cli.Workers, logger)

	if err := srv.Start(); err != nil {
		logger.Fatal("Server failed", "error", err)
	}
}
