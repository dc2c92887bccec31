package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/dkarlsen/arbiter/game"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	playRun = flag.Bool("play", false, "run play mode")

	perftRun   = flag.Bool("perft", false, "run perft mode")
	perftDepth = flag.Int("perft.depth", 4, "perft depth in perft mode")

	serveRun  = flag.Bool("serve", false, "run serve mode")
	serveAddr = flag.String("serve.addr", getenv("ARBITER_ADDR", ":8080"), "listen address in serve mode")
)

func main() {
	flag.Parse()

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	fen := game.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *playRun {
		return play(fen)
	}
	if *perftRun {
		return perft(*perftDepth, fen)
	}
	if *serveRun {
		return serve(*serveAddr)
	}

	flag.Usage()
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
