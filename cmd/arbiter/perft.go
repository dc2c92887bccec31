package main

import (
	"log"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkarlsen/arbiter/game"
)

func perft(depth int, fen string) error {
	log.Printf("============ perft(%d)\n", depth)
	st, err := game.ParseFEN(fen)
	if err != nil {
		return err
	}

	if depth > 0 {
		moves, err := game.AllLegalMoves(st)
		if err != nil {
			return err
		}
		for _, mv := range moves {
			next, err := game.Execute(st, mv, mv.Promotion)
			if err != nil {
				return err
			}
			child, err := game.Perft(next, depth-1)
			if err != nil {
				return err
			}
			log.Printf("%s: %d\n", mv.UCI(), child.Nodes)
		}
	}

	start := time.Now()
	res, err := game.Perft(st, depth)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	log.Println(message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d (%.3fs elapsed)",
			depth, res.Nodes, int(float64(res.Nodes)/elapsed.Seconds()),
			res.Captures, res.EnPassants, res.Castles, res.Promotions, elapsed.Seconds()))
	return nil
}
