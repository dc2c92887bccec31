package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dkarlsen/arbiter/game"
)

// play walks a random legal game from the given position, drawing each step.
func play(fen string) error {
	log.Println("============ play")
	st, err := game.ParseFEN(fen)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	fmt.Println(draw(st))
	fmt.Println(describe(st))
	for ply := 0; ply < 5000 && !st.Terminal(); ply++ {
		mvs, err := game.AllLegalMoves(st)
		if err != nil {
			return err
		}
		mv := mvs[rng.Intn(len(mvs))]
		st, err = game.Execute(st, mv, mv.Promotion)
		if err != nil {
			return err
		}
		last := st.History[len(st.History)-1]

		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, last.Side, last)
		fmt.Println(draw(st))
		fmt.Println(st.FEN())
		fmt.Println(describe(st))
		if st.InCheck {
			<-time.Tick(100 * time.Millisecond)
		} else {
			<-time.Tick(10 * time.Millisecond)
		}
	}
	return nil
}
