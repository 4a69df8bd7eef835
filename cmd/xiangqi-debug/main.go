package main

import (
	"flag"
	"fmt"
	"os"

	"xiangqi/internal/scenario"
	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: opening)")
	scenarios := flag.String("scenarios", "", "YAML scenario file; \"default\" runs the built-in set")
	flag.Parse()

	if *scenarios != "" {
		os.Exit(runScenarios(*scenarios))
	}

	st := xiangqi.NewGame()
	if *fen != "" {
		var err error
		if st, err = xiangqi.DecodeState(*fen); err != nil {
			fmt.Fprintln(os.Stderr, "decode:", err)
			os.Exit(2)
		}
	}
	printState(st)
}

func printState(st *xiangqi.State) {
	b := st.Board()
	fmt.Println(b.String())
	fmt.Println("FEN:", st.Encode())
	fmt.Println("To move:", st.Turn())
	if st.Over() {
		fmt.Println("Game over, winner:", st.Winner())
		return
	}
	fmt.Println("In check:", st.InCheck(st.Turn()))
	fmt.Println("Pseudo legal moves (red):", len(st.MovesForSide(xiangqi.Red)))
	fmt.Println("Pseudo legal moves (black):", len(st.MovesForSide(xiangqi.Black)))
	for _, m := range st.Moves() {
		pc, _ := st.PieceAt(m.From)
		fmt.Printf("  %s  %s\n", m, pc)
	}
}

func runScenarios(path string) int {
	var (
		scs []scenario.Scenario
		err error
	)
	if path == "default" {
		scs, err = scenario.Default()
	} else {
		scs, err = scenario.Load(path)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	passed, failures := scenario.Run(scs)
	for _, f := range failures {
		fmt.Println("FAIL", f)
	}
	fmt.Printf("%d/%d scenarios passed\n", passed, len(scs))
	if len(failures) > 0 {
		return 1
	}
	return 0
}
