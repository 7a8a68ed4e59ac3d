package main

import (
	"flag"
	"fmt"
	"sort"
	"time"

	"github.com/benbeisheim/chess-engine/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/pkg/profile"
)

func main() {
	fen := flag.String("fen", model.StartingFEN, "position to count from")
	depth := flag.Int("depth", 4, "plies to search")
	divide := flag.Bool("divide", false, "print the node count below every root move")
	prof := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatalf("unknown profile %q, want cpu or mem", *prof)
	}

	g := model.NewGame()
	if err := g.LoadFEN(*fen); err != nil {
		log.Fatalf("fen: %v", err)
	}

	start := time.Now()
	var nodes uint64
	if *divide {
		counts := g.Divide(*depth)
		moves := make([]string, 0, len(counts))
		for m := range counts {
			moves = append(moves, m)
		}
		sort.Strings(moves)
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, counts[m])
			nodes += counts[m]
		}
		fmt.Println()
	} else {
		nodes = g.Perft(*depth)
	}
	elapsed := time.Since(start)

	fmt.Printf("depth %d: %d nodes in %s (%.0f nodes/s)\n", *depth, nodes, elapsed.Round(time.Millisecond), float64(nodes)/elapsed.Seconds())
}
