// Command perft runs a fixed-depth perft count from a FEN position and
// reports the result and elapsed time. It is a debugging driver, not part
// of the corvus library surface.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/corvusboard/corvus"
)

func main() {
	fen := flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "FEN of the root position")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print a per-move leaf count breakdown")
	cpuprofile := flag.String("cpuprofile", "", "file to write a cpu profile to")
	memprofile := flag.String("memprofile", "", "file to write a memory profile to")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	b, err := corvus.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("bad position: %v", err)
	}

	log.Printf("Root position:\n%s", corvus.FormatBoard(b))

	start := time.Now()
	if *divide {
		for move, nodes := range corvus.PerftDivide(b, *depth) {
			log.Printf("%s: %d", move, nodes)
		}
	} else {
		nodes := corvus.Perft(b, *depth)
		log.Printf("Nodes reached: %d", nodes)
	}
	log.Printf("Elapsed time: %s", time.Since(start))

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		pprof.WriteHeapProfile(f)
	}
}
