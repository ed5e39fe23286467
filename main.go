package main

import (
	"flag"
	"log"

	"chess-tui/internal/tui"
)

func main() {
	ascii := flag.Bool("ascii", false, "render pieces as ASCII letters instead of chess glyphs")
	flag.Parse()

	if err := tui.Run(*ascii); err != nil {
		log.Fatal(err)
	}
}
