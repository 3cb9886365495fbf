package main

import (
	"log"
	"os"

	"headgate/cmd"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
