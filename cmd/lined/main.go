package main

import (
	"fmt"
	"os"

	. "lined/internal/config"
	"lined/internal/display"
	"lined/internal/editor"
	. "lined/internal/logger"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [file]\n", os.Args[0])
		os.Exit(1)
	}

	Log.Start()
	conf := GetConfig()

	screen, err := display.NewScreenDriver()
	if err != nil { fmt.Fprintln(os.Stderr, err); os.Exit(1) }

	e := editor.Editor{Screen: screen, Events: screen, Config: conf}
	os.Exit(e.Start(os.Args[1:]))
}
