package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "schedctl:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "schedctl",
		Usage: "Parse natural-language scheduling commands.",
		Commands: []*cli.Command{
			parseCommand(),
			zonesCommand(),
			keygenCommand(),
		},
	}
}
