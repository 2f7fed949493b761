package main

import (
	"fmt"
	"os"

	"github.com/barcal/barcal/internal/app"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// initFallback is printed when the pipeline could not even be constructed,
// before configuration (and its fallback text) was available.
const initFallback = "--"

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cliApp := &cli.App{
		Name:  "barcal",
		Usage: "print the next calendar event as a status-bar line",
		// Arguments are opaque here: every one of them is forwarded to
		// the agenda tool after the default query bounds.
		SkipFlagParsing: true,
		Action: func(c *cli.Context) error {
			application, err := app.NewApplication()
			if err != nil {
				log.Errorf("failed to initialize application: %v", err)
				fmt.Println(initFallback)
				return nil
			}
			fmt.Println(application.Run(c.Context, c.Args().Slice()))
			return nil
		},
	}

	// The bar polls this binary in a loop that cannot surface a crash, so
	// the process always reports success and failures only show up in the
	// printed line.
	if err := cliApp.Run(os.Args); err != nil {
		log.Error(err)
		fmt.Println(initFallback)
	}
}
