package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"ai-scheduler/pkg/clock"
	"ai-scheduler/pkg/datemath"
	"ai-scheduler/pkg/encrypter"
	"ai-scheduler/pkg/ics"
	"ai-scheduler/pkg/nlp"
)

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a command and print the meeting request.",
		ArgsUsage: "[command...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tz", Value: nlp.DefaultTimezone, EnvVars: []string{"SCHEDULER_DEFAULT_TIMEZONE"}, Usage: "Default IANA time zone."},
			&cli.StringFlag{Name: "engine", Value: datemath.EngineWhen, EnvVars: []string{"SCHEDULER_DATE_ENGINE"}, Usage: "Date engine: when or basic."},
			&cli.BoolFlag{Name: "ics", Usage: "Print an iCalendar document instead of JSON."},
			&cli.TimestampFlag{Name: "now", Layout: time.RFC3339, Usage: "Reference instant (RFC 3339) instead of the current time."},
		},
		Action: func(c *cli.Context) error {
			command := strings.Join(c.Args().Slice(), " ")

			engine, err := datemath.NewEngine(c.String("engine"))
			if err != nil {
				return err
			}

			clk := clock.NewSystem()
			if now := c.Timestamp("now"); now != nil {
				clk = clock.NewFixed(*now)
			}

			cfg := nlp.DefaultConfig()
			cfg.DefaultTimezone = c.String("tz")
			cfg.Engine = engine
			cfg.Clock = clk
			parser, err := nlp.New(cfg)
			if err != nil {
				return err
			}

			result, err := parser.Parse(command)
			if err != nil {
				return err
			}

			if c.Bool("ics") {
				return ics.Encode(c.App.Writer, clk.Now(), ics.Event{
					Summary:     result.Summary,
					Description: result.OriginalCommand,
					Start:       result.StartTime,
					End:         result.EndTime,
					Attendees:   result.Attendees,
				})
			}

			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}

func zonesCommand() *cli.Command {
	return &cli.Command{
		Name:  "zones",
		Usage: "List the recognised time zone abbreviations.",
		Action: func(c *cli.Context) error {
			for _, abbr := range datemath.ZoneAbbreviations() {
				name, _ := datemath.ZoneName(abbr)
				fmt.Fprintf(c.App.Writer, "%-5s %s\n", abbr, name)
			}
			return nil
		},
	}
}

func keygenCommand() *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "Generate a value for security.encryption_key.",
		Action: func(c *cli.Context) error {
			key, err := encrypter.GenerateKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, key)
			return nil
		},
	}
}
