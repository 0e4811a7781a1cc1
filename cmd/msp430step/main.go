// Command msp430step loads a raw program image and either drives it
// through the interactive inspector (on a real terminal) or single-steps
// it with a plain-text trace (when stdout isn't a TTY, e.g. piped to a
// file in CI).
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/rgeosits-msp430/msp430-emulator-core/inspector"
	"github.com/rgeosits-msp430/msp430-emulator-core/mem"
	"github.com/rgeosits-msp430/msp430-emulator-core/msp430"
)

func main() {
	app := &cli.App{
		Name:    "msp430step",
		Usage:   "single-step an MSP430 program image",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "image",
				Aliases:  []string{"i"},
				Usage:    "raw program image to load",
				Required: true,
			},
			&cli.UintFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "load address (and starting PC)",
				Value:   0xC000,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "force plain-text trace even on a TTY",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	program, err := os.ReadFile(c.String("image"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading image: %v", err), 1)
	}

	offset := uint16(c.Uint("addr"))
	bus := mem.NewBus()
	bus.LoadImage(offset, program)

	core := msp430.NewCore(bus)
	core.Registers().SetPC(offset)
	core.SetRunning(true)

	if !c.Bool("trace") && term.IsTerminal(int(os.Stdout.Fd())) {
		return inspector.Run(core, bus, program, offset)
	}

	return traceLoop(core)
}

// traceLoop single-steps the core until it halts or an error is
// returned, printing one disassembled line per instruction.
func traceLoop(core *msp430.Core) error {
	for core.Running() {
		var d msp430.Disassembly
		pc := core.Registers().PC()
		_, err := core.Step(&d)
		if err != nil {
			fmt.Printf("%04x: %s -- %v\n", pc, d.String(), err)
			return err
		}
		fmt.Printf("%04x: %s\n", pc, d.String())
	}
	return nil
}
