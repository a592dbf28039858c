// Command pokerkernel is a small example driver over the poker kernel
// library: it builds a lookup table for a given game shape and prints
// its hand-category breakdown, or replays a scripted hand from an HCL
// config and a bet sequence, printing the table state after every
// action. It is not the spec's deliverable; it exists so the library's
// dependencies are exercised by something a user can actually run.
package main

import (
	"github.com/alecthomas/kong"
)

var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Table   TableCmd         `cmd:"" help:"Build a lookup table and print its category breakdown"`
	Deal    DealCmd          `cmd:"" help:"Replay a scripted hand from a config file and bet sequence"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerkernel"),
		kong.Description("Example driver for the poker kernel library"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
