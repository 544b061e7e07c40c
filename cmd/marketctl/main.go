// marketctl is the admin CLI for the marketplace ledger. It operates
// directly on the JSON account database shared with the server.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/sheikh-saqib/marketplace-ledger-system/internal/market"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/storage/jsonfile"
)

var dataFile = flag.String("data", "users.json", "path to the JSON account database")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	commander.Register(&registerCmd{}, "accounts")
	commander.Register(&showCmd{}, "accounts")
	commander.Register(&deleteCmd{}, "accounts")

	commander.Register(&addItemCmd{}, "items")
	commander.Register(&listCmd{}, "items")
	commander.Register(&buyCmd{}, "items")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// openMarket loads the ledger from the shared JSON file. The CLI is
// short lived: each invocation loads, applies one operation (which
// persists) and exits.
func openMarket(ctx context.Context) (*market.Market, error) {
	return market.New(ctx, jsonfile.New(*dataFile))
}
