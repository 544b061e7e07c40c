package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addItemCmd struct {
	owner string
	price string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "mint a new item for an account" }
func (*addItemCmd) Usage() string {
	return `add-item -owner <user_name> [-price <amount>] <item name>

  Creates an item owned by the given account. The id is assigned
  automatically; at most 100 items can exist at once.
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "owner", "", "owning account (required)")
	f.StringVar(&c.price, "price", "0", "item price")
}

func (c *addItemCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.owner == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -owner and exactly one item name are required")
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}

	m, err := openMarket(ctx)
	if err != nil {
		return fail(err)
	}
	item, err := m.AddItem(ctx, c.owner, f.Arg(0), price)
	if err != nil {
		return fail(err)
	}
	color.Green("Added item %d (%s) to %s", item.ID, item.Name, c.owner)
	return subcommands.ExitSuccess
}

type listCmd struct{}

func (*listCmd) Name() string           { return "list" }
func (*listCmd) Synopsis() string       { return "list every item on the market" }
func (*listCmd) SetFlags(*flag.FlagSet) {}
func (*listCmd) Usage() string {
	return `list

  Prints every live item with its price and current seller.
`
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	m, err := openMarket(ctx)
	if err != nil {
		return fail(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSELLER")
	for _, listing := range m.ListItems() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", listing.Item.ID, listing.Item.Name, listing.Item.Price, listing.Seller)
	}
	tw.Flush()
	return subcommands.ExitSuccess
}

type buyCmd struct {
	buyer string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy an item for an account" }
func (*buyCmd) Usage() string {
	return `buy -buyer <user_name> <item_id>

  Transfers the item to the buyer and moves the price from buyer to
  seller.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.buyer, "buyer", "", "buying account (required)")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.buyer == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -buyer and exactly one item id are required")
		return subcommands.ExitUsageError
	}
	itemID, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid item id %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	m, err := openMarket(ctx)
	if err != nil {
		return fail(err)
	}
	item, err := m.Buy(ctx, c.buyer, itemID)
	if err != nil {
		return fail(err)
	}
	color.Green("%s bought %s (item %d) for %s", c.buyer, item.Name, item.ID, item.Price)
	return subcommands.ExitSuccess
}
