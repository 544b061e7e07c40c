package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

func fail(err error) subcommands.ExitStatus {
	color.Red("Error: %v", err)
	return subcommands.ExitFailure
}

type registerCmd struct {
	name    string
	balance string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `register [-name <display name>] [-balance <amount>] <user_name>

  Creates an account with an empty inventory.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "display name (defaults to the user name)")
	f.StringVar(&c.balance, "balance", "0", "starting balance")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one user name is required")
		return subcommands.ExitUsageError
	}
	userName := f.Arg(0)

	balance, err := decimal.NewFromString(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid balance %q: %v\n", c.balance, err)
		return subcommands.ExitUsageError
	}
	name := c.name
	if name == "" {
		name = userName
	}

	m, err := openMarket(ctx)
	if err != nil {
		return fail(err)
	}
	if err := m.Register(ctx, userName, name, balance); err != nil {
		return fail(err)
	}
	color.Green("Registered %s with balance %s", userName, balance)
	return subcommands.ExitSuccess
}

type showCmd struct{}

func (*showCmd) Name() string           { return "show" }
func (*showCmd) Synopsis() string       { return "show an account and its inventory" }
func (*showCmd) SetFlags(*flag.FlagSet) {}
func (*showCmd) Usage() string {
	return `show <user_name>

  Prints the account's display name, balance and owned items.
`
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one user name is required")
		return subcommands.ExitUsageError
	}

	m, err := openMarket(ctx)
	if err != nil {
		return fail(err)
	}
	account, err := m.Lookup(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	fmt.Printf("%s (%s)\nbalance: %s\n", account.UserName, account.Name, account.Balance)
	if len(account.Items) == 0 {
		fmt.Println("no items")
		return subcommands.ExitSuccess
	}
	for _, item := range account.Items {
		fmt.Printf("  [%2d] %s (%s)\n", item.ID, item.Name, item.Price)
	}
	return subcommands.ExitSuccess
}

type deleteCmd struct{}

func (*deleteCmd) Name() string           { return "delete" }
func (*deleteCmd) Synopsis() string       { return "delete an account and its items" }
func (*deleteCmd) SetFlags(*flag.FlagSet) {}
func (*deleteCmd) Usage() string {
	return `delete <user_name>

  Removes the account; every item it owned is removed from the market.
`
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one user name is required")
		return subcommands.ExitUsageError
	}

	m, err := openMarket(ctx)
	if err != nil {
		return fail(err)
	}
	if err := m.DeleteAccount(ctx, f.Arg(0)); err != nil {
		return fail(err)
	}
	color.Green("Deleted %s", f.Arg(0))
	return subcommands.ExitSuccess
}
