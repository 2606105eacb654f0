package main

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/gatekeeper/internal/client/cli"
)

func main() {

	app := cli.NewApp(cli.DefaultClientFactory, os.Stdout)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
