package main

import (
	"context"
	"os"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
