package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"friendly/internal/adapters/cli"
	"friendly/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the configuration from the environment and executes args.
func run(args []string, out, errOut io.Writer) error {
	log.SetOutput(errOut)

	cfg, err := config.Load()
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	return cli.NewApp(cfg, nil).Execute(context.Background(), args, out, errOut)
}
