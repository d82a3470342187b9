package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func health(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("health requires no arguments")
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting taps client")
	}

	if err := client.CheckHealth(c.Context); err != nil {
		return err
	}

	fmt.Println("The server is up.")

	return nil
}
