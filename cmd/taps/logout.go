package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func logout(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("logout requires no arguments")
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting taps client")
	}

	// Even if the session wasn't found and deleted server-side, the local
	// session still clears.
	client.Session().Logout(c.Context)

	fmt.Println("Logout was successful.")

	return nil
}
