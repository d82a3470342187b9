package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/internal/file"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const envconfigPrefix = "TAPS"

type config struct {
	APIAddress    string `json:"apiAddress" envconfig:"API_ADDRESS" default:"http://localhost:5000/api"` // nolint: lll
	AllowInsecure bool   `json:"allowInsecure" envconfig:"ALLOW_INSECURE"`
}

// getConfig returns the CLI's configuration: the config file saved by a
// previous login when one exists, otherwise values from TAPS_* environment
// variables (with defaults).
func getConfig() (*config, error) {
	c := &config{}
	if err := envconfig.Process(envconfigPrefix, c); err != nil {
		return nil, errors.Wrap(
			err,
			"error getting configuration from environment",
		)
	}

	tapsHome, err := getTapsHome()
	if err != nil {
		return nil, errors.Wrap(err, "error finding taps home")
	}
	tapsConfigFile := path.Join(tapsHome, "config")
	if !file.Exists(tapsConfigFile) {
		return c, nil
	}

	configBytes, err := ioutil.ReadFile(tapsConfigFile)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error reading taps config file at %s",
			tapsConfigFile,
		)
	}
	if err := json.Unmarshal(configBytes, c); err != nil {
		return nil, errors.Wrapf(
			err,
			"error parsing taps config file at %s",
			tapsConfigFile,
		)
	}

	return c, nil
}

func saveConfig(c *config) error {
	tapsHome, err := getTapsHome()
	if err != nil {
		return errors.Wrap(err, "error finding taps home")
	}
	if _, err := os.Stat(tapsHome); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of taps home at %s",
				tapsHome,
			)
		}
		// The directory doesn't exist-- create it
		if err := os.MkdirAll(tapsHome, 0755); err != nil {
			return errors.Wrapf(err, "error creating taps home at %s", tapsHome)
		}
	}
	tapsConfigFile := path.Join(tapsHome, "config")

	configBytes, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}
	if err := ioutil.WriteFile(tapsConfigFile, configBytes, 0644); err != nil {
		return errors.Wrapf(err, "error writing to %s", tapsConfigFile)
	}
	return nil
}

func getTapsHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}
	return path.Join(homeDir, ".taps"), nil
}
