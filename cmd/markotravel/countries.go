package main

import (
	"fmt"

	"github.com/fwojciec/markotravel"
	"github.com/fwojciec/markotravel/yaml"
)

// Run executes the countries command.
func (c *CountriesCmd) Run(deps *Dependencies) error {
	_, ds, err := deps.LoadDataset()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", markotravel.ErrorMessage(err))
		return err
	}

	countries := markotravel.AggregateCountries(ds.Places, deps.Members)
	if len(countries) == 0 {
		fmt.Fprintln(deps.Stdout, "No countries found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, markotravel.FormatCountries(countries))
	return nil
}

// Run executes the config command.
func (c *ConfigCmd) Run(deps *Dependencies) error {
	data, err := yaml.EncodeConfig(deps.Config)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}
