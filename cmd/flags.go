package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshell/internal/units"
)

// baseValue resolves a dimension flag to meters. A flag the user did
// not set falls back to its built-in default, which is stored in
// meters; a set flag is interpreted in the selected unit system.
func baseValue(cmd *cobra.Command, name string, set float64, u units.Unit, def float64) float64 {
	if !cmd.Flags().Changed(name) {
		return def
	}
	return units.ToBase(set, u)
}
