package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"rebar-check/core/config"
	"rebar-check/feature/schedule/ifc"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	// Flags for mapping commands
	mappingFile   string
	mappingVendor string
	mappingOut    string
	mappingForce  bool
)

// mappingCmd is the parent command for IFC mapping files.
var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Show or create IFC property mappings",
	Long: `An IFC mapping names the property set and property ("pset / property") that
hold the mark, quantity, diameter, shape and material of a reinforcing bar.

Without a mapping file the configured default applies, which is the Tekla preset
unless IFC_MAPPING_* variables override it. With the default, Revit models are
read with the Revit preset automatically.`,
}

var mappingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective mapping as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		m, err := resolveMapping(cfg, mappingFile)
		if err != nil {
			return err
		}
		return writeMapping(cmd.OutOrStdout(), m)
	},
}

var mappingInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a vendor preset to a mapping file",
	Long: `Writes the preset of a vendor to a YAML file that can be edited and passed to
compare --mapping.

Examples:
  # Tekla preset
  rebar-check mapping init

  # Revit preset to a custom path
  rebar-check mapping init --vendor revit --out revit.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vendor, err := ifc.ParseVendor(mappingVendor)
		if err != nil {
			return err
		}

		flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
		if mappingForce {
			flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		}
		f, err := os.OpenFile(mappingOut, flags, 0o644)
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", mappingOut)
		}
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", mappingOut, err)
		}
		defer f.Close()

		if err := writeMapping(f, vendor.Preset()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s preset to %s\n", vendor, mappingOut)
		return nil
	},
}

func init() {
	mappingShowCmd.Flags().StringVar(&mappingFile, "mapping", "", "Mapping YAML file (defaults to the configured mapping)")
	mappingInitCmd.Flags().StringVar(&mappingVendor, "vendor", "tekla", "Preset to write: tekla or revit")
	mappingInitCmd.Flags().StringVarP(&mappingOut, "out", "o", "ifc-mapping.yaml", "Output file")
	mappingInitCmd.Flags().BoolVar(&mappingForce, "force", false, "Overwrite an existing file")

	mappingCmd.AddCommand(mappingShowCmd)
	mappingCmd.AddCommand(mappingInitCmd)
	RootCmd.AddCommand(mappingCmd)
}

// loadMapping reads a mapping YAML file.
func loadMapping(path string) (ifc.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ifc.Mapping{}, fmt.Errorf("failed to read mapping: %w", err)
	}

	var m ifc.Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return ifc.Mapping{}, fmt.Errorf("failed to parse mapping %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return ifc.Mapping{}, fmt.Errorf("mapping %s: %w", path, err)
	}
	return m, nil
}

// resolveMapping returns the mapping file's content, or the configured default.
func resolveMapping(cfg *config.Config, path string) (ifc.Mapping, error) {
	if path != "" {
		return loadMapping(path)
	}
	if cfg.Ifc.Mapping.IsZero() {
		return ifc.DefaultMapping(), nil
	}
	if err := cfg.Ifc.Mapping.Validate(); err != nil {
		return ifc.Mapping{}, fmt.Errorf("configured mapping: %w", err)
	}
	return cfg.Ifc.Mapping, nil
}

func writeMapping(w io.Writer, m ifc.Mapping) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}
	return enc.Close()
}
