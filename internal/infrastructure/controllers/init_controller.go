package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/package-assistant/internal/domain/commands"
	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

// InitController handles the "init" subcommand.
type InitController struct {
	command commands.Init
}

// NewInitController creates a new InitController.
func NewInitController(command commands.Init) *InitController {
	return &InitController{command: command}
}

// GetBind returns the Cobra command metadata for the init controller.
func (it *InitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "init",
		Short: "Create the settings and data files",
		Long: `Create the settings file with defaults for the detected distribution,
or copy a custom settings file with --config, and create the data file
that tracks the last update.

An existing settings file is only replaced when --config is given.`,
	}
}

// AddFlags adds the init-specific flags to the given Cobra command.
func (it *InitController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Settings file to copy instead of the defaults")
}

// Execute initializes the settings and data files.
func (it *InitController) Execute(cmd *cobra.Command, _ []string) error {
	customPath, _ := cmd.Flags().GetString("config")

	path, err := it.command.Execute(commands.InitOptions{CustomConfigPath: customPath})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote configuration to %s\n", path)
	return err
}
