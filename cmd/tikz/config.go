// seehuhn.de/go/tikz - create TikZ graphics from Go
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"seehuhn.de/go/tikz/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration",
}

var (
	configInitForce bool
	configInitUser  bool
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write a config file with the default settings to ./` + config.FileName + `,
or to the user configuration directory with --user.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing file")
	configInitCmd.Flags().BoolVar(&configInitUser, "user", false, "Write to the user configuration directory")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	name := config.FileName
	if configInitUser {
		dir := config.UserDir()
		if dir == "" {
			return errors.New("cannot determine the user configuration directory")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		name = filepath.Join(dir, config.FileName)
	}

	if !configInitForce {
		if _, err := os.Stat(name); err == nil {
			err := errors.Newf("%s already exists", name)
			return errors.WithHint(err, "use --force to overwrite it")
		}
	}

	data, err := config.Default().Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return err
	}
	pterm.Success.Printfln("wrote %s", name)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if name, _ := cmd.Flags().GetString("config"); name != "" {
		fmt.Printf("# %s\n", name)
	} else if name := config.FindFile(); name != "" {
		fmt.Printf("# %s\n", name)
	} else {
		fmt.Println("# default configuration")
	}
	fmt.Print(string(data))
	return nil
}
