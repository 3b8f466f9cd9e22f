package main

import (
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/charmbracelet/huh"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"

	"github.com/blackcoderx/oasconv/pkg/render"
)

const repoSlug = "blackcoderx/oasconv"

var assumeYes bool

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Install the latest release without asking")
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace this binary with the latest oasconv release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := semver.ParseTolerant(version)
		if err != nil {
			return fmt.Errorf("self-update needs a release build, this one reports version %q", version)
		}

		latest, found, err := selfupdate.DetectLatest(repoSlug)
		if err != nil {
			return fmt.Errorf("failed to look up releases of %s: %w", repoSlug, err)
		}
		if !found || latest.Version.LTE(current) {
			fmt.Println(render.Success(fmt.Sprintf("oasconv %s is up to date", current)))
			return nil
		}

		if !assumeYes {
			install := false
			prompt := huh.NewConfirm().
				Title(fmt.Sprintf("Install oasconv %s (running %s)?", latest.Version, current)).
				Value(&install)
			if err := prompt.Run(); err != nil {
				return err
			}
			if !install {
				return nil
			}
		}

		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate the running binary: %w", err)
		}
		if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
			return fmt.Errorf("failed to install %s: %w", latest.Version, err)
		}
		fmt.Println(render.Success(fmt.Sprintf("Updated oasconv to %s", latest.Version)))
		return nil
	},
}
