package cmd

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/lsnet/topodiff/state"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func promptDefaultStr(label string, def string, validateFunc promptui.ValidateFunc) string {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Validate:  validateFunc,
	}
	val, err := prompt.Run()
	if err != nil {
		panic(err)
	}
	return val
}

func urlValidator(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("expecting an http(s) url")
	}
	return nil
}

func durationValidator(s string) error {
	_, err := time.ParseDuration(s)
	return err
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a topodiff configuration interactively",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := state.DefaultConfig()

		cfg.DaemonEndpoint = promptDefaultStr("Daemon ctl endpoint", cfg.DaemonEndpoint, urlValidator)
		cfg.StoreEndpoint = promptDefaultStr("Store endpoint", cfg.StoreEndpoint, urlValidator)
		timeout := promptDefaultStr("Fetch timeout", cfg.Timeout.String(), durationValidator)
		parsed, _ := time.ParseDuration(timeout)
		cfg.Timeout = state.Duration(parsed)

		if err := state.ConfigValidator(&cfg); err != nil {
			fatal(err)
		}

		out, err := yaml.Marshal(&cfg)
		if err != nil {
			panic(err)
		}
		if err := os.WriteFile(configPath, out, 0600); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %s\n", configPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
