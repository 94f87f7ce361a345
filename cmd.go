package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ordkit/raresat/sat"
)

type RuntimeArguments struct {
	// EnableService: Provide APIs.
	EnableService bool
	// EnableDebug: Run gin in debug mode.
	EnableDebug bool
	// EnablePprof: Register pprof handlers on the API router.
	EnablePprof bool
	// MetricAddr: Listen address of the Prometheus endpoint.
	MetricAddr string
	// ConfigFilePath: Path of the configuration file.
	ConfigFilePath string
}

func NewRuntimeArguments() *RuntimeArguments {
	return &RuntimeArguments{}
}

func (arguments *RuntimeArguments) MakeCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "raresat",
		Short: "Classifies satoshi ordinals into rare categories and serves the browsable catalog.",
		Long: `
		Raresat assigns every satoshi ordinal number to exactly one rare category based on the
		arithmetic and structural properties of that number, scores it on a 1-10 rarity scale,
		and reconciles a caller's held satoshis against the browsable category catalog for
		selection in an inscription workflow.

		Flags:
		- "--service/-s": Activates the web service API, allowing queries against the classifier,
		  the catalog, and the reconciliation and filtering endpoints.
		- "--debug": Runs the router in debug mode with request logging.
		- "--pprof": Registers the pprof handlers on the API router.
		`,

		Run: func(cmd *cobra.Command, args []string) {
			if arguments.EnableService {
				log.Println("Service mode is enabled.")
			} else {
				log.Println("Service mode is disabled.")
			}
			if arguments.EnableDebug {
				log.Println("Debug mode is enabled.")
			}
			if arguments.EnablePprof {
				log.Println("Pprof is enabled.")
			}
			Execution(arguments)
		},
	}

	classifyCmd := &cobra.Command{
		Use:   "classify <sat> [<sat>...]",
		Short: "Classifies satoshi ordinals and prints the verdicts as JSON.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				s, err := sat.ParseSat(raw)
				if err != nil {
					return err
				}
				out, err := json.Marshal(sat.Classify(s))
				if err != nil {
					return err
				}
				fmt.Println(string(out))
			}
			return nil
		},
	}
	rootCmd.AddCommand(classifyCmd)

	rootCmd.Flags().BoolVarP(&arguments.EnableService, "service", "s", true, "Enable this flag to provide API service")
	rootCmd.Flags().BoolVarP(&arguments.EnableDebug, "debug", "", false, "Enable this flag to run the router in debug mode")
	rootCmd.Flags().BoolVarP(&arguments.EnablePprof, "pprof", "", false, "Enable this flag to register pprof handlers")
	rootCmd.Flags().StringVarP(&arguments.MetricAddr, "metrics", "m", ":9102", "Listen address of the Prometheus endpoint")
	rootCmd.Flags().StringVarP(&arguments.ConfigFilePath, "config", "c", "config.json", "Path of the configuration file")

	return rootCmd
}
