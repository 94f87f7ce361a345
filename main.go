package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/ordkit/raresat/apis"
	"github.com/ordkit/raresat/internal/metrics"
)

var (
	version = "latest"
	gitHash = "unknown"
)

func Execution(arguments *RuntimeArguments) {
	go metrics.ListenAndServe(arguments.MetricAddr)
	metrics.Version.WithLabelValues(version).Set(1)
	metrics.Stage.Set(metrics.StageInitializing)

	// Get the configuration.
	configFile, err := os.ReadFile(arguments.ConfigFilePath)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = json.Unmarshal(configFile, &GlobalConfig)
	if err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}

	if !arguments.EnableService {
		log.Println("Service mode is disabled, nothing to do.")
		return
	}

	log.Printf("Providing API service at: %s", GlobalConfig.Service.Addr)
	metrics.Stage.Set(metrics.StageServing)
	apis.StartService(GlobalConfig.Service.Addr, arguments.EnableDebug, arguments.EnablePprof)
}

func main() {
	log.Printf("raresat %s (%s)", version, gitHash)
	arguments := NewRuntimeArguments()
	rootCmd := arguments.MakeCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute: %v", err)
	}
}
