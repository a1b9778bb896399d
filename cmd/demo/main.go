package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vskvj3/linkedlist/internal/core"
	"github.com/vskvj3/linkedlist/internal/datastructures"
	"github.com/vskvj3/linkedlist/internal/utils"
)

func main() {
	// Parse command-line arguments
	configPtr := flag.String("config", "", "Path to the YAML config file")
	kindPtr := flag.String("kind", "", "List kind: singly, doubly, circular-singly, circular-doubly or all")
	langPtr := flag.String("lang", "", "Message language (en, ko)")
	debugPtr := flag.Bool("debug", false, "Print debug output to the console")
	flag.Parse()

	configPath := *configPtr
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error getting home directory: "+err.Error())
			os.Exit(1)
		}
		configPath = filepath.Join(homeDir, ".linkedlist", "linkedlist.yaml")
	}

	// Load configurations
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration: "+err.Error())
		os.Exit(1)
	}

	logger := utils.NewLogger(config.LogFile, config.Debug || *debugPtr)
	logger.Debug("Loaded configurations from " + configPath)

	lang := config.Language
	if *langPtr != "" {
		lang = *langPtr
	}
	messages := utils.NewMessages(lang)

	kindName := config.ListKind
	if *kindPtr != "" {
		kindName = *kindPtr
	}
	kinds := datastructures.Kinds
	if kindName != "all" {
		kind, err := datastructures.ParseKind(kindName)
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		kinds = []datastructures.Kind{kind}
	}

	scenario := core.DefaultScenario
	if len(config.Scenario) > 0 {
		scenario = config.Scenario
	}

	failed := false
	for _, kind := range kinds {
		if !runDemo(kind, scenario, messages, logger) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// runDemo plays the scenario on a fresh list of the given kind and logs every step.
// It reports false if a line could not be parsed.
func runDemo(kind datastructures.Kind, scenario []string, messages *utils.Messages, logger *utils.Logger) bool {
	list, err := datastructures.NewList[int](kind)
	if err != nil {
		logger.Error(err.Error())
		return false
	}
	logger.Info(fmt.Sprintf("Running %d steps on a %s linked list", len(scenario), kind))

	handler := core.NewCommandHandler(list)
	ok := true
	for _, step := range handler.RunScenario(scenario, messages) {
		switch {
		case step.Request.Command == "":
			logger.Error(step.Status)
			ok = false
		case step.Err != nil:
			logger.Warn(step.Request.String() + ": " + step.Status)
		default:
			logger.Debug(step.Request.String())
			logger.Info(step.Status)
		}
	}
	return ok
}
