package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vskvj3/linkedlist/internal/core"
	"github.com/vskvj3/linkedlist/internal/datastructures"
	"github.com/vskvj3/linkedlist/internal/shell"
	"github.com/vskvj3/linkedlist/internal/utils"
)

func main() {
	configPtr := flag.String("config", "linkedlist.yaml", "Path to the YAML config file")
	kindPtr := flag.String("kind", "", "List kind: singly, doubly, circular-singly, circular-doubly")
	langPtr := flag.String("lang", "", "Message language (en, ko)")
	flag.Parse()

	config, err := utils.LoadConfig(*configPtr)
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}
	logger := utils.NewLogger(config.LogFile, config.Debug)

	kindName := config.ListKind
	if *kindPtr != "" {
		kindName = *kindPtr
	}
	kind, err := datastructures.ParseKind(kindName)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	list, err := datastructures.NewList[int](kind)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	lang := config.Language
	if *langPtr != "" {
		lang = *langPtr
	}

	fmt.Printf("Editing a %s linked list. Type commands (e.g., APPEND 10, INSERT_AT 1 5, SHOW, HISTORY, EXIT) and press Enter.\n", kind)
	s := shell.New(core.NewCommandHandler(list), utils.NewMessages(lang), logger, config.HistorySize)
	if err := s.Run(os.Stdin, os.Stdout); err != nil {
		logger.Error("Error reading input: " + err.Error())
		os.Exit(1)
	}
}
