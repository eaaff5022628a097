package main

import (
	"fmt"

	"github.com/Pubzeee/nasikoai/internal/cli"
	"github.com/Pubzeee/nasikoai/internal/utils"
)

const (
	loggerInitializationFailedFormat  = "failed to initialize logger: %w"
	applicationExecutionFailedMessage = "application execution failed"
)

// main is the entry point for the nasikoai command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(loggerInitializationFailedFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(); applicationExecutionError != nil {
		loggerInstance.Fatal(applicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
