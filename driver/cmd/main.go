package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Scusemua/go-utils/config"
	"github.com/pkg/errors"
	"github.com/scusemua/linked-hashtable/driver"
)

var (
	options      = driver.DefaultOptions()
	globalLogger = config.GetLogger("")
)

// ValidateOptions ensures that the options/configuration is valid.
func ValidateOptions() {
	flags, err := config.ValidateOptions(&options)
	if errors.Is(err, config.ErrPrintUsage) {
		flags.PrintDefaults()
		os.Exit(0)
	} else if err != nil {
		log.Fatal(err)
	}
}

func main() {
	ValidateOptions()

	if options.PrettyPrintOptions {
		globalLogger.Info("Starting the driver with the following options:\n%s\n", options.PrettyString(2))
	} else {
		globalLogger.Info("Starting the driver.")
	}

	runner := driver.NewRunner()
	runner.Submit(driver.Scenarios(&options)...)

	reports, err := runner.Run()

	if options.JSON {
		out, jsonErr := driver.RenderJSON(reports)
		if jsonErr != nil {
			log.Fatalf("Failed to render the reports as JSON: %v", jsonErr)
		}

		fmt.Println(out)
	} else {
		for _, report := range reports {
			fmt.Println(driver.Render(report))
		}
	}

	if err != nil {
		globalLogger.Error("The driver stopped early: %v", err)
		os.Exit(1)
	}

	globalLogger.Info("Ran %d scenario(s).", len(reports))
}
