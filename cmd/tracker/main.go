package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cooper-xs/cf-daily-tracker/internal/app"
	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
)

func main() {
	buildCtx, buildCancel := context.WithTimeout(context.Background(), constants.AppTimeout.Build)
	application, err := app.New(buildCtx)
	buildCancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to assemble application services: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Server exited with error: %v\n", err)
		os.Exit(1)
	}
}
