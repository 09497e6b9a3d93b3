package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/brew-available/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := app.Execute(ctx)
	stop()

	if err != nil {
		label := color.New(color.FgRed, color.Bold)
		if os.Getenv("NO_COLOR") == "" && isatty.IsTerminal(os.Stderr.Fd()) {
			label.EnableColor()
		} else {
			label.DisableColor()
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", label.Sprint("Error:"), err)
		os.Exit(app.ExitCode(err))
	}
}
