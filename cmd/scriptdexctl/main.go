// Command scriptdexctl queries an example corpus from the terminal,
// either in-process over a local directory or through a running scriptdex server.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/kailas-cloud/scriptdex/internal/version"
)

func main() {
	// fang overrides rootCmd.Version, so pass it explicitly
	if err := fang.Execute(
		context.Background(),
		newRootCmd(os.Stdout),
		fang.WithVersion(version.String()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
