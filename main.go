package main

import (
	"context"
	"os"
	"os/signal"

	"deskclient/cli"
	"deskclient/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		logging.GetLogger().Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}
