package main

import (
	"gokz-dump/internal/command"
	"gokz-dump/internal/logging"
	"gokz-dump/internal/model"
	"os"
)

func main() {
	app := command.NewApp("gokz-dump-json", model.VariantTicks)
	if err := app.Run(os.Args); err != nil {
		logging.Logger.WithError(err).Fatal("Abort")
	}
}
