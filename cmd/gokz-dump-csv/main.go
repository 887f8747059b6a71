package main

import (
	"gokz-dump/internal/command"
	"gokz-dump/internal/logging"
	"gokz-dump/internal/model"
	"os"
)

func main() {
	app := command.NewApp("gokz-dump-csv", model.VariantJoined)
	if err := app.Run(os.Args); err != nil {
		logging.Logger.WithError(err).Fatal("Abort")
	}
}
