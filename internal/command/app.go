package command

import (
	"gokz-dump/internal/model"
	"gokz-dump/internal/pipeline"

	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"
)

// NewApp builds the command line app exporting one variant. It takes a single
// optional argument, the database path.
func NewApp(name string, v model.Variant) *cli.App {
	return &cli.App{
		Name:      name,
		Usage:     "Dump the times of a GOKZ SQLite database as " + string(v.Output),
		ArgsUsage: "[database path, default " + model.DefaultDatabasePath + "]",
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				return errors.Errorf("expected at most one argument, got %d", c.NArg())
			}

			dbPath := c.Args().First()
			if dbPath == "" {
				dbPath = model.DefaultDatabasePath
			}

			_, err := pipeline.Run(c.Context, pipeline.Options{
				DatabasePath: dbPath,
				Variant:      v,
			})
			return err
		},
	}
}
