package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/barinistanbul/storefront/config"
	"github.com/barinistanbul/storefront/logger"
	"github.com/barinistanbul/storefront/models"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:   "storefront",
		Usage:  "Barinistanbul hijab storefront backend",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: serve,
			},
			{
				Name:  "export",
				Usage: "write the stored document to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "admin-data.json", Usage: "output file, - for stdout"},
				},
				Action: exportDocument,
			},
			{
				Name:  "import",
				Usage: "replace the stored document with a file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Required: true, Usage: "input file"},
				},
				Action: importDocument,
			},
			{
				Name:      "hash-password",
				Usage:     "print a bcrypt hash for ADMIN_PASSWORD_HASH",
				ArgsUsage: "<password>",
				Action:    hashPassword,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// setup loads configuration and builds the logger shared by every command.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, appLogger, nil
}

func sampleOrders(cfg *config.Config) func() []models.Order {
	if !cfg.Sync.SeedSampleOrders {
		return nil
	}
	return func() []models.Order {
		now := time.Now()
		return models.SampleOrders(now, rand.New(rand.NewPCG(uint64(now.UnixNano()), 0)))
	}
}
