package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/barinistanbul/storefront/auth"
	"github.com/barinistanbul/storefront/blobstore"
	"github.com/barinistanbul/storefront/catalog"
	"github.com/barinistanbul/storefront/statesync"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func openSyncer(ctx context.Context) (*statesync.Syncer, *blobstore.Backend, *zap.Logger, error) {
	cfg, appLogger, err := setup()
	if err != nil {
		return nil, nil, nil, err
	}
	backend, err := blobstore.Open(ctx, cfg, appLogger)
	if err != nil {
		return nil, nil, nil, err
	}
	syncer := statesync.New(backend.Store, catalog.New(catalog.Options{}), statesync.Options{
		Document:     cfg.Blob.Document,
		PushTimeout:  cfg.Sync.PushTimeout,
		SampleOrders: sampleOrders(cfg),
	}, appLogger)
	return syncer, backend, appLogger, nil
}

func exportDocument(c *cli.Context) error {
	syncer, backend, appLogger, err := openSyncer(c.Context)
	if err != nil {
		return err
	}
	defer appLogger.Sync()
	defer backend.Close()
	defer syncer.Close()

	data, err := syncer.Fetch(c.Context)
	if errors.Is(err, blobstore.ErrNotFound) {
		return cli.Exit("no stored document", 1)
	}
	if err != nil {
		return err
	}
	body, err := statesync.Encode(data)
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "-" {
		_, err = os.Stdout.Write(append(body, '\n'))
		return err
	}
	if err := os.WriteFile(out, body, 0o644); err != nil {
		return err
	}
	appLogger.Info("document exported", zap.String("file", out), zap.Int("products", len(data.Products)))
	return nil
}

func importDocument(c *cli.Context) error {
	body, err := os.ReadFile(c.String("in"))
	if err != nil {
		return err
	}
	data, err := statesync.Decode(body, statesync.DecodeOptions{})
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.String("in"), err)
	}

	syncer, backend, appLogger, err := openSyncer(c.Context)
	if err != nil {
		return err
	}
	defer appLogger.Sync()
	defer backend.Close()
	defer syncer.Close()

	if err := syncer.Push(c.Context, data); err != nil {
		return err
	}
	appLogger.Info("document imported", zap.String("file", c.String("in")), zap.Int("products", len(data.Products)))
	return nil
}

func hashPassword(c *cli.Context) error {
	password := c.Args().First()
	if password == "" {
		return cli.Exit("usage: storefront hash-password <password>", 2)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
