package cmd

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"focusdeck/core/config"
	"focusdeck/core/logger"
	"focusdeck/core/storage"
	"focusdeck/feature/soundscape"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd uploads a directory of audio files into the soundscape bucket.
var seedCmd = &cobra.Command{
	Use:   "seed [dir]",
	Short: "Upload soundscape audio to object storage",
	Long:  `Uploads every supported audio file in the given directory to the soundscape bucket. Unsupported files are skipped.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}
		svc := soundscape.NewService(client, cfg.Storage.Bucket, logg)

		entries, err := os.ReadDir(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			full := filepath.Join(args[0], entry.Name())
			info, err := entry.Info()
			if err != nil {
				return err
			}

			f, err := os.Open(full)
			if err != nil {
				return err
			}
			err = svc.Upload(ctx, entry.Name(), f, info.Size())
			f.Close()
			if err != nil {
				logg.Warn("Skipping file", zap.String("file", entry.Name()), zap.Error(err))
				continue
			}
			logg.Info("Uploaded soundscape", zap.String("file", entry.Name()))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}
