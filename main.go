package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Captaln/bp-control/config"
	"github.com/Captaln/bp-control/internal/icons"
	"github.com/Captaln/bp-control/internal/storage"
	"github.com/Captaln/bp-control/internal/types"
	"github.com/Captaln/bp-control/internal/utils"
	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/spf13/cobra"
)

type App struct {
	config         *config.Config
	storageService *storage.StorageService
	updater        *icons.Updater
}

// NewApp wires config, storage and the updater together.
func NewApp(storageService *storage.StorageService) (*App, error) {
	envConfig, err := config.InitializeEnvs()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize environment config: %w", err)
	}
	return &App{
		config:         envConfig,
		storageService: storageService,
		updater:        icons.NewUpdater(envConfig, storageService),
	}, nil
}

// Run reports the two fatal conditions and returns normally; there is no
// separate exit code for them. The report is nil in that case.
func (a *App) Run() (*types.Report, error) {
	report, err := a.updater.Run()
	switch {
	case errors.Is(err, icons.ErrSourceMissing):
		log.WithField("path", a.config.SourceImagePath).Error("source image not found")
		return nil, nil
	case errors.Is(err, icons.ErrDecode):
		log.WithError(err).Error("error loading image")
		return nil, nil
	case err != nil:
		return nil, err
	}
	log.WithFields(log.Fields{
		"folders": len(report.Folders),
		"skipped": len(report.Skipped),
		"web":     report.WebIconPath,
	}).Debug("summary")
	return report, nil
}

func writeReport(w io.Writer, report *types.Report) error {
	data, err := utils.SerializeJSON(report)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// newRootCmd logs to out, or to stderr when --json owns stdout.
func newRootCmd(out io.Writer) *cobra.Command {
	var verbose, jsonReport bool
	cmd := &cobra.Command{
		Use:           "icon-updater",
		Short:         "Regenerate the Android launcher icons and the web app icon.",
		Long:          "Resizes the source image into every mipmap folder of the Android resource tree and writes a 512px web icon to public/.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logOut := out
			if jsonReport {
				logOut = cmd.ErrOrStderr()
			}
			log.SetHandler(text.New(logOut))
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
			app, err := NewApp(storage.NewOsStorageService())
			if err != nil {
				return err
			}
			report, err := app.Run()
			if err != nil || report == nil || !jsonReport {
				return err
			}
			return writeReport(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&jsonReport, "json", false, "print a JSON report of the written files")
	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatalf("icon-updater: %v", err)
	}
}
