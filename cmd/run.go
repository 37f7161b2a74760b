package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ieltsprep/internal/app"
	"github.com/abhisek/ieltsprep/internal/section"
	"github.com/abhisek/ieltsprep/internal/speech"
)

func init() {
	rootCmd.Flags().String("section", "writing", "Section to open first: writing, speaking, reading or listening")
}

func runApp(cmd *cobra.Command) error {
	name, _ := cmd.Flags().GetString("section")
	start, err := section.Parse(name)
	if err != nil {
		return err
	}

	svc, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	err = app.Run(cmd.Context(), app.Options{
		Evaluator: svc.writing,
		Samples:   svc.speaking,
		Speaker:   speech.New(svc.cfg.Speech, svc.store.EventRepo()),
		Status:    svc.status(),
		Start:     start,
		LogPath:   svc.logPath(),
	})
	if err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}
