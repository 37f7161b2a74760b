package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/abhisek/ieltsprep/internal/server"
	"github.com/abhisek/ieltsprep/internal/speech"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the practice sections as a JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		cfg := svc.cfg.Server
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		if svc.cfg.Debug {
			cfg.DevErrors = true
		}

		deps := server.Deps{Evaluator: svc.writing, Samples: svc.speaking}
		synth, err := speech.NewSynthesizer(svc.cfg.Speech, svc.store.EventRepo())
		if err != nil {
			log.Printf("serve: audio disabled: %v", err)
		} else {
			deps.Synth = synth
		}

		return server.New(cfg, deps).Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr and IELTSPREP_SERVER_ADDR)")
}
