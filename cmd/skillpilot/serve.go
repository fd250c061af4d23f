package main

import (
	"github.com/spf13/cobra"

	"github.com/OneForces/effectivness/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP JSON API",
	RunE:  runServeCmd,
}

var serveAddr string

func init() {
	serveCommand.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to LISTEN_ADDR or :8080)")
	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	addr := a.cfg.ListenAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := server.New(server.Config{Addr: addr, BatchWorkers: a.cfg.BatchWorkers}, a.scorer, a.log)
	return srv.Start()
}
