package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"ecommerce_record_service/bundlefx/customerfx"
	"ecommerce_record_service/bundlefx/infrafx"
	"ecommerce_record_service/bundlefx/orderfx"
	"ecommerce_record_service/bundlefx/productfx"
)

func init() {
	serveCmd.Flags().IntP("port", "p", 8080, "Port for the record store API")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the record store API",
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		startRecordStore(port)
	},
}

func startRecordStore(port int) {
	fx.New(
		fx.Provide(
			NewGinEngine,
			providePort(port),
		),
		infrafx.Module,
		customerfx.Module,
		productfx.Module,
		orderfx.Module,
		fx.Invoke(StartHTTPServer),
	).Run()
}
