/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"io/ioutil"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/powerman/structlog"
	"github.com/spf13/cobra"

	"github.com/Lazyartist1/Non-Flow-processes-calculator/api"
	"github.com/Lazyartist1/Non-Flow-processes-calculator/config"
	"github.com/Lazyartist1/Non-Flow-processes-calculator/thermo"
)

var log = structlog.New()

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the process calculator HTTP API",
	Long: `
Starts the HTTP API: POST /calculate runs a process calculation, GET
/substances and GET /processes list the selectable entities, GET /health
reports liveness.

nonflow serve -a :8080`,
	Run: func(cmd *cobra.Command, args []string) {
		params := config.Default()
		if file, _ := cmd.Flags().GetString("params"); file != "" {
			data, err := ioutil.ReadFile(file)
			if err != nil {
				log.Fatal(err)
			}
			if err := params.Parse(data); err != nil {
				log.Fatal(err)
			}
		}
		// Listen address resolution: flag, then PORT env, then file/default.
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			params.Addr = addr
		} else if port := os.Getenv("PORT"); port != "" {
			params.Addr = ":" + port
		}
		params.Print()

		tbl := thermo.NewTable()
		if params.GasFile != "" {
			if err := tbl.MergeFile(params.GasFile); err != nil {
				log.Fatal(err)
			}
		}

		cors := handlers.CORS(
			handlers.AllowedOrigins(params.AllowedOrigins),
			handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
		)
		logged := handlers.LoggingHandler(os.Stdout, cors(api.NewRouter(tbl)))

		log.Info("calculator API listening", "addr", params.Addr)
		log.Fatal(http.ListenAndServe(params.Addr, logged))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "listen address, overrides the parameters file and PORT")
	serveCmd.Flags().StringP("params", "f", "", "server parameters file (YAML)")
}
