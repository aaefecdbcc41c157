// Command frontdesk runs the hotel front desk sign-in service.
package main

import (
	"flag"
	"log"

	"github.com/hoteldesk/frontdesk/frontdesk"
)

func main() {
	configPath := flag.String("config", "frontdesk.yml", "path to the YAML configuration file")
	flag.Parse()

	config, err := frontdesk.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	srv, err := frontdesk.NewService(config)
	if err != nil {
		log.Fatal(err)
	}
	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}
	defer srv.Stop()
	log.Printf("Listening on port %d", config.Port)
	srv.WaitForInterrupt()
}
