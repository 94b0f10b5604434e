package main

import (
	"errors"
	"log"

	"github.com/aussiebroadwan/memorylane/internal/memories/app"
)

//go:generate swag init --generalInfo router.go --dir ../../internal/memories/http,../../pkg/memoriessdk --output ../../api/memorylane --outputTypes go --packageName memorylane

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		var cfgErr *app.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Fatalf("invalid configuration: %v", cfgErr)
		}
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
