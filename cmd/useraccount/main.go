package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/useraccount/internal/client/cli"
	"github.com/dmitrijs2005/useraccount/internal/client/config"
)

func main() {

	cfg := config.LoadConfig(os.Args[1:])
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
