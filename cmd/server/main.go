package main

import (
	"context"

	"github.com/blackmessages/backend/internal/server"
	"github.com/blackmessages/backend/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app := server.NewApp(ctx, cfg)
	app.Run(ctx)

}
