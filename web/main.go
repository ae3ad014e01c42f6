package main

import (
	"context"
	"log"

	v1 "churchtrack.com/churchtrack/churchtrack/v1"
	"churchtrack.com/churchtrack/guard"
	"churchtrack.com/churchtrack/infrastructure/communication"
	"churchtrack.com/churchtrack/infrastructure/devops"
	"churchtrack.com/churchtrack/session"
	"churchtrack.com/churchtrack/web/handlers"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	cfg, err := devops.LoadConsoleConfig(ctx)
	if err != nil {
		log.Fatal("failed to load configuration:", err)
	}

	sessions := session.NewStore(session.NewFileStore(cfg.SessionFile))
	g := guard.New(sessions)
	client := v1.NewChurchTrackClient(cfg.BackendURL, sessions, g.HandleUnauthenticated)

	r := gin.Default()
	handlers.Register(r, &handlers.Console{
		Client: client,
		Guard:  g,
		Notify: communication.ConnectSlack(),
	})

	r.Run(cfg.Listen)
}
