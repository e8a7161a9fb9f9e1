// Command token mints a development session token for the gRPC API.
//
//	go run ./cmd/token -user alice
//	grpcurl -H "authorization: Bearer $(go run ./cmd/token -user alice)" ...
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/simaogato/sendmoney-backend/internal/config"
	"github.com/simaogato/sendmoney-backend/internal/session"
)

func main() {
	user := flag.String("user", "demo-user", "user id carried in the token subject")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := session.NewManager(cfg.SessionSecret, cfg.SessionTTL).Issue(*user)
	if err != nil {
		slog.Error("failed to issue token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
