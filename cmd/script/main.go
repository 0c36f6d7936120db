package main

import (
	"context"
	"log"

	"networth/cmd"
	"networth/internal"
	"networth/internal/logger"

	_ "github.com/lib/pq"
)

func main() {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(handler)

	ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())

	snapshot, err := handler.NetWorthService.GetCurrentSnapshot(ctx)
	if err != nil {
		log.Fatal(err)
	}
	internal.Pprint(snapshot)

	err = handler.NetWorthService.RecordDailySnapshot(ctx)
	if err != nil {
		log.Fatal(err)
	}
}
