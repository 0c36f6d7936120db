package main

import (
	"context"
	"log"
	"time"

	"networth/api"
	"networth/cmd"
	"networth/internal/logger"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	c, err := startSnapshotCron(apiHandler)
	if err != nil {
		log.Fatal(err)
	}
	defer c.Stop()

	err = apiHandler.StartApi(3009)
	if err != nil {
		log.Fatal(err)
	}
}

// startSnapshotCron records a net worth snapshot every weekday after
// the Taiwan market close.
func startSnapshotCron(apiHandler *api.ApiHandler) (*cron.Cron, error) {
	taipei, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		return nil, err
	}

	c := cron.New(cron.WithLocation(taipei))
	_, err = c.AddFunc("0 14 * * MON-FRI", func() {
		log := logger.New()
		ctx := context.WithValue(context.Background(), logger.ContextKey, log)
		err := apiHandler.NetWorthService.RecordDailySnapshot(ctx)
		if err != nil {
			log.Errorf("scheduled snapshot failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
