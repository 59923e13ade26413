package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/mohitahujaa/pizzeria-management/config"
	"github.com/mohitahujaa/pizzeria-management/kafka"
	"github.com/mohitahujaa/pizzeria-management/service/catalog"
	"github.com/mohitahujaa/pizzeria-management/service/fulfillment"
	"github.com/mohitahujaa/pizzeria-management/service/stock"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const versionTimeFormat = "20060102150405"

func main() {
	rootCmd := &cobra.Command{Use: "pizzeria"}
	rootCmd.AddCommand(
		createMigrationCommand(),
		migrateCommand(),
		relayOutboxCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		panic(err)
	}
}

func createMigrationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-create [name]",
		Short: "create sql migrations",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			now := time.Now()
			version := now.Format(versionTimeFormat)
			name := args[0]
			migrationDir := config.Load().MigrationDir
			up := fmt.Sprintf("%s/%s_%s.up.sql", migrationDir, version, name)
			down := fmt.Sprintf("%s/%s_%s.down.sql", migrationDir, version, name)

			err := os.WriteFile(up, []byte{}, 0644)
			if err != nil {
				panic(err)
			}

			err = os.WriteFile(down, []byte{}, 0644)
			if err != nil {
				panic(err)
			}

			fmt.Println("Created SQL up script:", up)
			fmt.Println("Created SQL down script:", down)
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-up",
		Short: "migrate all the way up",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			conf := config.Load()
			m, err := migrate.New(
				fmt.Sprintf("file://%s", conf.MigrationDir),
				fmt.Sprintf("mysql://%s", conf.DatabaseDSN),
			)
			if err != nil {
				panic(err)
			}

			err = m.Up()
			if err == migrate.ErrNoChange {
				fmt.Println("No change in migration")
				return
			}
			if err != nil {
				panic(err)
			}
			fmt.Println("Migrated up")
		},
	}
}

func relayOutboxCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "relay-outbox",
		Short: "push pending order events to kafka",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			conf := config.Load()
			logger, err := zap.NewProduction()
			if err != nil {
				panic(err)
			}
			defer logger.Sync()

			db, err := sqlx.Connect("mysql", conf.DatabaseDSN)
			if err != nil {
				logger.Fatal("connect database", zap.Error(err))
			}

			producer, err := kafka.NewProducer(conf.KafkaHost, conf.OrderPlacedTopic)
			if err != nil {
				logger.Fatal("connect kafka", zap.Error(err))
			}

			svc := fulfillment.NewService(
				fulfillment.NewRepo(db),
				catalog.NewService(catalog.NewRepo(db), logger),
				stock.NewService(stock.NewRepo(db), logger),
				producer,
				logger,
			)

			ctx := cmd.Context()
			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()

			logger.Info("outbox relay started", zap.String("topic", conf.OrderPlacedTopic))
			for {
				select {
				case <-ctx.Done():
					logger.Info("outbox relay stopped")
					return
				case <-ticker.C:
					if err := svc.RelayMessages(ctx, conf.OutboxBatchSize); err != nil {
						logger.Error("relay outbox", zap.Error(err))
					}
				}
			}
		},
	}
}
