package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/internal/infrastructure/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "创建表结构与下单存储过程",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFrom(configPath)
		if err != nil {
			return err
		}
		log, err := logger.New(cfg.Log)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		// 打开连接时即执行迁移
		_, cleanup, err := provideDB(cfg, log)
		if err != nil {
			return err
		}
		defer cleanup()

		log.Info("迁移完成", zap.String("driver", cfg.Database.Driver), zap.String("dbname", cfg.Database.DBName))
		return nil
	},
}
