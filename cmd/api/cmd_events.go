package main

import (
	"encoding/json"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiebiao/inventory/internal/domain/order"
	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/internal/infrastructure/logger"
	"github.com/xiebiao/inventory/pkg/mq"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "消费订单事件并写入日志",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFrom(configPath)
		if err != nil {
			return err
		}
		if !cfg.MQ.Enabled {
			return errors.New("未启用消息队列（mq.enabled=false）")
		}

		log, err := logger.New(cfg.Log)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		consumer, err := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, cfg.MQ.Queue, []string{"order.*"}, log)
		if err != nil {
			return err
		}
		defer func() { _ = consumer.Close() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return consumer.Consume(ctx, func(routingKey string, body []byte) error {
			if routingKey != order.RoutingKeyCreated {
				log.Info("忽略未知事件", zap.String("routing_key", routingKey))
				return nil
			}

			var e order.CreatedEvent
			if err := json.Unmarshal(body, &e); err != nil {
				// 格式错误的消息重新入队也无法处理
				log.Error("订单事件格式错误", zap.ByteString("body", body), zap.Error(err))
				return nil
			}
			log.Info("订单已创建",
				zap.Uint("order_id", e.OrderID),
				zap.Uints("product_ids", e.ProductIDs),
				zap.Ints("amounts", e.Amounts),
				zap.Time("created_at", e.CreatedAt),
			)
			return nil
		})
	},
}
