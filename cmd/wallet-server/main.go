package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wallet-mapper/internal/handler"
	"wallet-mapper/internal/model"
	"wallet-mapper/internal/server"
	"wallet-mapper/internal/service/account"
	"wallet-mapper/internal/service/fee"
	"wallet-mapper/internal/service/mapper"
	"wallet-mapper/internal/service/message"
	"wallet-mapper/internal/service/mq"
	"wallet-mapper/internal/service/timeprovider"
	"wallet-mapper/internal/service/wallet"
	"wallet-mapper/pkg/address"
	"wallet-mapper/pkg/cache"
	"wallet-mapper/pkg/config"
	"wallet-mapper/pkg/database"
	"wallet-mapper/pkg/logger"
)

// @title Wallet Mapper API
// @version 1.0
// @description Maps wallet transfer requests to unsigned domain transactions.
// @BasePath /
func main() {
	// 0. 初始化 Config
	config.Init()

	// 1. 初始化 Logger
	logger.Init(config.Global.App.Env)
	defer logger.Sync()

	var closers []func() error

	// 2. 钱包存储
	store, err := wallet.NewStoreFromConfig(config.Global.Wallet)
	if err != nil {
		logger.Fatal("初始化钱包存储失败", zap.Error(err))
	}
	version, _ := address.VersionForNetwork(config.Global.Wallet.Network)
	addresses := address.NewGenerator(version)

	// 3. 账户目录 (仓库 + 缓存)
	lookup, cleanup := buildAccountLookup()
	closers = append(closers, cleanup...)

	// 4. 手续费表
	schedule, err := fee.NewScheduleFromConfig(config.Global.Fee)
	if err != nil {
		logger.Fatal("手续费配置错误", zap.Error(err))
	}

	// 5. 核心映射器
	txMapper := mapper.New(
		store,
		lookup,
		timeprovider.NewSystemClock(),
		message.NewCodec(),
		schedule,
		mapper.WithDefaultDeadlines(
			config.Global.Transaction.TransferDeadlineHours,
			config.Global.Transaction.ImportanceDeadlineHours,
		),
	)

	// 6. 审计事件
	var producer mq.Producer = mq.NopProducer{}
	if config.Global.Kafka.Enabled {
		logger.Info("使用 Kafka 发送交易事件", zap.Strings("brokers", config.Global.Kafka.Brokers))
		producer = mq.NewKafkaProducer(config.Global.Kafka.Brokers)
	}
	closers = append(closers, producer.Close)
	events := mq.NewEventPublisher(producer, config.Global.Kafka.Topic)

	// 7. HTTP
	r := server.NewHTTPRouter(
		handler.NewTransactionHandler(txMapper, events, addresses),
		handler.NewAccountHandler(lookup, addresses),
	)

	app := server.New(server.Config{HttpPort: config.Global.App.HttpPort}, r)
	for _, c := range closers {
		app.OnShutdown(c)
	}

	// 运行 (阻塞)
	app.Run()
}

// buildAccountLookup 按配置选择仓库 (memory/postgres) 和缓存 (L1 或 L1+L2)
func buildAccountLookup() (*account.Lookup, []func() error) {
	cfg := config.Global.Accounts
	var closers []func() error

	var repo account.Repository
	switch cfg.Source {
	case "postgres":
		db, err := database.ConnectPostgres(database.DSN(config.Global.DB))
		if err != nil {
			logger.Fatal("数据库连接失败", zap.Error(err))
		}
		if config.Global.App.Env == "development" {
			logger.Info("开发环境: 自动迁移 Schema (GORM AutoMigrate)")
			if err := db.AutoMigrate(model.AllModels()...); err != nil {
				logger.Fatal("数据库自动迁移失败", zap.Error(err))
			}
		}
		if sqlDB, err := db.DB(); err == nil {
			closers = append(closers, sqlDB.Close)
		}
		repo = account.NewGormRepository(db)
	default:
		logger.Info("使用内存账户目录")
		repo = account.NewMemoryRepository()
	}

	var c cache.Cache = cache.NewMemoryCache(cfg.CacheTTL, 2*cfg.CacheTTL)
	if cfg.RedisCache {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rdb, err := database.ConnectRedis(ctx, config.Global.Redis.Addr, config.Global.Redis.Password, config.Global.Redis.DB)
		if err != nil {
			logger.Fatal("Redis 连接失败", zap.Error(err))
		}
		closers = append(closers, rdb.Close)
		c = cache.NewMultiLevelCache(c, cache.NewRedisCache(rdb, "wallet-mapper:"))
	}

	return account.NewLookup(repo, c, cfg.CacheTTL), closers
}
