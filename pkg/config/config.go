package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig         `mapstructure:"app"`
	DB          DBConfig          `mapstructure:"db"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Kafka       KafkaConfig       `mapstructure:"kafka"`
	Wallet      WalletConfig      `mapstructure:"wallet"`
	Accounts    AccountsConfig    `mapstructure:"accounts"`
	Fee         FeeConfig         `mapstructure:"fee"`
	Transaction TransactionConfig `mapstructure:"transaction"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	HttpPort string `mapstructure:"http_port"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// WalletConfig 钱包文件目录与 scrypt 参数
// 测试/开发环境可以调低 N 以加快解锁速度
type WalletConfig struct {
	Dir     string `mapstructure:"dir"`
	Network string `mapstructure:"network"` // "mainnet" or "testnet", 决定地址版本字节
	ScryptN int    `mapstructure:"scrypt_n"`
	ScryptR int    `mapstructure:"scrypt_r"`
	ScryptP int    `mapstructure:"scrypt_p"`
}

type AccountsConfig struct {
	Source     string        `mapstructure:"source"` // "memory" or "postgres"
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
	RedisCache bool          `mapstructure:"redis_cache"` // 是否启用 L2 Redis 缓存
}

// FeeTier 以整币为单位: 金额 <= UpTo 时收取 Fee. UpTo 为 0 表示无上限
type FeeTier struct {
	UpTo uint64 `mapstructure:"up_to"`
	Fee  uint64 `mapstructure:"fee"`
}

type FeeConfig struct {
	MessageUnit uint64    `mapstructure:"message_unit"`
	Tiers       []FeeTier `mapstructure:"tiers"`
}

type TransactionConfig struct {
	TransferDeadlineHours   int `mapstructure:"transfer_deadline_hours"`
	ImportanceDeadlineHours int `mapstructure:"importance_deadline_hours"`
}

var Global Config

func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// 环境变量设置, 例如 WALLET_DIR / KAFKA_ENABLED
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Warning: Config file not found, using defaults and environment variables")
		} else {
			log.Fatalf("Fatal error config file: %s \n", err)
		}
	}

	if err := viper.Unmarshal(&Global); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	log.Printf("Configuration loaded successfully. Env: %s", Global.App.Env)
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.http_port", "7890")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.user", "wallet_user")
	viper.SetDefault("db.password", "wallet_password")
	viper.SetDefault("db.name", "wallet_db")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "wallet_events_transaction_prepared")

	viper.SetDefault("wallet.dir", "./wallets")
	viper.SetDefault("wallet.network", "mainnet")
	viper.SetDefault("wallet.scrypt_n", 262144)
	viper.SetDefault("wallet.scrypt_r", 8)
	viper.SetDefault("wallet.scrypt_p", 1)

	viper.SetDefault("accounts.source", "memory")
	viper.SetDefault("accounts.cache_ttl", 10*time.Minute)
	viper.SetDefault("accounts.redis_cache", false)

	viper.SetDefault("fee.message_unit", 1)
	viper.SetDefault("fee.tiers", []map[string]any{
		{"up_to": 25000, "fee": 1},
		{"up_to": 250000, "fee": 2},
		{"up_to": 2500000, "fee": 5},
		{"up_to": 0, "fee": 10},
	})

	viper.SetDefault("transaction.transfer_deadline_hours", 5)
	viper.SetDefault("transaction.importance_deadline_hours", 7)
}
