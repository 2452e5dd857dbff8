package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultMigrations = "migrations"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Sync   Sync
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type Sync struct {
	ChunkSize    int `env:"SYNC_CHUNK_SIZE"`
	MaxBatchSize int `env:"SYNC_MAX_BATCH_SIZE"`
	HistoryLimit int `env:"SYNC_HISTORY_LIMIT"`
}

func NewConfig() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", defaultRunAddress)
	viper.SetDefault("migrations_path", defaultMigrations)
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("sync_chunk_size", 50)
	viper.SetDefault("sync_max_batch_size", 1000)
	viper.SetDefault("sync_history_limit", 20)

	return &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress: viper.GetString("run_address"),
		},
		Sync: Sync{
			ChunkSize:    viper.GetInt("sync_chunk_size"),
			MaxBatchSize: viper.GetInt("sync_max_batch_size"),
			HistoryLimit: viper.GetInt("sync_history_limit"),
		},
	}
}
