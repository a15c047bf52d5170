package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string `yaml:"env" env-default:"local"`
	StoragePath string `yaml:"storage_path" env-default:"registros.db"`
	ExportDir   string `yaml:"export_dir" env-default:"./nominas"`
	HTTPServer  `yaml:"http_server"`

	AdminLogin string `yaml:"admin_login"`
	AdminPass  string `yaml:"admin_pass"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4002"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
