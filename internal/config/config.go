package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	HTTP
}

type App struct {
	ProcessedDirectory string
	OutputDirectory    string
	WorkerLimit        int
	FetchTimeout       time.Duration
	JPEGQuality        int
	NotifyTimeout      time.Duration
	NotifyAttempts     int
	ScanInterval       time.Duration
	QueueSize          int
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			ProcessedDirectory: cmd.String("processed-dir"),
			OutputDirectory:    cmd.String("output-dir"),
			WorkerLimit:        int(cmd.Int("worker-limit")),
			FetchTimeout:       cmd.Duration("fetch-timeout"),
			JPEGQuality:        int(cmd.Int("jpeg-quality")),
			NotifyTimeout:      cmd.Duration("notify-timeout"),
			NotifyAttempts:     int(cmd.Int("notify-attempts")),
			ScanInterval:       cmd.Duration("scan-interval"),
			QueueSize:          int(cmd.Int("queue-size")),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
