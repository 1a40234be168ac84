package config

import "time"

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration
type Configuration struct {
	Server Server `debugmap:"visible"`
	Auth   Auth   `debugmap:"visible"`
	Queue  Queue  `debugmap:"visible"`
	Run    Run    `debugmap:"visible"`
	Log    Log    `debugmap:"visible"`
}

type Server struct {
	HTTPPort        int           `default:"8000"`
	ServerMode      string        `default:"dev"`
	ShutdownTimeout time.Duration `default:"10s"`
}

type Auth struct {
	Enabled     bool   `default:"false"`
	JWTFilePath string `default:""`
}

// Queue configures the served or locally drained work queue.
type Queue struct {
	Mode        string `default:"fifo"`
	HistorySize int    `default:"100"`
}

type Run struct {
	JobsFile   string
	BatchSize  int `default:"0"`
	ReportFile string
}

type Log struct {
	Level  string `default:"info"`
	Format string `default:"console"`
}
