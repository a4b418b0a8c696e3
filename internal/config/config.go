package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Processors int

	// MySQLDSN enables the MySQL result sink when not empty
	MySQLDSN string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Processors   int
	NameFilter   string
	FailFast     bool
	OnlyFailed   bool
	Progress     bool
	Summary      bool
	Strict       bool
	OpenFailures bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Processors:     DefaultProcessors,
		Flags:          Flags{Processors: DefaultProcessors},
	}
}

// ApplyFlags stores flags and applies their overrides
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Processors > 0 {
		c.Processors = flags.Processors
	}
}

// LoadEnv reads the project .env file, if any, and applies environment overrides.
// Variables already present in the environment win over the file.
func (c *Config) LoadEnv() {
	envPath := filepath.Join(c.ProjectPath, DefaultEnvFile)
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if v := os.Getenv(EnvProcessors); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Processors = n
		}
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputJSONDir = v
	}
	c.MySQLDSN = mysqlDSNFromEnv()
}

// mysqlDSNFromEnv returns FIBTEST_MYSQL_DSN, or a DSN assembled from the DB_* variables
// when FIBTEST_MYSQL opts in, or an empty string.
func mysqlDSNFromEnv() string {
	if dsn := os.Getenv(EnvMySQLDSN); dsn != "" {
		return dsn
	}
	if enabled, err := strconv.ParseBool(os.Getenv(EnvMySQLEnabled)); err != nil || !enabled {
		return ""
	}
	dbName := os.Getenv("DB_DATABASE")
	if dbName == "" {
		return ""
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}

	mc := mysql.NewConfig()
	mc.User = dbUser
	mc.Passwd = os.Getenv("DB_PASSWORD")
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(dbHost, dbPort)
	mc.DBName = dbName
	mc.ParseTime = true
	return mc.FormatDSN()
}

// GetOutputPath returns the absolute path to the output JSON file, so every command
// reads and writes the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
