package config

const (
	// DefaultProjectPath is the directory holding .env and the results directory
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultProcessors runs tests one after another
	DefaultProcessors = 1
	// DefaultEnvFile is loaded from the project path when present
	DefaultEnvFile = ".env"
)

// Environment variables read by LoadEnv
const (
	EnvProcessors = "FIBTEST_PROCESSORS"
	EnvOutputDir  = "FIBTEST_OUTPUT_DIR"
	EnvMySQLDSN   = "FIBTEST_MYSQL_DSN"

	// EnvMySQLEnabled must be true for the DB_* variables to configure the MySQL sink
	EnvMySQLEnabled = "FIBTEST_MYSQL"
)
