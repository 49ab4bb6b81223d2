package config

const (
	// DefaultProjectPath is where verity.yaml and .env are looked up
	DefaultProjectPath = "."
	// DefaultConfigFile is the YAML file read from the project path
	DefaultConfigFile = "verity.yaml"
	// DefaultEnvFile is the dotenv file read from the project path
	DefaultEnvFile = ".env"
	// DefaultOutputJSONFile is the default JSON report file name
	DefaultOutputJSONFile = "verity-report.json"
	// DefaultOutputJSONDir is the default JSON report directory
	DefaultOutputJSONDir = "storage"
	// DefaultLogLevel keeps the engine quiet unless asked
	DefaultLogLevel = "off"
)

// Environment variables read after the YAML file.
const (
	EnvFilter          = "VERITY_FILTER"
	EnvSuite           = "VERITY_SUITE"
	EnvJSONReport      = "VERITY_JSON_REPORT"
	EnvOutputDir       = "VERITY_OUTPUT_DIR"
	EnvMetricsTextfile = "VERITY_METRICS_TEXTFILE"
	EnvLogLevel        = "VERITY_LOG_LEVEL"
	EnvProgress        = "VERITY_PROGRESS"
	EnvNoColor         = "VERITY_NO_COLOR"
)
