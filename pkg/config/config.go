package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readability
var (
	DB                 string   // connection string for the database
	APIKey             string   // static API key expected in the X-API-Key header (empty disables the check)
	HTTPServerAddr     string   // listen addr for the REST server
	CORSOrigins        []string // allowed origins for browser clients
	WaitForServices    string   // duration to wait for other services to be ready
	LogLevel           string   // sets the log level (zap log level values)
	SQLLogLevel        string   // sets the log level for sql subsystem
	LogFormat          string   // text vs json
	LogFilter          string   // zapfilter rules applied to the json logger
	MigrationSourceURL string   // location of migration files
	EnableTelemetry    bool     // enable telemetry
	TelemetryEndpoint  string   // endpoint for telemetry
	ProfilingPort      int      // port for profiling
)
