package main

// Environment variables naming the input files.
const (
	envIkmLocation    = "ENV_SECRET_IKM_LOCATION"
	envPepperLocation = "ENV_SECRET_PEPPER_LOCATION"
	envSaltLocation   = "ENV_PUBLIC_SALT_LOCATION"
	envInfoLocation   = "ENV_PUBLIC_INFO_LOCATION"
)

// Config is read from the environment. Missing locations are reported when the
// corresponding source is read, so the error names the variable.
type Config struct {
	IkmLocation    string `env:"ENV_SECRET_IKM_LOCATION"`
	PepperLocation string `env:"ENV_SECRET_PEPPER_LOCATION"`
	SaltLocation   string `env:"ENV_PUBLIC_SALT_LOCATION"`
	InfoLocation   string `env:"ENV_PUBLIC_INFO_LOCATION"`

	MaxReadBytes    int64 `env:"GENKEY_MAX_READ_BYTES" envDefault:"1048576"` // 1MB
	OutputByteCount int   `env:"GENKEY_OUTPUT_BYTE_COUNT" envDefault:"32"`

	LogLevel  string `env:"GENKEY_LOG_LEVEL" envDefault:"error"`
	LogFormat string `env:"GENKEY_LOG_FORMAT" envDefault:"text"` // text or json
}
