package constants

const (
	AppName = "yomogi"

	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "YOMOGI"
	DotEnvFile   = ".env"
)
