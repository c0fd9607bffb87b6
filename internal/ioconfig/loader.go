package ioconfig

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
)

// Load reads config.yaml from the user's config directory, applies
// BIOHUB_* environment variable overrides, and returns a validated
// Config. Fields missing from the file keep their default values.
func Load(homeDir string) (*config.Config, error) {
	cfgPath := config.ConfigFilePath(homeDir)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, ReadFileError(cfgPath, err)
	}

	var fileCfg config.Config
	if err := v.Unmarshal(&fileCfg); err != nil {
		return nil, ReadFileError(cfgPath, err)
	}

	res := config.New()
	res.Update(fileCfg.ToOptions())
	res.Update([]config.Option{config.OptHomeDir(homeDir)})

	return res, nil
}

func initEnvVars(v *viper.Viper) {
	// Bind variables one by one so the allowed overrides stay visible.
	// The list matches the persistent fields of config.ToOptions().
	v.SetEnvPrefix("BIOHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("database.host", "BIOHUB_DATABASE_HOST")
	v.BindEnv("database.port", "BIOHUB_DATABASE_PORT")
	v.BindEnv("database.user", "BIOHUB_DATABASE_USER")
	v.BindEnv("database.password", "BIOHUB_DATABASE_PASSWORD")
	v.BindEnv("database.database", "BIOHUB_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "BIOHUB_DATABASE_SSL_MODE")

	v.BindEnv("blob.store", "BIOHUB_BLOB_STORE")
	v.BindEnv("blob.dir", "BIOHUB_BLOB_DIR")
	v.BindEnv("blob.url", "BIOHUB_BLOB_URL")
	v.BindEnv("blob.token", "BIOHUB_BLOB_TOKEN")

	v.BindEnv("search.url", "BIOHUB_SEARCH_URL")
	v.BindEnv("search.index", "BIOHUB_SEARCH_INDEX")

	v.BindEnv("log.level", "BIOHUB_LOG_LEVEL")
	v.BindEnv("log.format", "BIOHUB_LOG_FORMAT")
	v.BindEnv("log.destination", "BIOHUB_LOG_DESTINATION")

	v.BindEnv("system_user_id", "BIOHUB_SYSTEM_USER_ID")
	v.BindEnv("jobs_number", "BIOHUB_JOBS_NUMBER")

	v.AutomaticEnv()
}
