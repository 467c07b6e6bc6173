package config

import "github.com/spf13/viper"

// setDefaults registers the default value for every key so a fresh
// config file is complete.
func setDefaults(v *viper.Viper) {
	v.SetDefault("candidates.page_size", 9)
	v.SetDefault("schema.active_id", "")
	v.SetDefault("schema.reset_on_switch", false)
	v.SetDefault("color_scheme.enabled", false)
	v.SetDefault("color_scheme.name", "")
	v.SetDefault("deployment.shared_data_dir", "")
	v.SetDefault("deployment.user_data_dir", "")
	v.SetDefault("deployment.override_user_data", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Default returns a configuration snapshot with all defaults applied.
func Default() *Config {
	cfg := &Config{
		Candidates: CandidatesConfig{PageSize: 9},
		Logging:    LoggingConfig{Level: "info", Format: "console"},
	}
	applyDefaultPaths(cfg)
	return cfg
}
