package assist

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _assistconfig{}
)

// _assistconfig is a "hidden" struct, just use `assistConfig`
type _assistconfig struct {
	outputDir string
}

// assistConfig returns the package configuration. It is loaded once, from the
// conf.toml in the directory named by `ASSIST_CONFIG` when that variable is
// set, and falls back to the working directory otherwise.
func assistConfig() _assistconfig {
	if cfgLoaded {
		return config
	}
	cfgLoaded = true
	confPath := os.Getenv("ASSIST_CONFIG")
	if confPath == "" {
		config = _assistconfig{outputDir: "."}
		return config
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}
	outputDir := viper.GetString("general.output_path")
	if outputDir == "" {
		outputDir = "."
	}
	config = _assistconfig{outputDir: outputDir}
	return config
}
