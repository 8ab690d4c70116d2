package featureflag

import (
	"strings"

	"github.com/sdwanlab/vmanage-unlock-cli/pkg/cmd/version"
	"github.com/spf13/viper"
)

func IsDev() bool {
	if viper.IsSet("feature.dev") {
		return viper.GetBool("feature.dev")
	} else {
		return strings.HasPrefix(version.Version, "dev")
	}
}

// Debug keeps full wrapped error traces in command output.
func Debug() bool {
	return viper.GetBool("feature.debug")
}

func LoadFeatureFlags(path string) error {
	viper.SetConfigName("config")
	viper.AddConfigPath("/etc/vmanage-unlock/")
	viper.AddConfigPath(path)
	viper.SetEnvPrefix("vmanage")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig() // do not need to fail if can't find config file

	return nil
}
