package config

import (
	"os"
	"strconv"
	"time"
)

type EnvVarName string // should be caps with underscore

const (
	adminPassword  EnvVarName = "PW"
	adminUsername  EnvVarName = "VMANAGE_USERNAME"
	podsFilePath   EnvVarName = "VMANAGE_PODS_FILE"
	vmanagePort    EnvVarName = "VMANAGE_PORT"
	requestTimeout EnvVarName = "VMANAGE_REQUEST_TIMEOUT"
	tlsVerify      EnvVarName = "VMANAGE_TLS_VERIFY"
	sentryURL      EnvVarName = "DEFAULT_SENTRY_URL"
	debugHTTP      EnvVarName = "DEBUG_HTTP"
)

type ConstantsConfig struct{}

func NewConstants() *ConstantsConfig {
	return &ConstantsConfig{}
}

// GetAdminPassword has no default on purpose; an empty string means the
// operator did not export PW.
func (c ConstantsConfig) GetAdminPassword() string {
	return getEnvOrDefault(adminPassword, "")
}

func (c ConstantsConfig) GetAdminUsername() string {
	return getEnvOrDefault(adminUsername, "admin")
}

func (c ConstantsConfig) GetPodsFilePath() string {
	return getEnvOrDefault(podsFilePath, "pods.yaml")
}

func (c ConstantsConfig) GetVManagePort() string {
	return getEnvOrDefault(vmanagePort, "443")
}

// GetRequestTimeout is the per-request deadline for controller calls,
// in seconds. Bad or non-positive values fall back to the default.
func (c ConstantsConfig) GetRequestTimeout() time.Duration {
	seconds, err := strconv.Atoi(getEnvOrDefault(requestTimeout, "30"))
	if err != nil || seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

// GetTLSVerify defaults to off; lab pods serve self-signed certs.
func (c ConstantsConfig) GetTLSVerify() bool {
	return getEnvOrDefault(tlsVerify, "") != ""
}

func (c ConstantsConfig) GetSentryURL() string {
	return getEnvOrDefault(sentryURL, "")
}

func (c ConstantsConfig) GetDebugHTTP() bool {
	return getEnvOrDefault(debugHTTP, "") != ""
}

func getEnvOrDefault(envVarName EnvVarName, defaultVal string) string {
	val := os.Getenv(string(envVarName))
	if val == "" {
		return defaultVal
	}
	return val
}

var GlobalConfig = NewConstants()
