package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type PanelConfig struct {
	ListenAddr string
	APIBaseURL string
	APITimeout time.Duration
}

var instance *PanelConfig
var once sync.Once

func GetPanelConfig() *PanelConfig {
	once.Do(func() {
		instance = &PanelConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Infof("no .env file loaded: %s", err.Error())
		}

		instance.ListenAddr = getEnv("LISTEN_ADDR", ":8080")

		instance.APIBaseURL = getEnv("SCHEDULE_API_URL", "")
		if instance.APIBaseURL == "" {
			logrus.Fatal("could not get schedule api url")
		}

		timeoutSec := getEnvAsInt("API_TIMEOUT_SECONDS", 15)
		instance.APITimeout = time.Duration(timeoutSec) * time.Second
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
