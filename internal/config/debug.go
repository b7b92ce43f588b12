package config

import "os"

func IsDebug() bool {
	return os.Getenv("MODELBENCH_DEBUG") == "1"
}
