package config

import "os"

func IsDebug() bool {
	return os.Getenv("RECAPD_DEBUG") == "1"
}
