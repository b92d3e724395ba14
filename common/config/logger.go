package config

import "github.com/ykhdr/dict-crack/common/logging"

type hasLogLevel interface {
	GetLogLevel() string
}

func setupLogger(cfg any) {
	var logLevel logging.Level
	logCfg, ok := cfg.(hasLogLevel)
	if !ok {
		logLevel = logging.InfoLevel
	} else {
		logLevel = logging.ParseLevel(logCfg.GetLogLevel())
	}
	logging.Setup(logLevel)
}
