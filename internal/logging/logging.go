package logging

import (
	"io" // Writers
	"os" // Stdout

	"github.com/sirupsen/logrus"       // Structured logging
	"gopkg.in/natefinch/lumberjack.v2" // Log rotation
)

// Setup configures the global logrus logger. When file is set, output is
// also written to a rotating log file.
func Setup(level, file string) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(Writer(file))
}

// Writer returns stdout, teed to a rotating file when file is set
func Writer(file string) io.Writer {
	if file == "" {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   file, // Log file path
		MaxSize:    10,   // Megabytes per file
		MaxBackups: 10,   // Rotated files kept
		MaxAge:     7,    // Days kept
		LocalTime:  true,
	})
}
