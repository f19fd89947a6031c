package logging

import (
	"github.com/fernandosanchezjr/sungod/utils"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
)

const LogPath = "logs"

var logFile *os.File

func getLogFile() *os.File {
	logFolder := utils.GetSubFolder(LogPath)
	f, err := os.OpenFile(path.Join(logFolder, "log.out"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		logrus.Fatal("Error opening log file:", err)
		return nil
	} else {
		return f
	}
}

func exitHandler() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// SetupLogger logs to stderr, since stdout may carry generated data, and
// optionally to <home-folder>/logs/log.out.
func SetupLogger(level string, toFile bool) {
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	logrus.RegisterExitHandler(exitHandler)
	if parsed, err := logrus.ParseLevel(level); err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.WithField("level", level).Warn("Unknown log level, using info")
	} else {
		logrus.SetLevel(parsed)
	}
	if toFile {
		logFile = getLogFile()
		logrus.SetOutput(io.MultiWriter(logFile, os.Stderr))
	} else {
		logrus.SetOutput(os.Stderr)
	}
}
