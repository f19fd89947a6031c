package logging

import (
	"github.com/fernandosanchezjr/sungod/utils"
	"github.com/sirupsen/logrus"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	SetupLogger("debug", false)
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Fatal("level not applied", logrus.GetLevel())
	}
	SetupLogger("loud", false)
	if logrus.GetLevel() != logrus.InfoLevel {
		t.Fatal("unknown level did not fall back to info", logrus.GetLevel())
	}
}

func TestSetupLogger_File(t *testing.T) {
	utils.SetHomeFolder(t.TempDir())
	defer utils.SetHomeFolder(utils.DefaultHomeFolder)
	SetupLogger("info", true)
	defer func() {
		exitHandler()
		logFile = nil
		logrus.SetOutput(os.Stderr)
	}()
	logrus.WithField("seed", 1).Info("Logged to file")
	data, err := ioutil.ReadFile(path.Join(utils.GetSubFolder(LogPath), "log.out"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Logged to file") {
		t.Fatal("log file missing entry:", string(data))
	}
}
