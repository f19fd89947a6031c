package config

import (
	"flag"
	"github.com/fernandosanchezjr/sungod/utils"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"io/ioutil"
	"os"
	"path"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "specify config file (default <home-folder>/config.yaml)")
}

func Path() string {
	if configPath != "" {
		return configPath
	}
	return path.Join(utils.GetHomeFolder(), "config.yaml")
}

func LoadConfig() (*Config, error) {
	return LoadConfigFile(Path())
}

// LoadConfigFile returns Default() overlaid with the file at filePath. A missing
// file is not an error.
func LoadConfigFile(filePath string) (*Config, error) {
	c := Default()
	var data []byte
	var err error
	log.WithField("path", filePath).Debug("Loading config")
	if data, err = ioutil.ReadFile(filePath); err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", filePath).Debug("Config not found, using defaults")
			return c, nil
		}
		return nil, err
	}
	if err = yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
