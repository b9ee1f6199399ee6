package cmd

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vippsas/sqllex"
	"github.com/vippsas/sqllex/sqlparser/mysql"
)

// Config is sqllex.yaml:
//
//	server_version: 80036
//	sql_mode: ANSI_QUOTES,NO_BACKSLASH_ESCAPES
//	charset: utf8mb4
//	body_utf8: true
//	concurrency: 4
type Config struct {
	sqllex.Options `yaml:",inline"`
}

const configFilename = "sqllex.yaml"

// LoadConfig reads sqllex.yaml from --directory, if there is one, and
// applies the flags on top.
func LoadConfig() (Config, error) {
	var result Config

	filename := path.Join(directory, configFilename)
	yamlFile, err := os.ReadFile(filename)
	switch {
	case os.IsNotExist(err):
		logrus.WithField("file", filename).Debug("no config file, using defaults")
	case err != nil:
		return Config{}, errors.Wrapf(err, "reading %s", filename)
	default:
		if err := yaml.Unmarshal(yamlFile, &result); err != nil {
			return Config{}, errors.Wrapf(err, "parsing %s", filename)
		}
	}

	if serverVersion != 0 {
		result.ServerVersion = serverVersion
	}
	if sqlMode != "" {
		mode, err := mysql.ParseSQLMode(sqlMode)
		if err != nil {
			return Config{}, errors.Wrap(err, "--sql-mode")
		}
		result.SQLMode = mode
	}
	if charsetName != "" {
		result.Charset = charsetName
	}
	result.Logger = logrus.StandardLogger()
	return result, nil
}
