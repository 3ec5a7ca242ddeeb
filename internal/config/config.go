// Copyright 2019 The Vearch Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/vearch/gammareq/internal/pkg/errutil"
	"gopkg.in/yaml.v3"
)

var single *Config

// Conf return the single instance of config
func Conf() *Config {
	return single
}

var (
	versionOnce  sync.Once
	buildVersion = "0.0"
	buildTime    = "0"
	commitID     = "xxxxx"
)

// SetConfigVersion set the version, time and commit id of build
func SetConfigVersion(bv, bt, ci string) {
	versionOnce.Do(func() {
		buildVersion = bv
		buildTime = bt
		commitID = ci
	})
}

func GetBuildVersion() string {
	return buildVersion
}
func GetBuildTime() string {
	return buildTime
}
func GetCommitID() string {
	return commitID
}

const (
	DefaultTopN            = 50
	DefaultReqNum          = 1
	DefaultMaxRequestBytes = 64 << 20
	DefaultRankerType      = "WeightedRanker"
	DefaultLevel           = "info"
	DefaultLogFileNum      = 10
	DefaultLogFileSize     = 256
)

type Config struct {
	Global  *GlobalCfg  `toml:"global,omitempty" yaml:"global" json:"global"`
	Request *RequestCfg `toml:"request,omitempty" yaml:"request" json:"request"`
}

func (c *Config) GetLogDir() string {
	return c.Global.Log
}

// make sure it not use in loop
func (c *Config) GetLevel() string {
	return c.Global.Level
}

func (c *Config) GetLogFileNum() int {
	return c.Global.LogFileNum
}

func (c *Config) GetLogFileSize() int {
	return c.Global.LogFileSize
}

type Base struct {
	Log         string `toml:"log,omitempty" yaml:"log" json:"log"`
	Level       string `toml:"level,omitempty" yaml:"level" json:"level"`
	LogFileNum  int    `toml:"log_file_num,omitempty" yaml:"log_file_num" json:"log_file_num"`
	LogFileSize int    `toml:"log_file_size,omitempty" yaml:"log_file_size" json:"log_file_size"`
}

type GlobalCfg struct {
	Base `yaml:",inline"`

	Name string `toml:"name,omitempty" yaml:"name" json:"name"`
}

// RequestCfg holds the defaults applied when building search requests.
type RequestCfg struct {
	DefaultTopN     int32  `toml:"default_topn" yaml:"default_topn" json:"default_topn"`
	DefaultReqNum   int32  `toml:"default_req_num" yaml:"default_req_num" json:"default_req_num"`
	MaxRequestBytes int    `toml:"max_request_bytes" yaml:"max_request_bytes" json:"max_request_bytes"`
	RankerType      string `toml:"ranker_type" yaml:"ranker_type" json:"ranker_type"`
}

// Default returns a config with every default filled.
func Default() *Config {
	c := &Config{}
	_ = c.Validate()
	return c
}

func InitConfig(path string) error {
	conf := &Config{}
	if err := LoadConfig(conf, path); err != nil {
		return err
	}
	single = conf
	return nil
}

// LoadConfig decodes path into conf. Files ending in .yaml or .yml are read
// as YAML, everything else as TOML.
func LoadConfig(conf *Config, path string) error {
	if len(path) == 0 {
		return errors.New("configPath file is empty")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "read config [%s]", path)
		}
		if err := yaml.Unmarshal(data, conf); err != nil {
			return errors.Wrapf(err, "decode yaml config [%s]", path)
		}
	default:
		if _, err := toml.DecodeFile(path, conf); err != nil {
			return errors.Wrapf(err, "decode toml config [%s]", path)
		}
	}
	return conf.Validate()
}

// Validate fills defaults and rejects values the codec cannot use.
func (config *Config) Validate() error {
	if config.Global == nil {
		config.Global = &GlobalCfg{}
	}
	if config.Global.Level == "" {
		config.Global.Level = DefaultLevel
	}
	if config.Global.LogFileNum == 0 {
		config.Global.LogFileNum = DefaultLogFileNum
	}
	if config.Global.LogFileSize == 0 {
		config.Global.LogFileSize = DefaultLogFileSize
	}

	if config.Request == nil {
		config.Request = &RequestCfg{}
	}
	r := config.Request
	if r.DefaultTopN == 0 {
		r.DefaultTopN = DefaultTopN
	}
	if r.DefaultReqNum == 0 {
		r.DefaultReqNum = DefaultReqNum
	}
	if r.MaxRequestBytes == 0 {
		r.MaxRequestBytes = DefaultMaxRequestBytes
	}
	if r.RankerType == "" {
		r.RankerType = DefaultRankerType
	}

	merr := &errutil.MultiError{}
	if r.DefaultTopN < 0 {
		merr.Append(fmt.Errorf("default_topn need gt 0, got %d", r.DefaultTopN))
	}
	if r.DefaultReqNum < 0 {
		merr.Append(fmt.Errorf("default_req_num need gt 0, got %d", r.DefaultReqNum))
	}
	if r.MaxRequestBytes < 0 {
		merr.Append(fmt.Errorf("max_request_bytes need gt 0, got %d", r.MaxRequestBytes))
	}
	if r.RankerType != DefaultRankerType {
		merr.Append(fmt.Errorf("unsupport ranker type: %s, now only support %s", r.RankerType, DefaultRankerType))
	}
	if config.Global.Log != "" {
		if err := os.MkdirAll(config.GetLogDir(), os.ModePerm); err != nil {
			merr.Append(errors.Wrapf(err, "create log dir [%s]", config.GetLogDir()))
		}
	}
	return merr.ErrorOrNil()
}
