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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearch/gammareq/internal/pkg/errutil"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadToml(t *testing.T) {
	path := writeFile(t, "gammareq.toml", `
[global]
name = "gammareq"
level = "debug"

[request]
default_topn = 20
max_request_bytes = 1024
`)
	conf := &Config{}
	require.NoError(t, LoadConfig(conf, path))
	assert.Equal(t, "gammareq", conf.Global.Name)
	assert.Equal(t, "debug", conf.GetLevel())
	assert.Equal(t, DefaultLogFileNum, conf.GetLogFileNum())
	assert.Equal(t, int32(20), conf.Request.DefaultTopN)
	assert.Equal(t, int32(DefaultReqNum), conf.Request.DefaultReqNum)
	assert.Equal(t, 1024, conf.Request.MaxRequestBytes)
	assert.Equal(t, DefaultRankerType, conf.Request.RankerType)
}

func TestLoadYaml(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	path := writeFile(t, "gammareq.yaml", `
global:
  log: `+logDir+`
  log_file_num: 3
request:
  default_req_num: 4
`)
	conf := &Config{}
	require.NoError(t, LoadConfig(conf, path))
	assert.Equal(t, logDir, conf.GetLogDir())
	assert.Equal(t, 3, conf.GetLogFileNum())
	assert.Equal(t, DefaultLevel, conf.GetLevel())
	assert.Equal(t, int32(4), conf.Request.DefaultReqNum)
	assert.Equal(t, int32(DefaultTopN), conf.Request.DefaultTopN)
	assert.DirExists(t, logDir)
}

func TestLoadErrors(t *testing.T) {
	assert.Error(t, LoadConfig(&Config{}, ""))
	assert.Error(t, LoadConfig(&Config{}, writeFile(t, "bad.toml", "[global")))
	assert.Error(t, LoadConfig(&Config{}, writeFile(t, "bad.yml", "global: [")))
	assert.Error(t, LoadConfig(&Config{}, writeFile(t, "ranker.toml", "[request]\nranker_type = \"RRF\"\n")))
	assert.Error(t, InitConfig(filepath.Join(t.TempDir(), "missing.toml")))
}

func TestInitConfig(t *testing.T) {
	path := writeFile(t, "gammareq.toml", "[request]\ndefault_topn = 7\n")
	require.NoError(t, InitConfig(path))
	assert.Equal(t, int32(7), Conf().Request.DefaultTopN)
}

func TestDefault(t *testing.T) {
	conf := Default()
	assert.Equal(t, int32(DefaultTopN), conf.Request.DefaultTopN)
	assert.Equal(t, DefaultMaxRequestBytes, conf.Request.MaxRequestBytes)
}

func TestValidateCollectsErrors(t *testing.T) {
	conf := &Config{Request: &RequestCfg{DefaultTopN: -1, MaxRequestBytes: -1, RankerType: "RRF"}}
	err := conf.Validate()
	require.Error(t, err)

	merr, ok := err.(*errutil.MultiError)
	require.True(t, ok)
	assert.Len(t, merr.Errors(), 3)
	assert.Contains(t, err.Error(), "default_topn")
	assert.Contains(t, err.Error(), "ranker type")
}
