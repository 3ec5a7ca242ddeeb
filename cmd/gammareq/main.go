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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/vearch/gammareq/internal/config"
	"github.com/vearch/gammareq/internal/engine/sdk/go/gamma"
	"github.com/vearch/gammareq/internal/entity"
	"github.com/vearch/gammareq/internal/entity/request"
	"github.com/vearch/gammareq/internal/pkg/cbbytes"
	"github.com/vearch/gammareq/internal/pkg/codec"
	"github.com/vearch/gammareq/internal/pkg/errors"
	"github.com/vearch/gammareq/internal/pkg/fileutil"
	"github.com/vearch/gammareq/internal/pkg/log"
	"github.com/vearch/gammareq/internal/pkg/metrics"
	"github.com/vearch/gammareq/internal/pkg/vearchlog"
	"github.com/vearch/gammareq/internal/pkg/vjson"
	"github.com/vearch/gammareq/internal/router/document"
)

var (
	BuildVersion = "0.0"
	BuildTime    = "0"
	CommitID     = "xxxxx"
)

const (
	encodeTag  = "encode"
	decodeTag  = "decode"
	inspectTag = "inspect"
	moduleName = "GAMMAREQ"
)

const usage = `usage: gammareq <command> [flags]

commands:
  encode   build a request buffer from a search body and a space schema,
           or from a decode dump with --view
  decode   dump a request buffer as json or msgpack
  inspect  print size, fingerprint and counts of a request buffer
`

func main() {
	config.SetConfigVersion(BuildVersion, BuildTime, CommitID)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

// report prints err with its engine status and returns the exit code, which
// is the status code value.
func report(w io.Writer, err error) int {
	code := errors.StatusOf(err)
	fmt.Fprintf(w, "[%s] %v\n", code, err)
	return int(code)
}

type options struct {
	confPath  string
	level     string
	in        string
	out       string
	search    string
	space     string
	format    string
	view      string
	metrics   string
	toConsole bool
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", usage)
	}
	cmd := args[0]

	opts := &options{}
	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	fs.StringVar(&opts.confPath, "conf", "", "config file, toml or yaml")
	fs.StringVar(&opts.level, "level", "", "log level, overrides the config")
	fs.BoolVar(&opts.toConsole, "console", false, "also log to stderr when a log dir is set")
	fs.StringVar(&opts.metrics, "metrics-file", "", "write codec metrics in prometheus text format to this file")
	switch cmd {
	case encodeTag:
		fs.StringVar(&opts.search, "search", "", "search body json file")
		fs.StringVar(&opts.space, "space", "", "space schema json file")
		fs.StringVar(&opts.view, "view", "", "decode dump file to encode instead of --search and --space")
		fs.StringVarP(&opts.format, "format", "f", "json", "format of --view, json or msgpack")
		fs.StringVarP(&opts.out, "out", "o", "", "buffer output file")
	case decodeTag:
		fs.StringVarP(&opts.in, "in", "i", "", "buffer input file")
		fs.StringVarP(&opts.format, "format", "f", "json", "dump format, json or msgpack")
		fs.StringVarP(&opts.out, "out", "o", "", "dump output file, stdout when empty")
	case inspectTag:
		fs.StringVarP(&opts.in, "in", "i", "", "buffer input file")
	default:
		return fmt.Errorf("not found command: %s it only support [%s, %s, %s]\n%s", cmd, encodeTag, decodeTag, inspectTag, usage)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	conf, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if err := setupLog(conf, opts); err != nil {
		return err
	}
	defer log.Flush()
	log.Debugf("gammareq %s version:[%s] commitID:[%s]", cmd, config.GetBuildVersion(), config.GetCommitID())

	switch cmd {
	case encodeTag:
		err = encode(conf, opts)
	case decodeTag:
		err = decode(conf, opts, stdout)
	default:
		err = inspect(conf, opts, stdout)
	}
	if opts.metrics != "" {
		if werr := writeMetrics(opts.metrics); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

func writeMetrics(path string) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.Collectors()...)
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return errors.StorageError("write metrics "+path, err)
	}
	return nil
}

func loadConfig(opts *options) (*config.Config, error) {
	if opts.confPath == "" {
		return config.Default(), nil
	}
	if err := config.InitConfig(opts.confPath); err != nil {
		return nil, err
	}
	return config.Conf(), nil
}

func setupLog(conf *config.Config, opts *options) error {
	level := conf.GetLevel()
	if opts.level != "" {
		level = opts.level
	}
	if conf.GetLogDir() == "" {
		return nil
	}
	l, err := vearchlog.NewVearchLogWithOptions(conf.GetLogDir(), moduleName, level, opts.toConsole, vearchlog.Options{
		MaxBackups: conf.GetLogFileNum(),
		MaxSizeMB:  conf.GetLogFileSize(),
		MaxAgeDays: vearchlog.DefaultOptions.MaxAgeDays,
	})
	if err != nil {
		return err
	}
	log.Regist(l)
	return nil
}

func encode(conf *config.Config, opts *options) error {
	if opts.out == "" || (opts.view == "" && (opts.search == "" || opts.space == "")) {
		return errors.MissingParam("--out and either --view or --search and --space")
	}

	var (
		req *gamma.Request
		err error
	)
	if opts.view != "" {
		req, err = requestFromView(opts)
	} else {
		req, err = requestFromSearch(conf, opts)
	}
	if err != nil {
		return err
	}
	buffer, err := req.Serialize()
	if err != nil {
		return err
	}
	if len(buffer) > conf.Request.MaxRequestBytes {
		return errors.Serialization("request buffer %s exceeds max_request_bytes %s",
			cbbytes.FormatIByte(uint64(len(buffer))), cbbytes.FormatIByte(uint64(conf.Request.MaxRequestBytes)))
	}
	if err := fileutil.WriteFileAtomic(opts.out, buffer, 0o644); err != nil {
		return errors.StorageError("write "+opts.out, err)
	}
	log.Infof("encode request to [%s] size:[%s] fingerprint:[%016x]", opts.out, cbbytes.FormatIByte(uint64(len(buffer))), gamma.Fingerprint(buffer))
	return nil
}

func requestFromSearch(conf *config.Config, opts *options) (*gamma.Request, error) {
	searchDoc := &request.SearchDocumentRequest{}
	if err := readJSON(opts.search, searchDoc); err != nil {
		return nil, err
	}
	space := &entity.Space{}
	if err := readJSON(opts.space, space); err != nil {
		return nil, err
	}
	return document.SearchToRequest(searchDoc, space, conf.Request)
}

func requestFromView(opts *options) (*gamma.Request, error) {
	c, err := codec.ByName(opts.format)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(opts.view)
	if err != nil {
		return nil, errors.StorageError("read "+opts.view, err)
	}
	view := &gamma.RequestView{}
	if err := c.Unmarshal(data, view); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidParam, err, "parse %s", opts.view)
	}
	return view.ToRequest()
}

func decode(conf *config.Config, opts *options, stdout io.Writer) error {
	c, err := codec.ByName(opts.format)
	if err != nil {
		return err
	}
	req, _, err := readRequest(conf, opts.in)
	if err != nil {
		return err
	}
	data, err := c.Marshal(req.View())
	if err != nil {
		return err
	}
	if opts.out == "" {
		_, err = stdout.Write(append(data, '\n'))
		return err
	}
	if err := fileutil.WriteFileAtomic(opts.out, data, 0o644); err != nil {
		return errors.StorageError("write "+opts.out, err)
	}
	return nil
}

func inspect(conf *config.Config, opts *options, stdout io.Writer) error {
	req, buffer, err := readRequest(conf, opts.in)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "size:              %s\n", cbbytes.FormatIByte(uint64(len(buffer))))
	fmt.Fprintf(&b, "fingerprint:       %016x\n", gamma.Fingerprint(buffer))
	fmt.Fprintf(&b, "req_num:           %d\n", req.ReqNum())
	fmt.Fprintf(&b, "topn:              %d\n", req.TopN())
	fmt.Fprintf(&b, "vec_fields:        %d\n", len(req.VecFields()))
	fmt.Fprintf(&b, "fields:            %d\n", len(req.Fields()))
	fmt.Fprintf(&b, "range_filters:     %d\n", len(req.RangeFilters()))
	fmt.Fprintf(&b, "term_filters:      %d\n", len(req.TermFilters()))
	fmt.Fprintf(&b, "multi_vector_rank: %d\n", req.MultiVectorRank())
	if ranker, ok := req.Ranker().(*gamma.WeightedRanker); ok && ranker != nil {
		fmt.Fprintf(&b, "ranker:            %s %v\n", ranker.RawStr(), ranker.Weights())
	}
	_, err = io.WriteString(stdout, b.String())
	return err
}

func readRequest(conf *config.Config, path string) (*gamma.Request, []byte, error) {
	if path == "" {
		return nil, nil, errors.MissingParam("--in")
	}
	buffer, err := fileutil.ReadFileLimit(path, int64(conf.Request.MaxRequestBytes))
	var tooLarge *fileutil.TooLargeError
	if pkgerrors.As(err, &tooLarge) {
		return nil, nil, errors.Newf(errors.ErrInvalidParam, "request file %s exceeds max_request_bytes %s",
			cbbytes.FormatIByte(uint64(tooLarge.Size)), cbbytes.FormatIByte(uint64(tooLarge.Limit)))
	}
	if err != nil {
		return nil, nil, errors.StorageError("read "+path, err)
	}
	req := &gamma.Request{}
	if err := req.DeSerialize(buffer); err != nil {
		return nil, nil, err
	}
	return req, buffer, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.StorageError("read "+path, err)
	}
	if err := vjson.Unmarshal(data, v); err != nil {
		return errors.Wrapf(errors.ErrInvalidParam, err, "parse %s", path)
	}
	return nil
}
