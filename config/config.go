package config

import (
	"errors"
	"flag"
	"net"
	"regexp"
	"strconv"
)

const DefaultOutput = "answers.json"

type Config struct {
	Addr     string
	FormPath string
	Output   string
	Debug    bool
}

func ParseFlags() (cfg Config, err error) {
	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", 8081, "listen port number (default 8081)")
	flag.StringVar(&cfg.FormPath, "config", "form.yaml", "path to the form definition file (default form.yaml)")
	flag.StringVar(&cfg.Output, "output", DefaultOutput, "path to the answers JSON file (default "+DefaultOutput+")")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))

	if cfg.FormPath == "" {
		err = errors.New("missing parameter -config")
	} else if cfg.Output == "" {
		err = errors.New("missing parameter -output")
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
