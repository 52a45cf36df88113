package main

import (
	"context"
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/prebid/comscore-destination/config"
	"github.com/spf13/viper"
)

// Rev holds binary revision string
// Set manually at build time using:
//
//	go build -ldflags "-X main.Rev=`git rev-parse --short HEAD`"
var Rev string

func main() {
	flag.Parse() // required for glog flags and testing package flags
	defer glog.Flush()

	cfg, err := loadConfig()
	if err != nil {
		glog.Exitf("Configuration could not be loaded or did not pass validation: %v", err)
	}

	glog.Infof("comscore-destination replay, revision %q", Rev)
	if err := run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		glog.Exitf("comscore-destination replay failed: %v", err)
	}
}

const configFileName = "comscore"

func loadConfig() (*config.Configuration, error) {
	v := viper.New()
	config.SetupViper(v, configFileName)
	return config.New(v)
}
