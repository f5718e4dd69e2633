// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/gogama/jsonx"
	"github.com/gogama/jsonx/callback"
	"github.com/gogama/jsonx/doer"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// TransportNet selects a GoLang standard library HTTP client.
	TransportNet = "net"
	// TransportResty selects a go-resty client.
	TransportResty = "resty"
)

// Config describes how to build a jsonx Client.
type Config struct {
	// Transport selects the HTTP doer: TransportNet or TransportResty.
	Transport string `mapstructure:"transport" validate:"oneof=net resty"`
	// Timeout is the doer's overall request timeout. Zero means none.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
	// HTTP2 enables HTTP/2 over TLS.
	HTTP2 bool `mapstructure:"http2"`
	// CallbackQueueSize sizes the client's callback queue.
	CallbackQueueSize int `mapstructure:"callback_queue_size" validate:"gte=1"`
	// Log configures the client's logger.
	Log Log `mapstructure:"log"`
}

// Log configures logging.
type Log struct {
	Level       string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Development bool   `mapstructure:"development"`
}

// Default returns the configuration used for keys missing from a
// configuration file.
func Default() Config {
	return Config{
		Transport:         TransportNet,
		CallbackQueueSize: callback.DefaultQueueSize,
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the configuration file at path, fills in defaults for
// missing keys, and validates the result. The file format is chosen
// from the file extension.
func Load(path string) (*Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("transport", d.Transport)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("http2", d.HTTP2)
	v.SetDefault("callback_queue_size", d.CallbackQueueSize)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.development", d.Log.Development)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("jsonx/config: read %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("jsonx/config: unmarshal %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		})
	})
	return validate
}

// Validate checks cfg against the constraints in its struct tags.
func (cfg *Config) Validate() error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("jsonx/config: invalid configuration: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: failed %q", strings.TrimPrefix(e.Namespace(), "Config."), e.Tag()))
	}

	return fmt.Errorf("jsonx/config: invalid configuration: %s", strings.Join(messages, "; "))
}

// NewLogger builds a zap logger for cfg. A development logger panics on
// DPanic, so an HTTP doer that returns neither a response nor an error
// is reported loudly during development.
func NewLogger(cfg Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("jsonx/config: %w", err)
	}

	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// NewDoer builds the HTTP doer selected by cfg.
func NewDoer(cfg *Config, logger *zap.Logger) (jsonx.HTTPDoer, error) {
	hc, err := doer.NewHTTPClient(doer.HTTPOptions{
		Timeout: cfg.Timeout,
		HTTP2:   cfg.HTTP2,
	})
	if err != nil {
		return nil, err
	}

	switch cfg.Transport {
	case TransportNet, "":
		return hc, nil
	case TransportResty:
		rc := resty.NewWithClient(hc)
		if logger != nil {
			rc.SetLogger(logger.Sugar())
		}
		return doer.NewResty(rc), nil
	default:
		return nil, fmt.Errorf("jsonx/config: unknown transport %q", cfg.Transport)
	}
}

// NewClient validates cfg and builds a jsonx Client from it, with its
// own HTTP doer, logger and callback queue.
//
// The client's Callbacks field holds a *callback.Queue which the caller
// owns. Close it once the client is no longer used.
func NewClient(cfg *Config) (*jsonx.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	d, err := NewDoer(cfg, logger)
	if err != nil {
		return nil, err
	}

	q := callback.NewQueue(cfg.CallbackQueueSize)
	q.Logger = logger

	return &jsonx.Client{
		HTTPDoer:  d,
		Callbacks: q,
		Logger:    logger,
	}, nil
}
