package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"

	"github.com/geoirb/go-esign/internal/connection"
	"github.com/geoirb/go-esign/internal/extract"
	"github.com/geoirb/go-esign/internal/kafka"
	"github.com/geoirb/go-esign/internal/parser"
	"github.com/geoirb/go-esign/internal/path"
	"github.com/geoirb/go-esign/internal/qrcode"
	"github.com/geoirb/go-esign/internal/response"
	"github.com/geoirb/go-esign/internal/template"
	"github.com/geoirb/go-esign/internal/template/mq"
)

type configuration struct {
	Site        string        `envconfig:"SITE" default:"https://rightsignature.com"`
	APIToken    string        `envconfig:"API_TOKEN" required:"true"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	MQHost string `envconfig:"MQ_HOST" default:"localhost"`
	MQPort int    `envconfig:"MQ_PORT" default:"9093"`

	RequestTopic  string `envconfig:"REQUEST_TOPIC" default:"esign.request"`
	ResponseTopic string `envconfig:"RESPONSE_TOPIC" default:"esign.response"`

	QRCodeSize int  `envconfig:"QR_CODE_SIZE" default:"256"`
	Debug      bool `envconfig:"DEBUG" default:"false"`
}

const (
	prefixCfg   = ""
	serviceName = "esign"
)

func main() {
	logger := log.NewJSONLogger(log.NewSyncWriter(os.Stdout))
	logger = log.WithPrefix(logger, "service", serviceName)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	var cfg configuration
	if err := envconfig.Process(prefixCfg, &cfg); err != nil {
		level.Error(logger).Log("msg", "configuration", "err", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	level.Info(logger).Log("msg", "initialization", "site", cfg.Site)

	conn, err := connection.New(
		connection.Config{
			Site:     cfg.Site,
			APIToken: cfg.APIToken,
			Timeout:  cfg.HTTPTimeout,
		},
		logger,
	)
	if err != nil {
		level.Error(logger).Log("msg", "connection init", "err", err)
		os.Exit(1)
	}

	path, err := path.NewBuilder(cfg.Site)
	if err != nil {
		level.Error(logger).Log("msg", "path init", "err", err)
		os.Exit(1)
	}

	parser, err := parser.New()
	if err != nil {
		level.Error(logger).Log("msg", "parser init", "err", err)
		os.Exit(1)
	}

	extractor, err := extract.New()
	if err != nil {
		level.Error(logger).Log("msg", "extractor init", "err", err)
		os.Exit(1)
	}

	svc := template.NewService(
		conn,
		path,
		parser,
		extractor,
		logger,
	)

	address := fmt.Sprintf("%s:%d", cfg.MQHost, cfg.MQPort)
	mqKafka, err := kafka.NewMessageQueue(
		[]string{address},
		logger,
	)
	if err != nil {
		level.Error(logger).Log("msg", "kafka init", "address", address, "err", err)
		os.Exit(1)
	}

	handler := mq.NewCommandHandler(
		svc,
		mq.NewCommandTransport(
			response.Build,
			qrcode.NewCreator(cfg.QRCodeSize),
			func() string { return uuid.New().String() },
		),
		mqKafka.NewPublish(cfg.ResponseTopic),
		logger,
	)

	if err = mqKafka.Consume(cfg.RequestTopic, handler); err != nil {
		level.Error(logger).Log("msg", "kafka consume", "topic", cfg.RequestTopic, "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "kafka listener turn on", "topic", cfg.RequestTopic)
	mqKafka.ListenAndServe()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGINT)
	level.Info(logger).Log("msg", "received signal", "signal", <-c)

	level.Info(logger).Log("msg", "kafka listener shutdown")
	mqKafka.Shutdown()
	level.Info(logger).Log("msg", "stop service")
}
