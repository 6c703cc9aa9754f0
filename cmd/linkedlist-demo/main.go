package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/buaazp/fasthttprouter"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.elastic.co/ecslogrus"
	"golang.org/x/term"

	"github.com/mavamo135/linked-list/internal/demo"
	"github.com/mavamo135/linked-list/internal/log"
	"github.com/mavamo135/linked-list/internal/middleware"
	"github.com/mavamo135/linked-list/internal/sizewatcher"
	"github.com/mavamo135/linked-list/pkg/syncll"
)

var version = "dev"

const (
	pkgKey   = "pkg"
	listName = "demo"
)

type config struct {
	LoggerLevel  logrus.Level  `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs     bool          `envconfig:"LOG_TO_ECS" default:"false"`
	MetricsAddr  string        `envconfig:"METRICS_ADDR" default:":9090"`
	SizeInterval time.Duration `envconfig:"SIZE_INTERVAL" default:"5s"`
}

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}

	// init main config
	cfg := new(config)
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	// init logger
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(cfg.LoggerLevel)
	logrusLogger.SetFormatter(&nested.Formatter{
		FieldsOrder:     []string{pkgKey},
		TimestampFormat: "01-02|15:04:05",
		NoColors:        !term.IsTerminal(int(os.Stdout.Fd())),
	})

	if cfg.LogToEcs {
		logrusLogger.SetFormatter(&ecslogrus.Formatter{})
	}

	logger := log.NewLogger(logrusLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()

	router := fasthttprouter.New()
	router.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	server := &fasthttp.Server{Handler: router.Handler}

	go func() {
		logger.WithField("addr", cfg.MetricsAddr).Info("starting metrics server")

		if err := server.ListenAndServe(cfg.MetricsAddr); err != nil {
			logger.WithError(err).Error("metrics server stopped")
		}
	}()

	defer func() {
		if err := server.Shutdown(); err != nil {
			logger.WithError(err).Error("metrics server shutdown")
		}
	}()

	var list syncll.List[int] = syncll.New[int]()
	list = middleware.NewLogMiddleware(list, logger.WithField(pkgKey, "list"))
	list = middleware.NewMetricMiddleware(listName, list, reg)

	sizeGauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "linked_list",
		Subsystem: "list",
		Name:      "size",
		Help:      "Current number of elements in the demo list",
	}, []string{})
	reg.MustRegister(sizeGauge)

	watchCtx, stopWatch := context.WithCancel(ctx)
	watcher := sizewatcher.NewWatcher(sizeGauge, list, cfg.SizeInterval, logger.WithField(pkgKey, "size_watcher"))

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		watcher.Start(watchCtx)
	}()

	d := demo.NewDemo(list, *demo.GetConfig(), os.Stdout, logger.WithField(pkgKey, "demo"))

	logger.Info("demo started")

	popped := d.Run(ctx)

	stopWatch()
	wg.Wait()

	logger.WithFields(map[string]interface{}{
		"popped":    len(popped),
		"remaining": list.Size(),
	}).Info("demo finished")

	list.Destroy()
}
