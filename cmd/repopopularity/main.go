package main

import (
	"context"
	netHttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/repopopularity/internal/adapter/github"
	"github.com/m-zajac/repopopularity/internal/api/grpc"
	"github.com/m-zajac/repopopularity/internal/api/http"
	"github.com/m-zajac/repopopularity/internal/api/http/limiter"
	"github.com/m-zajac/repopopularity/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	if err := conf.Validate(); err != nil {
		l.Fatalf("invalid config: %v", err)
	}
	if err := setupLogger(l, conf); err != nil {
		l.Fatalf("couldn't setup logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &netHttp.Client{
		Timeout: conf.GithubTimeout,
		Transport: limiter.NewTransport(
			netHttp.DefaultTransport,
			conf.GithubAPIRateLimit,
		),
	}
	githubClient, err := github.NewClient(
		httpClient,
		conf.GithubAPIURL,
		conf.GithubAPIAccessToken,
	)
	if err != nil {
		l.Fatalf("couldn't create github client: %v", err)
	}

	cacheStore, closeCache, err := newCacheStore(ctx, conf, l.WithField("component", "cache"))
	if err != nil {
		l.Fatalf("couldn't create cache: %v", err)
	}
	defer func() {
		if err := closeCache(); err != nil {
			l.Errorf("closing cache: %v", err)
		}
	}()

	scorer, err := app.NewScoreCalculator(conf.ScoringConfig())
	if err != nil {
		l.Fatalf("couldn't create score calculator: %v", err)
	}

	service := app.NewService(
		githubClient,
		cacheStore,
		scorer,
		l.WithField("component", "service"),
	)

	mux := http.NewMux(service, conf.HTTPHandlerTimeout, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.Run(ctx); err != nil {
			l.Errorf("couldn't run http server: %v", err)
			stop()
		}
	}()

	if conf.GRPCServerAddress != "" {
		grpcServer := grpc.NewServer(
			grpc.NewService(service),
			conf.GRPCServerAddress,
			l.WithField("component", "grpcServer"),
		)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := grpcServer.Run(ctx); err != nil {
				l.Errorf("couldn't run grpc server: %v", err)
				stop()
			}
		}()
	}

	wg.Wait()
}

func setupLogger(l *logrus.Logger, conf Config) error {
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		return err
	}
	l.SetLevel(level)

	if conf.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	return nil
}
