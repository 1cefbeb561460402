package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/scraper/src/analyzer"
	"github.com/andrewyi/scraper/src/config"
	"github.com/andrewyi/scraper/src/controller"
	"github.com/andrewyi/scraper/src/core"
	"github.com/andrewyi/scraper/src/dbstorage"
	"github.com/andrewyi/scraper/src/downloader"
	"github.com/andrewyi/scraper/src/entity"
	"github.com/andrewyi/scraper/src/filestorage"
	"github.com/andrewyi/scraper/src/robots"
	"github.com/andrewyi/scraper/src/util"
)

type Server struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *log.Logger
	config *config.Config

	controller  controller.Controller
	fileStorage filestorage.FileStorage
	dbStorage   *dbstorage.SimpleDBStorage
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Server) initLog() {
	var logger = log.New()
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stdout)

	if s.config.Log.Context {
		logger.SetReportCaller(true)
	}

	if logLevel, err := log.ParseLevel(s.config.Log.Level); err != nil {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(logLevel)
	}
	s.logger = logger
}

func (s *Server) Start(ctx *cli.Context) error {
	configPath := ctx.String("config")
	var cfg = &config.Config{}
	if err := util.ReadConfig(configPath, cfg); err != nil {
		return fmt.Errorf("fail to load config, err: %w", err)
	}
	cfg.SetDefaults()
	s.config = cfg

	s.initLog()

	go s.watchSignal()
	defer s.Stop()

	_, err := s.Run(cfg, s.logger)
	return err
}

// Run 按配置构建各组件并执行一次完整的批处理
func (s *Server) Run(cfg *config.Config, logger *log.Logger) ([]entity.ExtractionResult, error) {
	s.config = cfg
	s.logger = logger

	requests, err := core.LoadRequests(cfg)
	if err != nil {
		return nil, fmt.Errorf("fail to load requests, err: %w", err)
	}

	// robots检查与页面下载共用client，同一时刻只有一个请求
	client := downloader.NewClient(cfg.HTTP.UserAgent, time.Duration(cfg.HTTP.Timeout)*time.Second, logger)
	checker := robots.NewSimpleChecker(client, robots.Options{
		Agent:        cfg.Robots.Agent,
		CacheTTL:     time.Duration(cfg.Robots.CacheTTL) * time.Second,
		CacheSize:    cfg.Robots.CacheSize,
		MissingAllow: cfg.Robots.MissingAllow,
	}, logger)
	s.controller = controller.NewSimpleController(
		checker,
		downloader.NewSimpleDownloader(client),
		analyzer.NewSimpleAnalyzer(),
		logger,
	)
	s.fileStorage = filestorage.NewCSVFileStorage(cfg.Output.CSVPath, cfg.Output.Separator)

	if cfg.Database.Enabled {
		dbStorage, err := dbstorage.NewSimpleDBStorage(cfg.Database.Driver, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("fail to create dbstorage handler, err: %w", err)
		}
		s.dbStorage = dbStorage
	}

	logger.WithField("requests", len(requests)).Info("run started")
	results := core.RunAll(s.ctx, logger, s.controller, requests)

	if err := s.fileStorage.Store(results); err != nil {
		return results, fmt.Errorf("fail to write csv, err: %w", err)
	}
	logger.WithField("path", cfg.Output.CSVPath).Info("csv written")

	if s.dbStorage != nil {
		n, err := s.dbStorage.StoreResults(results, time.Now())
		if err != nil {
			return results, fmt.Errorf("fail to store records, err: %w", err)
		}
		logger.WithField("records", n).Info("records stored")
	}

	logger.Info("Done")
	return results, nil
}

func (s *Server) watchSignal() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(c)
	s.waitSignal(c)
}

// 收到信号后取消ctx，RunAll不再发起新的请求
func (s *Server) waitSignal(c <-chan os.Signal) {
	select {
	case <-c:
		s.logger.Warn("interrupt signal, remaining sites will be skipped")
		s.cancel()
	case <-s.ctx.Done():
	}
}

func (s *Server) Stop() {
	s.cancel()
	if s.dbStorage != nil {
		s.dbStorage.Close()
	}
}
