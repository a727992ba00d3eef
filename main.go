package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fdtd/calculator"
	"fdtd/model"
	"fdtd/server"
	"fdtd/snapshot"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type options struct {
	config   string
	out      string
	throttle int
	serve    string
	history  int
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "fdtd",
		Short:         "1-D FDTD solver for Maxwell's equations (Ex, Hy)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				log.WithError(err).Error("配置错误")
				return err
			}
			if err := run(cfg); err != nil {
				log.WithError(err).Error("计算失败")
				return err
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "config file (.ini or .yaml)")
	f.StringVarP(&opts.out, "out", "o", model.DefaultDir, "snapshot directory")
	f.IntVar(&opts.throttle, "throttle", model.DefaultThrottle, "write a snapshot every n steps")
	f.StringVar(&opts.serve, "serve", "", "stream frames over websocket on this address, e.g. :9000")
	f.IntVar(&opts.history, "history", model.DefaultHistory, "frames kept for late websocket clients")
	f.StringVar(&opts.logLevel, "log-level", model.DefaultLogLevel, "log level")
	return cmd
}

// 配置文件之上叠加命令行参数
func loadConfig(cmd *cobra.Command, opts *options) (model.Config, error) {
	cfg := model.DefaultConfig()
	if opts.config != "" {
		var err error
		if cfg, err = model.LoadConfig(opts.config); err != nil {
			return cfg, err
		}
	}
	f := cmd.Flags()
	if f.Changed("out") {
		cfg.Output.Dir = opts.out
	}
	if f.Changed("throttle") {
		cfg.Output.Throttle = opts.throttle
	}
	if f.Changed("serve") {
		cfg.Server.Addr = opts.serve
	}
	if f.Changed("history") {
		cfg.Server.History = opts.history
	}
	if f.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", model.ErrInvalidConfig, err)
	}
	log.SetLevel(level)
	return cfg, cfg.Validate()
}

func run(cfg model.Config) error {
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	writers := snapshot.Multi{snapshot.NewCSVWriter(cfg.Output.Dir)}
	if cfg.Server.Addr != "" {
		hub := server.NewHub(cfg.Server.History)
		s := server.NewServer(cfg.Server.Addr, upgrader, hub)
		if err := s.Start(); err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Shutdown(ctx); err != nil {
				log.WithError(err).Warn("关闭实时推送失败")
			}
		}()
		writers = append(writers, hub)
	}

	d, err := calculator.NewDriver(cfg, writers)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := d.Run(); err != nil {
		return err
	}
	fmt.Println("Simulation time:", time.Since(start).Seconds())
	return nil
}
