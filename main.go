package main

import (
	"context"
	"encoding/base64"
	"flag"
	"os"
	"os/signal"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/intersection-sim/task"
	"github.com/tsinghua-fib-lab/intersection-sim/utils/config"
	"gopkg.in/yaml.v2"
)

var (
	// 仿真任务名，用于日志与报告
	job = flag.String("job", "job0", "the name of the whole simulation task")
	// 配置文件路径
	configPath = flag.String("config", "", "config file path (empty means default config)")
	// 配置文件Base64编码后的数据
	configData = flag.String("config-data", "", "config file base64 encoded data")
	// 报告输出路径，设置为空则只输出日志
	output = flag.String("output", "", "yaml report output path (empty means no report file)")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "intersection-sim")
)

// loadConfig 获取配置，未指定配置时使用默认配置
func loadConfig() *config.RuntimeConfig {
	var file []byte
	var err error
	if *configPath != "" {
		file, err = os.ReadFile(*configPath)
		if err != nil {
			log.Panicf("config file load err: %v", err)
		}
	} else if *configData != "" {
		file, err = base64.StdEncoding.DecodeString(*configData)
		if err != nil {
			log.Panicf("config data load err: %v", err)
		}
	} else {
		log.Info("no config specified, use default config")
		return config.NewRuntimeConfig(config.Default())
	}
	rc, err := config.Load(file)
	if err != nil {
		log.Panicf("config file load err: %v", err)
	}
	return rc
}

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
	rc := loadConfig()
	log.Infof("%+v", rc.All)

	t, err := task.NewContext(*job, rc)
	if err != nil {
		log.Panicf("create task err: %v", err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	report, err := t.Run(runCtx)
	if err != nil {
		log.Panicf("run err: %v", err)
	}
	log.Infof(
		"policy %s over %d episodes: mean reward %.2f, mean wait NS %.2f EW %.2f, mean phase changes %.2f",
		report.Policy, report.Summary.Episodes, report.Summary.MeanReward,
		report.Summary.MeanNSWait, report.Summary.MeanEWWait, report.Summary.MeanPhaseChanges,
	)

	if *output != "" {
		data, err := yaml.Marshal(report)
		if err != nil {
			log.Panicf("report marshal err: %v", err)
		}
		if err := os.WriteFile(*output, data, 0o644); err != nil {
			log.Panicf("report write err: %v", err)
		}
		log.Infof("report written to %s", *output)
	}
}
