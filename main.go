package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/finny-analyzer/cmd/dictionary"
	"fjacquet/finny-analyzer/cmd/group"
	"fjacquet/finny-analyzer/cmd/insights"
	"fjacquet/finny-analyzer/cmd/patterns"
	"fjacquet/finny-analyzer/cmd/receipt"
	"fjacquet/finny-analyzer/cmd/recurring"
	"fjacquet/finny-analyzer/cmd/root"
	"fjacquet/finny-analyzer/cmd/smart"
	"fjacquet/finny-analyzer/cmd/top"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// .env must be loaded before the log level is read
	loadEnvSilently()
	configureLogLevel()

	root.Init()

	root.Cmd.AddCommand(receipt.Cmd)
	root.Cmd.AddCommand(group.Cmd)
	root.Cmd.AddCommand(top.Cmd)
	root.Cmd.AddCommand(patterns.Cmd)
	root.Cmd.AddCommand(smart.Cmd)
	root.Cmd.AddCommand(recurring.Cmd)
	root.Cmd.AddCommand(insights.Cmd)
	root.Cmd.AddCommand(dictionary.Cmd)
}

// loadEnvSilently loads .env from the current or parent directory without logging
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel sets the global logrus level from LOG_LEVEL before any logging happens
func configureLogLevel() {
	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	root.Log.SetLevel(level)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
