// Команда pageviews превращает месячный дамп просмотров Википедии
// в файлы docs.txt, terms.txt и default.json для демо поиска.
//
// Дампы: https://dumps.wikimedia.org/other/pagecounts-ez/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"wiki-pageviews/internal/config"
	"wiki-pageviews/internal/exporter"
	"wiki-pageviews/internal/logger"
)

func main() {
	cfg, err := config.LoadPageviews(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pageviews: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("building demo data", "input", cfg.InputPath, "out_dir", cfg.OutputDir)

	// Run закрывает все файлы до возврата, поэтому выход через Fatal безопасен
	if _, err := exporter.Run(cfg.InputPath, cfg.OutputDir, exporter.Options{
		Logger:        log,
		ProgressEvery: cfg.ProgressEvery,
	}); err != nil {
		log.Fatal("build failed", "error", err)
	}
}
