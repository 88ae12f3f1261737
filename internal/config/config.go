package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	BuildDirName         = "build"
	defaultProgressEvery = 1_000_000
	defaultTopTerms      = 20
)

// Pageviews - настройки выгрузки дампа
type Pageviews struct {
	InputPath     string
	OutputDir     string
	LogMode       string
	ProgressEvery int64
}

// Inspect - настройки проверки каталога сборки
type Inspect struct {
	BuildDir     string
	LogMode      string
	Top          int
	AllTerms     bool
	PostingsPath string
}

// DefaultOutputDir возвращает каталог build рядом с исполняемым файлом
func DefaultOutputDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "locate executable")
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", errors.Wrap(err, "resolve executable")
	}
	return filepath.Join(filepath.Dir(exe), BuildDirName), nil
}

// LoadPageviews разбирает аргументы выгрузки (без имени программы).
// Нужен ровно один позиционный аргумент - путь к дампу
func LoadPageviews(args []string) (*Pageviews, error) {
	fs := pflag.NewFlagSet("pageviews", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: pageviews [flags] <pagecounts dump>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	cfg := &Pageviews{}
	fs.StringVarP(&cfg.OutputDir, "out-dir", "o", "", "output directory (default <executable dir>/build)")
	fs.StringVar(&cfg.LogMode, "log-mode", envString("LOG_MODE", "dev"), "log mode: dev or prod")
	fs.Int64Var(&cfg.ProgressEvery, "progress-every", envInt64("PAGEVIEWS_PROGRESS_EVERY", defaultProgressEvery), "log progress every N input lines (0 disables)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected 1 argument, got %d", fs.NArg())
	}
	cfg.InputPath = fs.Arg(0)

	if cfg.OutputDir == "" {
		dir, err := DefaultOutputDir()
		if err != nil {
			return nil, err
		}
		cfg.OutputDir = dir
	}
	if cfg.ProgressEvery < 0 {
		return nil, fmt.Errorf("progress-every must not be negative, got %d", cfg.ProgressEvery)
	}
	return cfg, nil
}

// LoadInspect разбирает аргументы проверки. Каталог сборки - необязательный
// позиционный аргумент, по умолчанию DefaultOutputDir
func LoadInspect(args []string) (*Inspect, error) {
	fs := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: inspect [flags] [build dir]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	cfg := &Inspect{}
	fs.StringVar(&cfg.LogMode, "log-mode", envString("LOG_MODE", "dev"), "log mode: dev or prod")
	fs.IntVarP(&cfg.Top, "top", "n", defaultTopTerms, "number of most frequent terms to report")
	fs.BoolVar(&cfg.AllTerms, "all-terms", false, "include English stopwords in the term report")
	fs.StringVar(&cfg.PostingsPath, "postings", "", "write term postings as JSON to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
		dir, err := DefaultOutputDir()
		if err != nil {
			return nil, err
		}
		cfg.BuildDir = dir
	case 1:
		cfg.BuildDir = fs.Arg(0)
	default:
		fs.Usage()
		return nil, fmt.Errorf("expected at most 1 argument, got %d", fs.NArg())
	}
	if cfg.Top < 0 {
		return nil, fmt.Errorf("top must not be negative, got %d", cfg.Top)
	}
	return cfg, nil
}
