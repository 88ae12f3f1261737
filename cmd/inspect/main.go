// Команда inspect проверяет каталог сборки pageviews: согласованность
// docs.txt и terms.txt (ErrMisaligned при разном числе записей) и частые термы
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"wiki-pageviews/internal/config"
	"wiki-pageviews/internal/dataset"
	"wiki-pageviews/internal/exporter"
	"wiki-pageviews/internal/logger"
	"wiki-pageviews/internal/models"
)

func main() {
	cfg, err := config.LoadInspect(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log = log.With("dir", cfg.BuildDir)

	ds, err := dataset.Load(cfg.BuildDir, exporter.DocsFile, exporter.TermsFile)
	if err != nil {
		log.Fatal("load build", "error", err)
	}

	if err := checkConfig(filepath.Join(cfg.BuildDir, exporter.ConfigFile)); err != nil {
		log.Warn("default config is not a JSON array", "error", err)
	}

	ii := models.FromDataset(ds)
	log.Info("build is aligned",
		"documents", humanize.Comma(int64(len(ds.Documents))),
		"terms", humanize.Comma(int64(len(ii.GetIndex()))),
	)

	skip := isStopword
	if cfg.AllTerms {
		skip = nil
	}
	for i, tf := range ii.TopTerms(cfg.Top, skip) {
		fmt.Printf("%5d %-30s %s\n", i+1, tf.Term, humanize.Comma(int64(tf.Documents)))
	}

	if cfg.PostingsPath != "" {
		jsonData, err := json.MarshalIndent(ii.GetIndex(), "", "  ")
		if err != nil {
			log.Fatal("encode postings", "error", err)
		}
		if err := os.WriteFile(cfg.PostingsPath, jsonData, 0644); err != nil {
			log.Fatal("write postings", "path", cfg.PostingsPath, "error", err)
		}
		log.Info("postings written", "path", cfg.PostingsPath)
	}
}

// isStopword проверяет английские стоп-слова. Числа стоп-словами не считаются
func isStopword(term string) bool {
	if !strings.ContainsFunc(term, unicode.IsLetter) {
		return false
	}
	return strings.TrimSpace(stopwords.CleanString(term, "en", false)) == ""
}

func checkConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var entries []json.RawMessage
	return json.Unmarshal(data, &entries)
}
