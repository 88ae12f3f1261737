package exporter

import (
	"encoding/json"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"wiki-pageviews/internal/logger"
	"wiki-pageviews/internal/pageviews"
	"wiki-pageviews/internal/terms"
)

const (
	DocsFile   = "docs.txt"
	TermsFile  = "terms.txt"
	ConfigFile = "default.json"
)

type Options struct {
	Logger *logger.Logger
	// ProgressEvery - через сколько строк писать прогресс в лог; 0 отключает
	ProgressEvery int64
}

type Stats struct {
	Lines     int64
	Kept      int64
	Titles    int
	Documents int
	Skipped   int
}

// Run читает дамп inputPath, оставляет просмотры статей английской Википедии,
// ранжирует заголовки по сумме просмотров и пишет docs.txt, terms.txt и
// default.json в outputDir. Файлы заменяются только при успешном завершении
func Run(inputPath, outputDir string, opts Options) (Stats, error) {
	var stats Stats

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return stats, &pageviews.FilesystemError{Op: "mkdir", Path: outputDir, Err: err}
	}

	agg, err := readDump(inputPath, opts.ProgressEvery, log, &stats)
	if err != nil {
		return stats, err
	}
	stats.Titles = agg.Len()
	log.Info("read complete",
		"lines", humanize.Comma(stats.Lines),
		"kept", humanize.Comma(stats.Kept),
		"titles", humanize.Comma(int64(stats.Titles)),
	)

	ranked := agg.Ranked()
	log.Info("sort complete")

	outputs := &outputSet{}
	defer outputs.cleanup()

	docs, err := outputs.create(outputDir, DocsFile)
	if err != nil {
		return stats, err
	}
	termsOut, err := outputs.create(outputDir, TermsFile)
	if err != nil {
		return stats, err
	}
	config, err := outputs.create(outputDir, ConfigFile)
	if err != nil {
		return stats, err
	}

	stats.Documents, stats.Skipped, err = WriteIndex(docs.w, termsOut.w, ranked)
	if err != nil {
		return stats, &pageviews.FilesystemError{Op: "write", Path: outputDir, Err: err}
	}
	if err := WriteDefaultConfig(config.w); err != nil {
		return stats, &pageviews.FilesystemError{Op: "write", Path: config.path, Err: err}
	}

	if err := outputs.commit(); err != nil {
		return stats, err
	}
	log.Info("write complete",
		"dir", outputDir,
		"documents", humanize.Comma(int64(stats.Documents)),
		"skipped", humanize.Comma(int64(stats.Skipped)),
	)
	return stats, nil
}

func readDump(inputPath string, progressEvery int64, log *logger.Logger, stats *Stats) (*pageviews.Aggregate, error) {
	in, err := pageviews.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	agg := pageviews.NewAggregate()
	scanned, err := pageviews.Scan(in, agg, pageviews.ScanOptions{
		ProgressEvery: progressEvery,
		Progress: func(s pageviews.ScanStats) {
			log.Debug("reading dump", "lines", humanize.Comma(s.Lines), "kept", humanize.Comma(s.Kept))
		},
	})
	stats.Lines, stats.Kept = scanned.Lines, scanned.Kept
	if err != nil {
		var fe *pageviews.FormatError
		if errors.As(err, &fe) {
			return nil, errors.Wrapf(err, "parse %s", inputPath)
		}
		return nil, &pageviews.FilesystemError{Op: "read", Path: inputPath, Err: err}
	}
	return agg, nil
}

// WriteIndex пишет для каждого заголовка строку "title\0" в docs и группу
// термов в terms: каждый терм с \0 и еще один \0 в конце группы.
// Заголовки без термов не попадают ни в один из файлов
func WriteIndex(docs, termsOut io.Writer, ranked []pageviews.TitleCount) (written, skipped int, err error) {
	for _, tc := range ranked {
		ts := terms.Extract(tc.Title)
		if len(ts) == 0 {
			skipped++
			continue
		}

		if _, err := io.WriteString(docs, tc.Title+"\x00"); err != nil {
			return written, skipped, err
		}
		for _, term := range ts {
			if _, err := io.WriteString(termsOut, term+"\x00"); err != nil {
				return written, skipped, err
			}
		}
		if _, err := io.WriteString(termsOut, "\x00"); err != nil {
			return written, skipped, err
		}
		written++
	}
	return written, skipped, nil
}

// WriteDefaultConfig пишет пустую конфигурацию поиска - пустой JSON-массив
func WriteDefaultConfig(w io.Writer) error {
	data, err := json.Marshal([]struct{}{})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
