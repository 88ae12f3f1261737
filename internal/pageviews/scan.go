package pageviews

import (
	"bufio"
	"errors"
	"io"
)

const maxLineBytes = 1024 * 1024

type ScanOptions struct {
	// Progress вызывается каждые ProgressEvery строк, если заданы оба поля
	Progress      func(ScanStats)
	ProgressEvery int64
}

type ScanStats struct {
	Lines int64
	Kept  int64
}

// Scan читает строки дампа из r и добавляет в agg записи английской Википедии.
// Первая некорректная строка прерывает чтение
func Scan(r io.Reader, agg *Aggregate, opts ScanOptions) (ScanStats, error) {
	var stats ScanStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()

		rec, err := ParseLine(line)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.Line = stats.Lines
				fe.Text = line
			}
			return stats, err
		}

		if rec.English() {
			if err := agg.Add(rec.Title, rec.Count); err != nil {
				return stats, &FormatError{
					Line:   stats.Lines,
					Text:   line,
					Reason: "total views of " + rec.Title + " out of range",
					Err:    err,
				}
			}
			stats.Kept++
		}

		if opts.Progress != nil && opts.ProgressEvery > 0 && stats.Lines%opts.ProgressEvery == 0 {
			opts.Progress(stats)
		}
	}
	if err := scanner.Err(); err != nil {
		// Слишком длинная строка - ошибка содержимого дампа, а не чтения файла
		if errors.Is(err, bufio.ErrTooLong) {
			return stats, &FormatError{
				Line:   stats.Lines + 1,
				Reason: "line longer than 1 MiB",
				Err:    err,
			}
		}
		return stats, err
	}
	return stats, nil
}
