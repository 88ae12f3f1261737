package exporter

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"

	"wiki-pageviews/internal/pageviews"
)

// pendingFile - выходной файл, который пишется во временный файл рядом
// с итоговым путем и переносится на место в commit
type pendingFile struct {
	path   string
	f      *os.File
	w      *bufio.Writer
	backup string
}

func createPending(dir, name string) (*pendingFile, error) {
	path := filepath.Join(dir, name)
	f, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return nil, &pageviews.FilesystemError{Op: "create", Path: path, Err: err}
	}
	return &pendingFile{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

// finish сбрасывает буфер и закрывает временный файл, не переименовывая его
func (p *pendingFile) finish() error {
	if err := p.w.Flush(); err != nil {
		p.f.Close()
		return &pageviews.FilesystemError{Op: "write", Path: p.path, Err: err}
	}
	if err := p.f.Chmod(0644); err != nil {
		p.f.Close()
		return &pageviews.FilesystemError{Op: "chmod", Path: p.path, Err: err}
	}
	if err := p.f.Close(); err != nil {
		return &pageviews.FilesystemError{Op: "close", Path: p.path, Err: err}
	}
	return nil
}

// replace откладывает прежний файл в резервную копию и ставит новый на его место
func (p *pendingFile) replace() error {
	backup := p.f.Name() + ".bak"
	switch err := os.Rename(p.path, backup); {
	case err == nil:
		p.backup = backup
	case !errors.Is(err, os.ErrNotExist):
		return &pageviews.FilesystemError{Op: "backup", Path: p.path, Err: err}
	}
	if err := os.Rename(p.f.Name(), p.path); err != nil {
		p.restore()
		return &pageviews.FilesystemError{Op: "rename", Path: p.path, Err: err}
	}
	return nil
}

// restore возвращает прежний файл, если он был, иначе удаляет новый
func (p *pendingFile) restore() {
	if p.backup == "" {
		if _, err := os.Stat(p.f.Name()); errors.Is(err, os.ErrNotExist) {
			_ = os.Remove(p.path)
		}
		return
	}
	_ = os.Rename(p.backup, p.path)
	p.backup = ""
}

func (p *pendingFile) dropBackup() {
	if p.backup != "" {
		_ = os.Remove(p.backup)
		p.backup = ""
	}
}

// discard закрывает и удаляет временный файл. Можно вызывать после finish
func (p *pendingFile) discard() {
	_ = p.f.Close()
	_ = os.Remove(p.f.Name())
}

// outputSet объединяет выходные файлы одного запуска, чтобы заменить их вместе:
// docs.txt и terms.txt должны оставаться согласованными по позициям
type outputSet struct {
	files     []*pendingFile
	committed bool
}

func (s *outputSet) create(dir, name string) (*pendingFile, error) {
	p, err := createPending(dir, name)
	if err != nil {
		return nil, err
	}
	s.files = append(s.files, p)
	return p, nil
}

// commit дописывает все файлы и только потом переносит их на место.
// Если перенос одного из файлов не удался, уже замененные файлы откатываются
func (s *outputSet) commit() error {
	for _, p := range s.files {
		if err := p.finish(); err != nil {
			return err
		}
	}
	for i, p := range s.files {
		if err := p.replace(); err != nil {
			for _, done := range s.files[:i] {
				done.restore()
			}
			return err
		}
	}
	for _, p := range s.files {
		p.dropBackup()
	}
	s.committed = true
	return nil
}

// cleanup удаляет оставшиеся временные файлы, если commit не прошел
func (s *outputSet) cleanup() {
	if s.committed {
		return
	}
	for _, p := range s.files {
		p.discard()
	}
}
