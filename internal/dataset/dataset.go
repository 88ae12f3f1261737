package dataset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	// ErrTruncated - файл оборвался посреди записи, не дойдя до \0
	ErrTruncated = errors.New("truncated record")
	// ErrMisaligned - в docs.txt и terms.txt разное количество записей
	ErrMisaligned = errors.New("documents and term groups are misaligned")
)

// Group - термы одного документа; Doc - его позиция в docs.txt
type Group struct {
	Doc   int
	Terms []string
}

type Document struct {
	Title string
	Terms []string
}

type Dataset struct {
	Documents []Document
}

// ReadDocs читает заголовки из docs.txt, каждый оканчивается \0
func ReadDocs(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var titles []string
	for {
		title, err := readField(br)
		if err == io.EOF {
			return titles, nil
		}
		if err != nil {
			return titles, err
		}
		titles = append(titles, title)
	}
}

// TermsReader последовательно читает группы термов из terms.txt
type TermsReader struct {
	r   *bufio.Reader
	doc int
}

func NewTermsReader(r io.Reader) *TermsReader {
	return &TermsReader{r: bufio.NewReader(r)}
}

// Next возвращает следующую группу или io.EOF после последней
func (tr *TermsReader) Next() (Group, error) {
	g := Group{Doc: tr.doc}
	for {
		term, err := readField(tr.r)
		if err == io.EOF {
			if len(g.Terms) > 0 {
				return Group{}, fmt.Errorf("group %d: %w", tr.doc, ErrTruncated)
			}
			return Group{}, io.EOF
		}
		if err != nil {
			return Group{}, err
		}
		// Пустое поле - конец группы
		if term == "" {
			tr.doc++
			return g, nil
		}
		g.Terms = append(g.Terms, term)
	}
}

func readField(br *bufio.Reader) (string, error) {
	b, err := br.ReadBytes(0)
	if err == io.EOF {
		if len(b) > 0 {
			return "", ErrTruncated
		}
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(b, []byte{0})), nil
}

// Load читает docs.txt и terms.txt из dir и сопоставляет их по позиции
func Load(dir, docsName, termsName string) (*Dataset, error) {
	titles, err := readDocsFile(filepath.Join(dir, docsName))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(dir, termsName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds := &Dataset{Documents: make([]Document, 0, len(titles))}
	tr := NewTermsReader(f)
	for {
		g, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", termsName, err)
		}
		if g.Doc >= len(titles) {
			return nil, fmt.Errorf("%w: more term groups than %d documents", ErrMisaligned, len(titles))
		}
		ds.Documents = append(ds.Documents, Document{Title: titles[g.Doc], Terms: g.Terms})
	}
	if len(ds.Documents) != len(titles) {
		return nil, fmt.Errorf("%w: %d documents, %d term groups", ErrMisaligned, len(titles), len(ds.Documents))
	}
	return ds, nil
}

func readDocsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	titles, err := ReadDocs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return titles, nil
}
