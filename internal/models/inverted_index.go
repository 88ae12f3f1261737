package models

import (
	"cmp"
	"slices"

	"wiki-pageviews/internal/dataset"
)

// InvertedIndex хранит для терма позиции документов, в которых он встречается
type InvertedIndex struct {
	index map[string][]int
}

type TermFrequency struct {
	Term      string
	Documents int
}

func NewInvertedIndex(index map[string][]int) *InvertedIndex {
	return &InvertedIndex{
		index: index,
	}
}

// FromDataset строит индекс по всем документам ds
func FromDataset(ds *dataset.Dataset) *InvertedIndex {
	ii := NewInvertedIndex(make(map[string][]int))
	for doc, d := range ds.Documents {
		for _, term := range d.Terms {
			ii.Add(term, doc)
		}
	}
	return ii
}

// Add добавляет для терма номер документа. Документы добавляются по возрастанию
func (ii *InvertedIndex) Add(term string, doc int) {
	postings := ii.index[term]
	if n := len(postings); n > 0 && postings[n-1] == doc {
		return
	}
	ii.index[term] = append(postings, doc)
}

func (ii *InvertedIndex) GetIndex() map[string][]int {
	return ii.index
}

func (ii *InvertedIndex) Postings(term string) []int {
	return ii.index[term]
}

// TopTerms возвращает до n самых частых термов по числу документов,
// при равенстве по алфавиту. Термы, для которых skip возвращает true, пропускаются
func (ii *InvertedIndex) TopTerms(n int, skip func(string) bool) []TermFrequency {
	out := make([]TermFrequency, 0, len(ii.index))
	for term, postings := range ii.index {
		if skip != nil && skip(term) {
			continue
		}
		out = append(out, TermFrequency{Term: term, Documents: len(postings)})
	}
	slices.SortFunc(out, func(a, b TermFrequency) int {
		if c := cmp.Compare(b.Documents, a.Documents); c != 0 {
			return c
		}
		return cmp.Compare(a.Term, b.Term)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
