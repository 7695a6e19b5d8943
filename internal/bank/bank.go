package bank

import (
	"path/filepath"
	"strings"
)

// Meta is the optional metadata block of a bank. Older files omit it.
type Meta struct {
	Title        string
	Author       string
	Contributors []string
	License      string
	Homepage     string
	Version      string
}

// Answer is one authored answer option.
type Answer struct {
	Key  string
	Text string
}

// QuestionDef is one authored question. Answers keep authoring order.
type QuestionDef struct {
	ID      string
	Prompt  string
	Answers []Answer
	Right   []string
}

// Chapter is a named group of questions in document order.
type Chapter struct {
	Name      string
	Questions []QuestionDef
}

// Bank is a parsed quiz file. It is not modified after load.
type Bank struct {
	Path     string
	Meta     *Meta
	Chapters []Chapter
}

// Count returns the number of questions across all chapters.
func (b *Bank) Count() int {
	n := 0
	for _, ch := range b.Chapters {
		n += len(ch.Questions)
	}
	return n
}

// Title returns the metadata title, falling back to the file name
// without its extension.
func (b *Bank) Title() string {
	if b.Meta != nil && b.Meta.Title != "" {
		return b.Meta.Title
	}
	base := filepath.Base(b.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
