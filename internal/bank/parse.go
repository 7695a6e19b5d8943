package bank

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Extensions lists the supported bank file extensions in lookup order.
var Extensions = []string{".json", ".yaml", ".yml"}

// Parse decodes bank data. The format is chosen by the extension of path.
func Parse(path string, data []byte) (*Bank, error) {
	root, err := decode(path, data)
	if err != nil {
		return nil, err
	}
	if err := validateDocument(root.Value()); err != nil {
		return nil, err
	}
	return build(path, root)
}

func decode(path string, data []byte) (node, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if !gjson.ValidBytes(data) {
			return nil, errors.New("malformed JSON")
		}
		return jsonNode{r: gjson.ParseBytes(data)}, nil
	case ".yaml", ".yml":
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("malformed YAML: %w", err)
		}
		return newYAMLNode(&doc), nil
	default:
		return nil, fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
}

// build turns a schema-valid document into a Bank. Files with a "quiz"
// member may carry a "meta" block; older files are a bare chapter map.
func build(path string, root node) (*Bank, error) {
	b := &Bank{Path: path}

	chapters := root
	if quiz, ok := root.Get("quiz"); ok {
		chapters = quiz
		if m, ok := root.Get("meta"); ok {
			meta, err := buildMeta(m)
			if err != nil {
				return nil, err
			}
			b.Meta = meta
		}
	}

	var buildErr error
	chapters.Each(func(name string, chNode node) {
		if buildErr != nil {
			return
		}
		ch := Chapter{Name: name}
		chNode.Each(func(id string, qNode node) {
			if buildErr != nil {
				return
			}
			q, err := buildQuestion(id, qNode)
			if err != nil {
				buildErr = fmt.Errorf("chapter %q: %w", name, err)
				return
			}
			ch.Questions = append(ch.Questions, q)
		})
		b.Chapters = append(b.Chapters, ch)
	})
	if buildErr != nil {
		return nil, buildErr
	}

	if b.Count() == 0 {
		return nil, ErrEmptyBank
	}
	return b, nil
}

func buildMeta(m node) (*Meta, error) {
	meta := &Meta{}
	if v, ok := m.Get("title"); ok {
		meta.Title = v.Text()
	}
	if v, ok := m.Get("author"); ok {
		meta.Author = v.Text()
	}
	if v, ok := m.Get("license"); ok {
		meta.License = v.Text()
	}
	if v, ok := m.Get("homepage"); ok {
		meta.Homepage = v.Text()
	}
	if v, ok := m.Get("contributors"); ok {
		for _, c := range v.Items() {
			meta.Contributors = append(meta.Contributors, c.Text())
		}
	}
	if v, ok := m.Get("version"); ok {
		meta.Version = v.Text()
		if !semver.IsValid(canonicalVersion(meta.Version)) {
			return nil, fmt.Errorf("meta version %q is not a semantic version", meta.Version)
		}
	}
	return meta, nil
}

// canonicalVersion adds the "v" prefix semver expects.
func canonicalVersion(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

func buildQuestion(id string, n node) (QuestionDef, error) {
	q := QuestionDef{ID: id}
	if v, ok := n.Get("question"); ok {
		q.Prompt = v.Text()
	}

	seen := make(map[string]bool)
	var dup string
	blank := false
	if answers, ok := n.Get("answers"); ok {
		answers.Each(func(key string, v node) {
			norm := NormalizeKey(key)
			if norm == "" {
				blank = true
				return
			}
			if seen[norm] {
				if dup == "" {
					dup = key
				}
				return
			}
			seen[norm] = true
			q.Answers = append(q.Answers, Answer{Key: key, Text: v.Text()})
		})
	}
	// An empty key reads as Enter at the prompt and could never be chosen.
	if blank {
		return q, fmt.Errorf("question %q: blank answer key", id)
	}
	if dup != "" {
		return q, fmt.Errorf("question %q: duplicate answer key %q", id, dup)
	}

	if right, ok := n.Get("right"); ok {
		for _, r := range right.Items() {
			key := r.Text()
			if !seen[NormalizeKey(key)] {
				return q, fmt.Errorf("question %q: right answer %q is not among its answers", id, key)
			}
			q.Right = append(q.Right, key)
		}
	}
	if len(q.Right) == 0 {
		return q, fmt.Errorf("question %q: no right answer", id)
	}
	return q, nil
}

// NormalizeKey brings an answer key to the case used for comparison.
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
