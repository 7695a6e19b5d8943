package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linuxYAML = `
meta:
  title: Linux Basics
  version: v1.2.0
quiz:
  Shell:
    1:
      question: Which command lists files?
      answers:
        a: ls
        b: cd
        c: pwd
      right: [a]
    2:
      question: Which of these are shells?
      answers:
        a: bash
        b: zsh
        c: vim
      right: [a, b]
  Files:
    1:
      question: Which directory holds configuration?
      answers:
        a: /etc
        b: /bin
      right: [a]
`

func TestParse_YAMLMatchesJSON(t *testing.T) {
	fromJSON, err := Parse("linux.json", []byte(linuxBank))
	require.NoError(t, err)
	fromYAML, err := Parse("linux.yaml", []byte(linuxYAML))
	require.NoError(t, err)

	assert.Equal(t, fromJSON.Chapters, fromYAML.Chapters)
	assert.Equal(t, "Linux Basics", fromYAML.Title())
	assert.Equal(t, "v1.2.0", fromYAML.Meta.Version)
}

func TestParse_LegacyShape(t *testing.T) {
	data := `{
	  "Networking": {
	    "7": {"question": "Default SSH port?", "answers": {"a": 22, "b": 80}, "right": ["a"]}
	  }
	}`

	b, err := Parse("quizzes/net.json", []byte(data))
	require.NoError(t, err)

	assert.Nil(t, b.Meta)
	assert.Equal(t, "net", b.Title())
	require.Len(t, b.Chapters, 1)
	q := b.Chapters[0].Questions[0]
	assert.Equal(t, "7", q.ID)
	assert.Equal(t, []Answer{{"a", "22"}, {"b", "80"}}, q.Answers)
}

func TestParse_KeepsDocumentOrder(t *testing.T) {
	data := `{"quiz": {
	  "Zeta":  {"b": {"question": "Q1", "answers": {"z": "1", "a": "2"}, "right": ["z"]},
	            "a": {"question": "Q2", "answers": {"a": "1"}, "right": ["a"]}},
	  "Alpha": {"x": {"question": "Q3", "answers": {"a": "1"}, "right": ["a"]}}
	}}`

	b, err := Parse("order.json", []byte(data))
	require.NoError(t, err)

	require.Len(t, b.Chapters, 2)
	assert.Equal(t, "Zeta", b.Chapters[0].Name)
	assert.Equal(t, "Alpha", b.Chapters[1].Name)
	assert.Equal(t, "b", b.Chapters[0].Questions[0].ID)
	assert.Equal(t, "a", b.Chapters[0].Questions[1].ID)
	assert.Equal(t, "z", b.Chapters[0].Questions[0].Answers[0].Key)
}

func TestParse_RightKeysIgnoreCase(t *testing.T) {
	data := `{"quiz": {"C": {"1": {"question": "Q", "answers": {"a": "x", "b": "y"}, "right": ["B"]}}}}`

	b, err := Parse("case.json", []byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, b.Chapters[0].Questions[0].Right)
}

func TestParse_UnsupportedExtension(t *testing.T) {
	_, err := Parse("bank.toml", []byte(linuxBank))
	assert.ErrorContains(t, err, "unsupported file extension")
}

func TestParse_SchemaRejectsNonObjectChapter(t *testing.T) {
	data := `{"quiz": {"C": ["not", "a", "chapter"]}}`

	_, err := Parse("bad.json", []byte(data))
	assert.ErrorContains(t, err, "schema validation failed")
}

func TestCanonicalVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.0.0", "v1.0.0"},
		{"v2.3.4", "v2.3.4"},
		{"0.1", "v0.1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalVersion(tt.in))
	}
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "A", NormalizeKey(" a "))
	assert.Equal(t, "AB", NormalizeKey("ab"))
}

func TestBuildQuestion_BlankKey(t *testing.T) {
	for _, data := range []string{
		`{"question": "Q", "answers": {"": "x", "b": "y"}, "right": ["b"]}`,
		`{"question": "Q", "answers": {"  ": "x", "b": "y"}, "right": ["b"]}`,
	} {
		n, err := decode("q.json", []byte(data))
		require.NoError(t, err)

		_, err = buildQuestion("1", n)
		assert.ErrorContains(t, err, "blank answer key", data)
	}
}
