package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.json
var FS embed.FS

// DefaultCorpusName is the embedded corpus file served when no external
// word list is configured.
const DefaultCorpusName = "words.json"

// DefaultCorpus returns the raw bytes of the embedded corpus.
func DefaultCorpus() ([]byte, error) {
	return fs.ReadFile(FS, DefaultCorpusName)
}
