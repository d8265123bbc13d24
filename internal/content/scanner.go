// Package content provides Markdown content discovery for Scribe sites.
//
// The scanner traverses the configured content roots to find .md files,
// splits YAML front matter from the Markdown body, and maintains CRC32 file
// hashes for change detection. Exclude patterns are matched against the file
// base name.
package content

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/scribedocs/scribe/internal/types"
)

var frontMatterDelim = []byte("---")

// Scanner discovers Markdown pages under one or more content roots.
type Scanner struct {
	roots    []string
	excludes []string
}

// NewScanner creates a scanner over the given roots with the given exclude
// patterns (filepath.Match syntax, applied to base names).
func NewScanner(roots, excludes []string) *Scanner {
	return &Scanner{roots: roots, excludes: excludes}
}

// Scan walks all content roots and returns the discovered pages sorted by
// weight, then path. Missing roots are skipped silently so a fresh site with
// no content still builds.
func (s *Scanner) Scan() ([]*types.PageInfo, error) {
	var pages []*types.PageInfo

	for _, root := range s.roots {
		if _, err := os.Stat(root); os.IsNotExist(err) {
			continue
		}

		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() || !strings.HasSuffix(path, ".md") {
				return nil
			}
			if s.excluded(filepath.Base(path)) {
				return nil
			}

			page, err := s.scanFile(root, path, info)
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			pages = append(pages, page)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Meta.Weight != pages[j].Meta.Weight {
			return pages[i].Meta.Weight < pages[j].Meta.Weight
		}
		return pages[i].Path < pages[j].Path
	})

	return pages, nil
}

// ScanFile parses a single Markdown file relative to the given root.
func (s *Scanner) ScanFile(root, path string) (*types.PageInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return s.scanFile(root, path, info)
}

func (s *Scanner) scanFile(root, path string, info os.FileInfo) (*types.PageInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	meta, body, err := SplitFrontMatter(raw)
	if err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	if meta.Title == "" {
		meta.Title = TitleFromPath(rel)
	}

	return &types.PageInfo{
		Path:     filepath.ToSlash(rel),
		FilePath: path,
		Meta:     meta,
		Body:     body,
		LastMod:  info.ModTime(),
		Hash:     fmt.Sprintf("%08x", crc32.ChecksumIEEE(raw)),
	}, nil
}

func (s *Scanner) excluded(base string) bool {
	for _, pattern := range s.excludes {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

// SplitFrontMatter separates a leading YAML front matter block (delimited by
// "---" lines) from the Markdown body. Content without front matter is
// returned unchanged with zero metadata.
func SplitFrontMatter(raw []byte) (types.PageMeta, []byte, error) {
	var meta types.PageMeta

	trimmed := bytes.TrimPrefix(raw, []byte("\uFEFF"))
	if !bytes.HasPrefix(trimmed, frontMatterDelim) {
		return meta, raw, nil
	}

	rest := trimmed[len(frontMatterDelim):]
	// The opening delimiter must be a full line
	if len(rest) > 0 && rest[0] != '\n' && !bytes.HasPrefix(rest, []byte("\r\n")) {
		return meta, raw, nil
	}

	idx := bytes.Index(rest, []byte("\n---"))
	if idx < 0 {
		return meta, raw, fmt.Errorf("unterminated front matter block")
	}

	block := rest[:idx]
	if err := yaml.Unmarshal(block, &meta); err != nil {
		return meta, raw, err
	}

	body := rest[idx+len("\n---"):]
	body = bytes.TrimLeft(body, "\r\n")
	return meta, body, nil
}

// TitleFromPath derives a human-readable title from a content file path:
// "chapters/error-handling.md" becomes "Error Handling".
func TitleFromPath(rel string) string {
	base := filepath.Base(rel)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(base)
}
