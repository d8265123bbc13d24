package types

import "time"

// PageMeta holds the YAML front matter of a content file.
type PageMeta struct {
	// Title is the page title; derived from the file name when absent
	Title string `yaml:"title"`
	// Description is used for the page's meta description
	Description string `yaml:"description"`
	// Layout selects the theme layout ("page" when empty)
	Layout string `yaml:"layout"`
	// Weight orders pages within a section (lower first)
	Weight int `yaml:"weight"`
	// Draft excludes the page from builds
	Draft bool `yaml:"draft"`
}

// PageInfo describes a discovered Markdown content file.
type PageInfo struct {
	// Path is the path of the source file relative to its content root
	Path string
	// FilePath is the absolute path to the Markdown file
	FilePath string
	// Meta is the parsed front matter
	Meta PageMeta
	// Body is the Markdown source with front matter stripped
	Body []byte
	// LastMod tracks the last modification time for change detection
	LastMod time.Time
	// Hash provides a CRC32 checksum for efficient change detection
	Hash string
}
