// Package internal contains the core implementation packages for Scribe.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the scribe CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - app: application bootstrap, theme enhancement, and registry freeze
//   - build: static site generation with per-page error collection
//   - components: the globally registered ShowL and ShowS display components
//   - config: configuration management with validation and security
//   - content: Markdown discovery and front matter parsing
//   - registry: component registry and event broadcasting system
//   - render: Markdown compilation, component expansion, and layout assembly
//   - server: development server with WebSocket live reload
//   - site: this repository's theme extension
//   - theme: the theme contract, base theme, and extension composition
//   - watcher: file system monitoring with debouncing
package internal
