// Package markup extracts utility-class usage from externally authored
// HTML so pages built elsewhere can be pulled into the builder: a
// scanner that finds every styled element across a file set, and an
// importer that lifts a document into a layer tree.
package markup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pagecraft/styler"
)

// Finding is one styled element discovered in a scanned file.
type Finding struct {
	File    string
	Tag     string
	Classes []string
	Design  styler.DesignProperties
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int
	FilesScanned    int
	FilesSkipped    int
}

// Scanner walks HTML files for class attributes.
type Scanner struct {
	log       *zap.Logger
	gitIgnore *ignore.GitIgnore
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

func WithLogger(log *zap.Logger) ScannerOption {
	return func(s *Scanner) { s.log = log }
}

// WithGitIgnore loads skip rules from a .gitignore file. A missing
// file degrades gracefully to no filtering.
func WithGitIgnore(path string) ScannerOption {
	return func(s *Scanner) {
		gi, err := ignore.CompileIgnoreFile(path)
		if err != nil {
			s.log.Debug("no gitignore loaded", zap.String("path", path), zap.Error(err))
			return
		}
		s.gitIgnore = gi
	}
}

func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// shouldSkipFile excludes minified bundles and gitignored paths.
// Gitignore rules only apply to relative paths within the project.
func (s *Scanner) shouldSkipFile(path string) bool {
	if strings.HasSuffix(path, ".min.html") {
		return true
	}
	if !filepath.IsAbs(path) && s.gitIgnore != nil && s.gitIgnore.MatchesPath(path) {
		return true
	}
	return false
}

// ScanFiles scans every file matching the glob patterns for styled
// elements. Per-file parse failures are aggregated into the returned
// error but never stop the scan.
func (s *Scanner) ScanFiles(patterns []string) ([]Finding, ScanStats, error) {
	files, stats, err := s.expandGlobPatterns(patterns)
	if err != nil {
		return nil, stats, err
	}

	var findings []Finding
	var scanErr error
	for _, file := range files {
		refs, err := s.scanFile(file)
		if err != nil {
			s.log.Warn("skipping unreadable file", zap.String("file", file), zap.Error(err))
			scanErr = multierr.Append(scanErr, fmt.Errorf("scan %s: %w", file, err))
			continue
		}
		findings = append(findings, refs...)
	}

	s.log.Debug("scan complete",
		zap.Int("files", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped),
		zap.Int("findings", len(findings)))
	return findings, stats, scanErr
}

// expandGlobPatterns expands glob patterns to a deduplicated file
// list, tracking discovery statistics.
func (s *Scanner) expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++
			if s.shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}
	return files, stats, nil
}

// scanFile extracts a finding for every element carrying a class
// attribute, lowering the class string into a structured design.
func (s *Scanner) scanFile(path string) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	doc.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		raw := sel.AttrOr("class", "")
		classes := strings.Fields(raw)
		if len(classes) == 0 {
			return
		}
		findings = append(findings, Finding{
			File:    path,
			Tag:     goquery.NodeName(sel),
			Classes: classes,
			Design:  styler.ClassesToDesign(raw),
		})
	})
	return findings, nil
}
