/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scan walks a source tree looking for literal design-token usages
// and accumulates them into a usage table. Files are processed concurrently;
// each file produces a partial table merged at a single accumulation point,
// so the result does not depend on completion order.
package scan

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"bennypowers.dev/tokensmith/fs"
	"bennypowers.dev/tokensmith/internal/logger"
)

// Stats tracks file scanning statistics.
type Stats struct {
	// FilesDiscovered is the total number of candidate files found.
	FilesDiscovered int

	// FilesScanned is the number of files actually scanned.
	FilesScanned int

	// FilesSkipped counts files excluded by filters or unreadable.
	FilesSkipped int
}

// skipDirs are never descended into.
var skipDirs = map[string]struct{}{
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	".git":         {},
}

// defaultExtensions are scanned when Options.Extensions is empty.
var defaultExtensions = []string{
	".js", ".jsx", ".ts", ".tsx", ".vue", ".svelte",
	".html", ".css", ".scss", ".go", ".templ",
}

// Options configures a scan.
type Options struct {
	// Include filters files by doublestar glob, relative to the scanned
	// directory. Empty means every file with an allowed extension.
	Include []string

	// Exclude filters out files by doublestar glob.
	Exclude []string

	// Extensions is the file extension allow-list (with leading dot).
	Extensions []string

	// Patterns is the detection table; DefaultPatterns when empty.
	Patterns []Pattern

	// Workers bounds scan concurrency; runtime.NumCPU when zero.
	Workers int

	// UseGitignore honors a .gitignore at each scanned directory root.
	UseGitignore bool
}

// Scan walks dirs and returns the usage table. Unreadable files are logged
// and skipped, never fatal.
func Scan(ctx context.Context, filesystem fs.FileSystem, dirs []string, opts Options) (Table, *Stats, error) {
	if len(opts.Patterns) == 0 {
		opts.Patterns = DefaultPatterns()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = defaultExtensions
	}

	stats := &Stats{}
	var files []string
	for _, dir := range dirs {
		matcher := loadGitignore(filesystem, dir, opts.UseGitignore)
		collected, err := collectFiles(filesystem, dir, matcher, opts, stats)
		if err != nil {
			return nil, stats, err
		}
		files = append(files, collected...)
	}

	table := make(Table)
	jobs := make(chan string)
	partials := make(chan Table)

	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				partial, err := scanFile(filesystem, path, opts.Patterns)
				if err != nil {
					logger.Warn("skipping unreadable file %s: %v", path, err)
					partial = Table{}
				}
				select {
				case partials <- partial:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(partials)
	}()

	// Single accumulation point: only this loop touches the global table.
	for partial := range partials {
		table.Merge(partial)
	}

	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	return table, stats, nil
}

// collectFiles gathers scannable files under dir, applying the directory
// deny-list, hidden-entry skipping, gitignore, globs, and the extension
// allow-list.
func collectFiles(filesystem fs.FileSystem, dir string, matcher *ignore.GitIgnore, opts Options, stats *Stats) ([]string, error) {
	var files []string

	var walk func(current string) error
	walk = func(current string) error {
		entries, err := filesystem.ReadDir(current)
		if err != nil {
			logger.Warn("skipping unreadable directory %s: %v", current, err)
			return nil
		}

		for _, entry := range entries {
			name := entry.Name()
			path := filepath.Join(current, name)
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				rel = name
			}

			if entry.IsDir() {
				if _, deny := skipDirs[name]; deny || strings.HasPrefix(name, ".") {
					continue
				}
				if matcher != nil && matcher.MatchesPath(rel+"/") {
					continue
				}
				if err := walk(path); err != nil {
					return err
				}
				continue
			}

			if strings.HasPrefix(name, ".") {
				continue
			}

			stats.FilesDiscovered++
			if !allowedFile(rel, matcher, opts) {
				stats.FilesSkipped++
				continue
			}
			stats.FilesScanned++
			files = append(files, path)
		}
		return nil
	}

	if err := walk(dir); err != nil {
		return nil, err
	}
	return files, nil
}

func allowedFile(rel string, matcher *ignore.GitIgnore, opts Options) bool {
	if matcher != nil && matcher.MatchesPath(rel) {
		return false
	}

	ext := filepath.Ext(rel)
	allowed := false
	for _, e := range opts.Extensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}

	for _, pattern := range opts.Exclude {
		if ok, err := doublestar.Match(pattern, filepath.ToSlash(rel)); err == nil && ok {
			return false
		}
	}

	if len(opts.Include) == 0 {
		return true
	}
	for _, pattern := range opts.Include {
		if ok, err := doublestar.Match(pattern, filepath.ToSlash(rel)); err == nil && ok {
			return true
		}
	}
	return false
}

// loadGitignore compiles dir/.gitignore when requested. A missing file is
// not an error.
func loadGitignore(filesystem fs.FileSystem, dir string, enabled bool) *ignore.GitIgnore {
	if !enabled {
		return nil
	}
	data, err := filesystem.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return nil
	}
	return ignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)
}

// scanFile produces the partial usage table for one file.
func scanFile(filesystem fs.FileSystem, path string, patterns []Pattern) (Table, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	partial := make(Table)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		for _, p := range patterns {
			for _, match := range p.Regex.FindAllStringSubmatch(line, -1) {
				if len(match) < 2 {
					continue
				}
				name := p.Normalize(match[1])
				if name == "" {
					continue
				}
				partial.Record(name, path, p.Name, p.Category)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return partial, nil
}
