package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	envLexfeedDataDir  = "LEXFEED_DATA_DIR"
	envLexfeedVocabDir = "LEXFEED_VOCAB_DIR"

	originalTextDir = "original_text"
)

// resolveDataDir picks the data directory: flag, then environment, then the
// ./data default baked into the flag value.
func resolveDataDir() string {
	if strings.TrimSpace(dataDir) != "" && dataDir != "data" {
		return filepath.Clean(dataDir)
	}
	if env := strings.TrimSpace(os.Getenv(envLexfeedDataDir)); env != "" {
		return filepath.Clean(env)
	}
	return filepath.Clean(dataDir)
}

func resolveVocabDir() string {
	if strings.TrimSpace(vocabDir) != "" && vocabDir != filepath.Join("data", "vocabulary") {
		return filepath.Clean(vocabDir)
	}
	if env := strings.TrimSpace(os.Getenv(envLexfeedVocabDir)); env != "" {
		return filepath.Clean(env)
	}
	return filepath.Clean(vocabDir)
}

// textDir is where source text files live and where fetch writes to.
func textDir() string {
	return filepath.Join(resolveDataDir(), originalTextDir)
}

// dataFilePath resolves a bare file name against the text directory.
// Absolute paths and paths with separators are taken as-is.
func dataFilePath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("data file name is empty")
	}
	if filepath.IsAbs(name) || strings.ContainsRune(name, os.PathSeparator) {
		return filepath.Clean(name), nil
	}
	return filepath.Join(textDir(), name), nil
}

// discoverTextFiles lists .txt files in dir, sorted by name.
func discoverTextFiles(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(ents))
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}
