package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

const (
	fieldDelimiter = "|"
	recordFields   = 3

	defaultFileMode os.FileMode = 0o644
)

var (
	ErrMalformedRecord = errors.New("malformed dictionary record")
	ErrSeedNotFound    = errors.New("seed dictionary not found")
)

// DictionaryRepository stores the dictionary in a line-oriented text file.
// Each line holds one word: original|translation|correctAnswersCount.
type DictionaryRepository struct {
	path     string
	seedPath string
}

// NewDictionaryRepository creates a repository for the file at path.
// When the file does not exist, it is initialized from the file at seedPath.
func NewDictionaryRepository(path, seedPath string) *DictionaryRepository {
	return &DictionaryRepository{
		path:     path,
		seedPath: seedPath,
	}
}

// Path returns the path of the backing file.
func (r *DictionaryRepository) Path() string {
	return r.path
}

// Load reads all words from the store, copying the seed store first if needed.
// A single malformed line fails the whole load.
func (r *DictionaryRepository) Load(_ context.Context) ([]*entities.Word, error) {
	if err := r.ensureExists(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	words, err := ParseRecords(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.path, err)
	}

	return words, nil
}

// Seed reads words from the seed store without touching the target store.
func (r *DictionaryRepository) Seed(_ context.Context) ([]*entities.Word, error) {
	f, err := os.Open(r.seedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSeedNotFound, r.seedPath)
		}
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	words, err := ParseRecords(f)
	if err != nil {
		return nil, fmt.Errorf("load seed %s: %w", r.seedPath, err)
	}

	return words, nil
}

// Save overwrites the store with words in their current order.
// Data is written to a temporary file which then replaces the store,
// keeping the permissions of the replaced file.
func (r *DictionaryRepository) Save(_ context.Context, words []*entities.Word) error {
	dir := filepath.Dir(r.path)

	mode := defaultFileMode
	if info, err := os.Stat(r.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := io.WriteString(tmp, FormatRecords(words)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write dictionary: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod dictionary: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync dictionary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close dictionary: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace dictionary: %w", err)
	}

	return nil
}

func (r *DictionaryRepository) ensureExists() error {
	_, err := os.Stat(r.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat dictionary: %w", err)
	}

	data, err := os.ReadFile(r.seedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSeedNotFound, r.seedPath)
		}
		return fmt.Errorf("read seed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create dictionary dir: %w", err)
	}
	if err := os.WriteFile(r.path, data, defaultFileMode); err != nil {
		return fmt.Errorf("copy seed: %w", err)
	}

	return nil
}

// ParseRecords parses dictionary records, one per line.
// Blank lines are skipped. The count field defaults to 0 when it is absent,
// not a number or negative.
func ParseRecords(r io.Reader) ([]*entities.Word, error) {
	var words []*entities.Word

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		word, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	return words, nil
}

func parseRecord(line string) (*entities.Word, error) {
	fields := strings.SplitN(line, fieldDelimiter, recordFields+1)
	if len(fields) < recordFields-1 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	word := entities.NewWord(strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]))
	if len(fields) >= recordFields {
		if n, err := strconv.Atoi(strings.TrimSpace(fields[2])); err == nil && n > 0 {
			word.CorrectAnswersCount = n
		}
	}

	return word, nil
}

// FormatRecords renders words in the store format, records joined by newlines.
func FormatRecords(words []*entities.Word) string {
	lines := make([]string, 0, len(words))
	for _, w := range words {
		lines = append(lines, w.Original+fieldDelimiter+w.Translation+fieldDelimiter+strconv.Itoa(w.CorrectAnswersCount))
	}
	return strings.Join(lines, "\n")
}
