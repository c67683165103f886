package gamerpower

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// FileSource serves giveaways from a saved snapshot instead of the live API.
// Snapshots may be plain JSON or wrapped in gzip, lz4 or zip.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Fetch loads the snapshot and applies filter locally.
func (s *FileSource) Fetch(ctx context.Context, filter Filter) ([]models.GiveawayRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	payload, err := readSnapshot(s.Path)
	if err != nil {
		return nil, err
	}
	records, err := Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}

	matched := make([]models.GiveawayRecord, 0, len(records))
	for _, r := range records {
		if filter.Matches(r) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func readSnapshot(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return unpackZip(data)
	case ".gz":
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %v", ErrDecode, err)
		}
		defer zr.Close()
		return readAllDecoded(zr, "gzip")
	case ".lz4":
		return readAllDecoded(lz4.NewReader(bytes.NewReader(data)), "lz4")
	}
	return data, nil
}

func readAllDecoded(r io.Reader, format string) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, format, err)
	}
	return b, nil
}

// unpackZip returns the contents of the largest file in the archive.
func unpackZip(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: zip: %v", ErrDecode, err)
	}

	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if largestFile == nil || f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		return nil, fmt.Errorf("%w: zip archive has no files", ErrDecode)
	}

	rc, err := largestFile.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: zip: %v", ErrDecode, err)
	}
	defer rc.Close()
	return readAllDecoded(rc, "zip")
}

// SaveSnapshot writes records as JSON, compressed according to the file extension
// (.gz or .lz4, anything else is written as is).
func SaveSnapshot(path string, records []models.GiveawayRecord) (err error) {
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	var w io.WriteCloser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".lz4":
		w = lz4.NewWriter(f)
	default:
		_, err = f.Write(payload)
		return err
	}
	if _, err = w.Write(payload); err != nil {
		_ = w.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	return w.Close()
}
