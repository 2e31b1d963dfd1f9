package datagen

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteJSON writes v to path as pretty-printed UTF-8 JSON.
func WriteJSON(path string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling json")
	}
	b = append(b, '\n')
	err = os.WriteFile(path, b, 0644)
	return errors.Wrapf(err, "writing %s", path)
}

// ChunkPath returns the numbered chunk file path for prefix and index, e.g.
// sessions_003.json. The index is zero padded to three digits so file listings
// sort in write order.
func ChunkPath(dir, prefix string, idx int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%03d.json", prefix, idx))
}

// WriteChunks drains src and writes its records to numbered JSON array files
// under dir, at most chunkSize records per file. It returns the number of
// records written. An empty source produces no files, so consumers can treat
// the absence of a chunk 000 as an empty collection.
func WriteChunks(dir, prefix string, src Source, chunkSize int) (int, error) {
	if chunkSize < 1 {
		return 0, errors.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	written := 0
	chunk := make([]interface{}, 0, chunkSize)
	idx := 0
	for {
		rec, err := src.Record()
		if err == io.EOF {
			break
		} else if err != nil {
			return written, errors.Wrap(err, "getting record")
		}
		chunk = append(chunk, rec)
		if len(chunk) == chunkSize {
			if err := WriteJSON(ChunkPath(dir, prefix, idx), chunk); err != nil {
				return written, errors.Wrapf(err, "writing chunk %d", idx)
			}
			written += len(chunk)
			chunk = chunk[:0]
			idx++
		}
	}
	if len(chunk) > 0 {
		if err := WriteJSON(ChunkPath(dir, prefix, idx), chunk); err != nil {
			return written, errors.Wrapf(err, "writing chunk %d", idx)
		}
		written += len(chunk)
	}
	return written, nil
}
