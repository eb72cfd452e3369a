package dataset

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/zap"
)

// SerializeSnapshot encodes a Snapshot to bytes using gob encoding.
// This is useful for disk-based caching to avoid re-parsing the tables.
func SerializeSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeSnapshotToWriter(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeSnapshot decodes a Snapshot from bytes and rebuilds its lookup indexes.
func DeserializeSnapshot(data []byte) (*Snapshot, error) {
	return DeserializeSnapshotFromReader(bytes.NewReader(data))
}

// SerializeSnapshotToFile writes a Snapshot to a file using gob encoding.
func SerializeSnapshotToFile(s *Snapshot, path string) error {
	data, err := SerializeSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DeserializeSnapshotFromFile reads a Snapshot from a gob file.
//
// Example:
//
//	snap, err := dataset.DeserializeSnapshotFromFile("/cache/routedesk.gob")
//	if err != nil {
//	    // Cache miss or corrupted, load the tables again
//	    snap, _ = dataset.Load(ctx, fetcher, sources, logger)
//	}
func DeserializeSnapshotFromFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return DeserializeSnapshot(data)
}

// SerializeSnapshotToWriter writes a Snapshot to an io.Writer using gob encoding.
func SerializeSnapshotToWriter(s *Snapshot, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("failed to encode Snapshot: %w", err)
	}
	return nil
}

// DeserializeSnapshotFromReader reads a Snapshot from an io.Reader using gob encoding.
func DeserializeSnapshotFromReader(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode Snapshot: %w", err)
	}
	s.reindex()
	return &s, nil
}

// LoadCached serves the snapshot stored at path when it was built from the
// same source files (path, size and modification time all equal). Otherwise
// the tables are loaded through l and, if every table loaded, the result is
// written back to path. Remote sources are never cached. An empty path
// disables the cache.
func LoadCached(ctx context.Context, l Loader, src Sources, path string, logger *zap.Logger) (*Snapshot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	stamps, cacheable := Stamp(src)
	cacheable = cacheable && path != ""
	if cacheable {
		snap, err := DeserializeSnapshotFromFile(path)
		switch {
		case err != nil:
			logger.Debug("snapshot cache unavailable", zap.String("path", path), zap.Error(err))
		case slices.Equal(snap.Stamps, stamps):
			logger.Debug("snapshot cache hit", zap.String("path", path), zap.String("version", snap.Version))
			return snap, nil
		default:
			logger.Info("snapshot cache stale, reloading", zap.String("path", path))
		}
	}

	snap, err := Load(ctx, l, src, logger)
	if err != nil || !cacheable {
		return snap, err
	}
	snap.Stamps = stamps
	if err := SerializeSnapshotToFile(snap, path); err != nil {
		logger.Warn("snapshot cache write failed", zap.String("path", path), zap.Error(err))
	}
	return snap, nil
}
