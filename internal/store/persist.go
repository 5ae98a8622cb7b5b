package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
)

// loadCollection reads a whole collection file. An absent or unreadable file
// yields an empty collection; the caller is never failed on read.
func loadCollection[T any](log *slog.Logger, path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("collection file absent, starting empty", "path", path)
		} else {
			log.Error("read collection", "path", path, "error", err)
		}
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Error("decode collection", "path", path, "error", err)
		return nil
	}
	return items
}

// saveCollection overwrites the collection file with the full record set,
// via a temp file and rename so a crash mid-write never truncates the
// previous copy. A failed save is logged and absorbed: the in-memory state
// stays authoritative and the update is simply at durability risk.
func saveCollection[T any](log *slog.Logger, path string, items []T) {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		log.Error("encode collection", "path", path, "error", err)
		return
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Error("write collection", "path", tmp, "error", err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		log.Error("replace collection", "path", path, "error", err)
	}
}
