package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasexplorer/document"
	"github.com/erraggy/oasexplorer/internal/options"
	"github.com/erraggy/oasexplorer/internal/workspace"
)

// specInput names the document a tool works on, by path or inline.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// makeCacheKey keys files by absolute path and mtime, and inline content by
// its SHA-256. It returns "" when the input cannot be cached.
func makeCacheKey(s specInput) string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// resolve loads the workspace for s, consulting the cache first.
func (s specInput) resolve() (*workspace.Workspace, error) {
	if err := options.ValidateSingleInputSource(
		"exactly one of file or content must be provided",
		"exactly one of file or content must be provided",
		s.File != "", s.Content != "",
	); err != nil {
		return nil, err
	}

	if int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASEXPLORER_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	key, ttl := "", cfg.CacheContentTTL
	if cfg.CacheEnabled {
		key = makeCacheKey(s)
	}
	if s.File != "" {
		ttl = cfg.CacheFileTTL
	}
	if key != "" {
		if ws := workspaces.get(key); ws != nil {
			return ws, nil
		}
	}

	var opt document.Option
	if s.File != "" {
		opt = document.WithFilePath(s.File)
	} else {
		opt = document.WithBytes([]byte(s.Content))
	}
	ws, err := workspace.Load(nil, opt)
	if err != nil {
		return nil, err
	}

	if key != "" {
		workspaces.put(key, ws, ttl)
	}
	return ws, nil
}
