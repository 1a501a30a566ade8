// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrNoBackup is returned by RestoreFile when there is nothing to restore
var ErrNoBackup = errors.New("backup file does not exist")

// BackupSuffix is appended to a target path to name its backup
const BackupSuffix = ".bak"

// 📊 FileStatus represents what a rewrite did to a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // content changed and was written
	StatusUnchanged            // no rule changed the content
	StatusPlanned              // content would change, nothing written
	StatusRestored             // content restored from backup
	StatusFailed               // rewrite aborted
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusPlanned:
		return "planned"
	case StatusRestored:
		return "restored"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains metadata about a rewritten file
type FileInfo struct {
	Path         string     // Absolute path to the file
	Status       FileStatus // What happened to it
	Size         int64      // Size after the rewrite
	Replacements int        // Number of replacements made
	RulesFired   int        // Number of rules that matched
	Checksum     string     // Content hash after the rewrite
	Backup       string     // Backup path, if one was made
	Error        error      // Any error associated with this file
}

// 💾 FileManager handles all file system operations
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	FileExists(ctx context.Context, path string) (bool, error)

	// WriteFileAtomic replaces path through a temp file and rename,
	// keeping the original permissions
	WriteFileAtomic(ctx context.Context, path string, content []byte) error

	BackupFile(ctx context.Context, path string) (string, error)
	RestoreFile(ctx context.Context, path string) error
}

// 📈 StatusReporter tracks file status and reports progress
type StatusReporter interface {
	TrackFile(ctx context.Context, path string, info FileInfo)
	GetFileInfo(ctx context.Context, path string) (FileInfo, error)
	ListFiles(ctx context.Context) ([]FileInfo, error)

	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	baseDir   string        // Relative paths resolve against this
	formatter FileFormatter // Formatter for status messages

	mu    sync.RWMutex
	files map[string]FileInfo

	total     int
	processed int
}

var (
	_ FileManager    = (*Manager)(nil)
	_ StatusReporter = (*Manager)(nil)
)

// 🏭 New creates a new status manager
func New(baseDir string) *Manager {
	return NewManager(baseDir, NewDefaultFileFormatter())
}

// 🏭 NewManager creates a status manager with a custom formatter
func NewManager(baseDir string, formatter FileFormatter) *Manager {
	return &Manager{
		baseDir:   filepath.Clean(baseDir),
		formatter: formatter,
		files:     make(map[string]FileInfo),
	}
}

// 🔒 getAbsPath returns the absolute path for a given path
func (m *Manager) getAbsPath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(m.baseDir, path)
}

// Checksum generates a SHA-256 hash of the content
func Checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(m.getAbsPath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)

	mode := os.FileMode(0644)
	if fi, err := os.Stat(absPath); err == nil {
		mode = fi.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return errors.Errorf("checking file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", absPath).Int("bytes", len(content)).Msg("file written")
	return nil
}

// BackupFile copies path to path+BackupSuffix and returns the backup path.
// An existing backup is kept, so it always holds the content from before the
// first rewrite.
func (m *Manager) BackupFile(ctx context.Context, path string) (string, error) {
	absPath := m.getAbsPath(path)
	backupPath := absPath + BackupSuffix

	if _, err := os.Stat(backupPath); err == nil {
		if _, err := os.Stat(absPath); err != nil {
			return "", errors.Errorf("checking file: %w", err)
		}
		zerolog.Ctx(ctx).Debug().Str("backup", backupPath).Msg("keeping existing backup")
		return backupPath, nil
	} else if !os.IsNotExist(err) {
		return "", errors.Errorf("checking backup: %w", err)
	}

	if err := copyFile(absPath, backupPath); err != nil {
		return "", errors.Errorf("creating backup: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", absPath).Str("backup", backupPath).Msg("backup created")
	return backupPath, nil
}

// RestoreFile copies the backup over path and removes the backup
func (m *Manager) RestoreFile(ctx context.Context, path string) error {
	absPath := m.getAbsPath(path)
	backupPath := absPath + BackupSuffix

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return errors.Errorf("%w: %s", ErrNoBackup, backupPath)
	} else if err != nil {
		return errors.Errorf("checking backup existence: %w", err)
	}

	content, err := os.ReadFile(backupPath)
	if err != nil {
		return errors.Errorf("reading backup: %w", err)
	}
	if err := m.WriteFileAtomic(ctx, absPath, content); err != nil {
		return errors.Errorf("restoring from backup: %w", err)
	}

	if err := os.Remove(backupPath); err != nil {
		return errors.Errorf("removing backup: %w", err)
	}

	return nil
}

func (m *Manager) TrackFile(ctx context.Context, path string, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = info
	msg := m.formatter.FormatFileOperation(path, info.Status, info.Replacements)
	if info.Error != nil {
		msg = m.formatter.FormatError(info.Error)
	}
	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Msg(msg)
}

func (m *Manager) GetFileInfo(ctx context.Context, path string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.files[path]
	if !ok {
		return FileInfo{}, errors.Errorf("file not tracked: %s", path)
	}
	return info, nil
}

// ListFiles returns tracked files sorted by path
func (m *Manager) ListFiles(ctx context.Context) ([]FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	zerolog.Ctx(ctx).Debug().Int("total", total).Msg(m.formatter.FormatProgress(0, total))
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	zerolog.Ctx(ctx).Debug().
		Int("processed", processed).
		Int("total", m.total).
		Msg(m.formatter.FormatProgress(processed, m.total))
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	zerolog.Ctx(ctx).Debug().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg(m.formatter.FormatProgress(m.processed, m.total))
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	info, err := source.Stat()
	if err != nil {
		return errors.Errorf("reading source mode: %w", err)
	}

	destination, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return errors.Errorf("copying file: %w", err)
	}

	return destination.Close()
}
