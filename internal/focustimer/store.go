package focustimer

import (
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
)

// Store is the single durable key-value slot holding the session record.
type Store interface {
	// Load returns the persisted session, or nil when none exists.
	// A corrupted record reads as nil: it is the same as no session.
	Load() (*Session, error)
	Save(sess *Session) error
	Clear() error
}

// FileStore keeps the session as one JSON file, written atomically so a
// crash mid-save never leaves a torn record behind.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var sess Session
	if err := sonic.Unmarshal(data, &sess); err != nil {
		// unparseable record: discard silently, start fresh
		_ = os.Remove(fs.path)
		return nil, nil
	}
	if sess.Phase == "" {
		_ = os.Remove(fs.path)
		return nil, nil
	}
	return &sess, nil
}

func (fs *FileStore) Save(sess *Session) error {
	data, err := sonic.ConfigDefault.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return err
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, fs.path)
}

func (fs *FileStore) Clear() error {
	err := os.Remove(fs.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
