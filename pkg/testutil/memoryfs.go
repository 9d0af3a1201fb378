package testutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. It supports enough
// symlink semantics (Lstat vs Stat, Readlink, EvalSymlinks) for the linker
// and theme packages to be tested without touching a real filesystem.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*memNode

	// errorPaths injects errors for specific paths, keyed by clean path.
	errorPaths map[string]error
}

type memNode struct {
	mode     fs.FileMode
	modTime  time.Time
	content  []byte
	isDir    bool
	linkDest string // non-empty means symlink
}

func (n *memNode) isLink() bool { return n.linkDest != "" }

// NewMemoryFS creates a new in-memory filesystem with a root directory.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*memNode{
			"/": {mode: 0755 | fs.ModeDir, isDir: true, modTime: time.Now()},
		},
		errorPaths: make(map[string]error),
	}
}

// InjectError makes every operation on path fail with err.
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[filepath.Clean(path)] = err
}

func (m *MemoryFS) check(path string) error {
	if err, ok := m.errorPaths[filepath.Clean(path)]; ok {
		return err
	}
	return nil
}

func notExist(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
}

// resolve follows symlinks in every component of path, returning the
// canonical path. Fails if any component is missing.
func (m *MemoryFS) resolve(path string) (string, error) {
	hops := 0
	return m.resolvePath(filepath.Clean(path), &hops)
}

// resolvePath walks path component-wise. A link destination is itself
// resolved with a recursive walk, since it may pass through further
// symlinked directories. hops is shared across the recursion to bound
// link cycles.
func (m *MemoryFS) resolvePath(path string, hops *int) (string, error) {
	if path == "/" {
		return "/", nil
	}
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	cur := "/"
	for _, part := range parts {
		cur = filepath.Join(cur, part)
		node, ok := m.nodes[cur]
		if !ok {
			return "", notExist("lstat", cur)
		}
		if !node.isLink() {
			continue
		}
		*hops++
		if *hops > 40 {
			return "", &fs.PathError{Op: "stat", Path: path, Err: errors.New("too many levels of symbolic links")}
		}
		dest := node.linkDest
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(cur), dest)
		}
		real, err := m.resolvePath(filepath.Clean(dest), hops)
		if err != nil {
			return "", err
		}
		cur = real
	}
	return cur, nil
}

// lookup returns the node for path after following symlinks.
func (m *MemoryFS) lookup(path string) (*memNode, string, error) {
	real, err := m.resolve(path)
	if err != nil {
		return nil, "", err
	}
	node, ok := m.nodes[real]
	if !ok {
		return nil, "", notExist("stat", path)
	}
	return node, real, nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.check(name); err != nil {
		return nil, err
	}
	node, real, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return &memFileInfo{name: filepath.Base(real), node: node}, nil
}

func (m *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.check(name); err != nil {
		return nil, err
	}
	// resolve the parent, but not the final component
	dir, base := filepath.Split(filepath.Clean(name))
	realDir, err := m.resolve(filepath.Clean(dir))
	if err != nil {
		return nil, err
	}
	full := filepath.Join(realDir, base)
	node, ok := m.nodes[full]
	if !ok {
		return nil, notExist("lstat", name)
	}
	return &memFileInfo{name: base, node: node}, nil
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.check(name); err != nil {
		return nil, err
	}
	node, _, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}
	out := make([]byte, len(node.content))
	copy(out, node.content)
	return out, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(name); err != nil {
		return err
	}
	name = filepath.Clean(name)
	parent := filepath.Dir(name)
	realParent, err := m.resolve(parent)
	if err != nil {
		return err
	}
	pnode := m.nodes[realParent]
	if pnode == nil || !pnode.isDir {
		return &fs.PathError{Op: "open", Path: name, Err: errors.New("not a directory")}
	}
	full := filepath.Join(realParent, filepath.Base(name))
	// writing through an existing symlink writes its destination
	if existing, ok := m.nodes[full]; ok && existing.isLink() {
		real, err := m.resolve(full)
		if err == nil {
			full = real
		}
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.nodes[full] = &memNode{mode: perm, content: buf, modTime: time.Now()}
	return nil
}

func (m *MemoryFS) Chmod(name string, mode fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(name); err != nil {
		return err
	}
	node, _, err := m.lookup(name)
	if err != nil {
		return err
	}
	node.mode = (node.mode & fs.ModeType) | (mode & fs.ModePerm)
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(path); err != nil {
		return err
	}
	path = filepath.Clean(path)
	if path == "/" {
		return nil
	}
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	cur := "/"
	for _, part := range parts {
		cur = filepath.Join(cur, part)
		if node, ok := m.nodes[cur]; ok {
			if node.isLink() {
				real, err := m.resolve(cur)
				if err != nil {
					return err
				}
				node = m.nodes[real]
			}
			if !node.isDir {
				return &fs.PathError{Op: "mkdir", Path: cur, Err: errors.New("not a directory")}
			}
			continue
		}
		m.nodes[cur] = &memNode{mode: perm | fs.ModeDir, isDir: true, modTime: time.Now()}
	}
	return nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.check(name); err != nil {
		return nil, err
	}
	node, real, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}
	var names []string
	prefix := real
	if prefix != "/" {
		prefix += "/"
	} else {
		prefix = "/"
	}
	for p := range m.nodes {
		if p == real || !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if strings.Contains(rest, "/") {
			continue
		}
		names = append(names, rest)
	}
	sort.Strings(names)
	entries := make([]fs.DirEntry, 0, len(names))
	for _, n := range names {
		entries = append(entries, &memDirEntry{name: n, node: m.nodes[filepath.Join(real, n)]})
	}
	return entries, nil
}

func (m *MemoryFS) Symlink(oldname, newname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(newname); err != nil {
		return err
	}
	newname = filepath.Clean(newname)
	if _, ok := m.nodes[newname]; ok {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrExist}
	}
	parent := filepath.Dir(newname)
	if _, err := m.resolve(parent); err != nil {
		return err
	}
	m.nodes[newname] = &memNode{mode: 0777 | fs.ModeSymlink, linkDest: oldname, modTime: time.Now()}
	return nil
}

func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.check(name); err != nil {
		return "", err
	}
	node, ok := m.nodes[filepath.Clean(name)]
	if !ok {
		return "", notExist("readlink", name)
	}
	if !node.isLink() {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: errors.New("invalid argument")}
	}
	return node.linkDest, nil
}

func (m *MemoryFS) EvalSymlinks(path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.check(path); err != nil {
		return "", err
	}
	return m.resolve(path)
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(name); err != nil {
		return err
	}
	name = filepath.Clean(name)
	// resolve intermediate dir symlinks, but not the final component
	dir, base := filepath.Split(name)
	realDir, err := m.resolve(filepath.Clean(dir))
	if err != nil {
		return err
	}
	full := filepath.Join(realDir, base)
	node, ok := m.nodes[full]
	if !ok {
		return notExist("remove", name)
	}
	if node.isDir {
		for p := range m.nodes {
			if strings.HasPrefix(p, full+"/") {
				return &fs.PathError{Op: "remove", Path: name, Err: errors.New("directory not empty")}
			}
		}
	}
	delete(m.nodes, full)
	return nil
}

func (m *MemoryFS) RemoveAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(path); err != nil {
		return err
	}
	path = filepath.Clean(path)
	for p := range m.nodes {
		if p == path || strings.HasPrefix(p, path+"/") {
			delete(m.nodes, p)
		}
	}
	return nil
}

func (m *MemoryFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(oldpath); err != nil {
		return err
	}
	if err := m.check(newpath); err != nil {
		return err
	}
	oldpath = filepath.Clean(oldpath)
	newpath = filepath.Clean(newpath)
	if _, ok := m.nodes[oldpath]; !ok {
		return notExist("rename", oldpath)
	}
	parent := filepath.Dir(newpath)
	if _, err := m.resolve(parent); err != nil {
		return err
	}
	moved := make(map[string]*memNode)
	for p, n := range m.nodes {
		if p == oldpath {
			moved[newpath] = n
			delete(m.nodes, p)
		} else if strings.HasPrefix(p, oldpath+"/") {
			moved[newpath+strings.TrimPrefix(p, oldpath)] = n
			delete(m.nodes, p)
		}
	}
	for p, n := range moved {
		m.nodes[p] = n
	}
	return nil
}

// Exists reports whether path exists without following a final symlink.
func (m *MemoryFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.nodes[filepath.Clean(path)]
	return ok
}

// memFileInfo implements fs.FileInfo for MemoryFS nodes
type memFileInfo struct {
	name string
	node *memNode
}

func (fi *memFileInfo) Name() string       { return fi.name }
func (fi *memFileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *memFileInfo) Mode() fs.FileMode  { return fi.node.mode }
func (fi *memFileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *memFileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *memFileInfo) Sys() interface{}   { return nil }

// memDirEntry implements fs.DirEntry for MemoryFS nodes
type memDirEntry struct {
	name string
	node *memNode
}

func (de *memDirEntry) Name() string      { return de.name }
func (de *memDirEntry) IsDir() bool       { return de.node.isDir }
func (de *memDirEntry) Type() fs.FileMode { return de.node.mode.Type() }
func (de *memDirEntry) Info() (fs.FileInfo, error) {
	return &memFileInfo{name: de.name, node: de.node}, nil
}
