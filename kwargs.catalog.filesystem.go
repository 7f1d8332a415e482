package kwargs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// FilesystemCatalog stores each template as a YAML file.
//
// Directory structure:
//
//	<root>/
//	  greeting.yaml
//	  invoice.yaml
type FilesystemCatalog struct {
	mu     sync.RWMutex
	root   string
	closed bool
}

// FilesystemCatalogDriver is the driver for creating FilesystemCatalog instances.
type FilesystemCatalogDriver struct{}

func init() {
	RegisterCatalogDriver(CatalogDriverNameFilesystem, &FilesystemCatalogDriver{})
}

// Open creates a FilesystemCatalog. The connection string is the root directory.
func (d *FilesystemCatalogDriver) Open(connectionString string) (Catalog, error) {
	return NewFilesystemCatalog(connectionString)
}

// NewFilesystemCatalog creates a catalog rooted at root, creating the
// directory if it doesn't exist.
func NewFilesystemCatalog(root string) (*FilesystemCatalog, error) {
	if root == "" {
		return nil, NewCatalogError(ErrMsgInvalidCatalogRoot, nil)
	}
	if err := os.MkdirAll(root, FilesystemDirPermissions); err != nil {
		return nil, NewCatalogError(ErrMsgCatalogFailed, err).
			WithMetadata(MetaKeyPath, root)
	}
	return &FilesystemCatalog{root: root}, nil
}

func (c *FilesystemCatalog) path(name string) string {
	return filepath.Join(c.root, name+FilesystemFileSuffix)
}

// Put creates or replaces a template file.
func (c *FilesystemCatalog) Put(ctx context.Context, tmpl *StoredTemplate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateStoredTemplate(tmpl); err != nil {
		return err
	}
	if err := validateTemplateNameForFilesystem(tmpl.Name); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return newCatalogClosedError()
	}

	now := time.Now().UTC()
	stored := copyStoredTemplate(tmpl)
	stored.CreatedAt = now
	if existing, err := c.load(tmpl.Name); err == nil {
		stored.CreatedAt = existing.CreatedAt
	}
	stored.UpdatedAt = now

	data, err := yaml.Marshal(stored)
	if err != nil {
		return NewCatalogError(ErrMsgCatalogFailed, err).
			WithMetadata(MetaKeyTemplate, tmpl.Name)
	}
	if err := os.WriteFile(c.path(tmpl.Name), data, FilesystemFilePermissions); err != nil {
		return NewCatalogError(ErrMsgCatalogFailed, err).
			WithMetadata(MetaKeyTemplate, tmpl.Name)
	}

	tmpl.CreatedAt = stored.CreatedAt
	tmpl.UpdatedAt = stored.UpdatedAt
	return nil
}

// Get reads the template file called name.
func (c *FilesystemCatalog) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateTemplateNameForFilesystem(name); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, newCatalogClosedError()
	}
	return c.load(name)
}

// load reads and decodes a template file.
// Caller must hold a lock.
func (c *FilesystemCatalog) load(name string) (*StoredTemplate, error) {
	data, err := os.ReadFile(c.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewTemplateNotFoundError(name)
		}
		return nil, NewCatalogError(ErrMsgCatalogFailed, err).
			WithMetadata(MetaKeyTemplate, name)
	}

	tmpl := &StoredTemplate{}
	if err := yaml.Unmarshal(data, tmpl); err != nil {
		return nil, NewCatalogError(ErrMsgCatalogFailed, err).
			WithMetadata(MetaKeyTemplate, name)
	}
	return tmpl, nil
}

// Delete removes the template file called name.
func (c *FilesystemCatalog) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateTemplateNameForFilesystem(name); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return newCatalogClosedError()
	}

	if err := os.Remove(c.path(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewTemplateNotFoundError(name)
		}
		return NewCatalogError(ErrMsgCatalogFailed, err).
			WithMetadata(MetaKeyTemplate, name)
	}
	return nil
}

// List returns the names of all template files in ascending order.
func (c *FilesystemCatalog) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, newCatalogClosedError()
	}

	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil, NewCatalogError(ErrMsgCatalogFailed, err).
			WithMetadata(MetaKeyPath, c.root)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), FilesystemFileSuffix); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Close marks the catalog closed. Files are left in place.
func (c *FilesystemCatalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// validateTemplateNameForFilesystem rejects names that could escape the root
// or are not valid file names.
func validateTemplateNameForFilesystem(name string) error {
	if name == "" {
		return NewCatalogError(ErrMsgEmptyTemplateName, nil)
	}
	if strings.Contains(name, "..") {
		return NewCatalogError(ErrMsgPathTraversal, nil).
			WithMetadata(MetaKeyTemplate, name)
	}
	if strings.ContainsAny(name, FilesystemInvalidNameChars) {
		return NewCatalogError(ErrMsgInvalidTemplateName, nil).
			WithMetadata(MetaKeyTemplate, name)
	}
	return nil
}
