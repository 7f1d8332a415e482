package kwargs

import (
	"context"

	"go.uber.org/zap"
)

// Library renders named templates kept in a Catalog.
//
//	lib := kwargs.NewLibrary(engine, kwargs.NewMemoryCatalog())
//	err := lib.Register(ctx, "greeting", "Hello, {name}!", "name")
//	out, err := lib.Render(ctx, "greeting", kwargs.MustMake("name", "Alice"))
type Library struct {
	engine  *Engine
	catalog Catalog
}

// NewLibrary binds an engine to a catalog. A nil engine uses Default().
func NewLibrary(engine *Engine, catalog Catalog) *Library {
	if engine == nil {
		engine = Default()
	}
	return &Library{engine: engine, catalog: catalog}
}

// Catalog returns the underlying catalog
func (l *Library) Catalog() Catalog {
	return l.catalog
}

// Register compiles source against the declared parameter names and stores
// it. A placeholder that names no declared parameter is rejected before
// anything is written.
func (l *Library) Register(ctx context.Context, name, source string, names ...string) error {
	if _, err := l.engine.Compile(source, names); err != nil {
		l.engine.logger.Warn(LogMsgLibraryRejected,
			zap.String(LogFieldName, name),
			zap.Error(err),
		)
		return err
	}

	tmpl := &StoredTemplate{
		Name:   name,
		Source: source,
		Names:  names,
	}
	if err := l.catalog.Put(ctx, tmpl); err != nil {
		return err
	}

	l.engine.logger.Debug(LogMsgLibraryRegistered,
		zap.String(LogFieldName, name),
		zap.Int(LogFieldNames, len(names)),
	)
	return nil
}

// Template loads the stored template called name and compiles it against
// its declared parameters.
func (l *Library) Template(ctx context.Context, name string) (*Template, error) {
	stored, err := l.catalog.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return l.engine.Compile(stored.Source, stored.Names)
}

// Render loads the template called name and renders it with args. Every
// declared parameter must be bound in args; extra arguments are ignored.
func (l *Library) Render(ctx context.Context, name string, args *Args) (string, error) {
	stored, err := l.catalog.Get(ctx, name)
	if err != nil {
		return "", err
	}

	values, err := forward(name, stored.Names, nil, args)
	if err != nil {
		return "", err
	}

	tmpl, err := l.engine.Compile(stored.Source, stored.Names)
	if err != nil {
		return "", err
	}
	return l.engine.Render(tmpl, newArgs(stored.Names, values, l.engine.config.maxSuggestions))
}
