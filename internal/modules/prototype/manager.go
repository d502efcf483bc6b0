package prototype

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/reusedev/pattern-hub/internal/modules/cache"
	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/tools"
)

var ErrTemplateNotFound = errors.New("template not found")

// Manager stores document templates and hands out clones of them.
type Manager struct {
	templates *cache.Manager[Document]
	names     []string
	out       io.Writer
}

func NewManager(out io.Writer) *Manager {
	return &Manager{
		templates: cache.NewManager[Document](),
		out:       out,
	}
}

// Register stores a clone of doc, so later changes to doc leave the template
// alone. Registering an existing name replaces the template.
func (m *Manager) Register(name string, doc Document) error {
	if err := m.templates.Set(name, doc.Clone()); err != nil {
		return fmt.Errorf("register template %s: %w", name, err)
	}
	for _, n := range m.names {
		if n == name {
			return nil
		}
	}
	m.names = append(m.names, name)
	return nil
}

func (m *Manager) Create(name string) (Document, error) {
	tpl, err := m.templates.GetValue(name)
	if errors.Is(err, cache.ErrNotFound) || (err == nil && tpl == nil) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	logs.Logger.Debug().Str("template", name).Msg("document cloned")
	return tpl.Clone(), nil
}

// Unregister removes a template. Clones already handed out are unaffected.
func (m *Manager) Unregister(name string) error {
	i := slices.Index(m.names, name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	if err := m.templates.Delete(name); err != nil {
		return fmt.Errorf("unregister template %s: %w", name, err)
	}
	m.names = slices.Delete(m.names, i, i+1)
	return nil
}

func (m *Manager) Templates() []string {
	return append([]string(nil), m.names...)
}

func (m *Manager) ListTemplates() {
	tools.Println(m.out, "Available document templates:")
	for _, name := range m.names {
		tpl, err := m.templates.GetValue(name)
		if err != nil || tpl == nil {
			continue
		}
		tools.Printf(m.out, "  - %s: %s\n", name, tpl.Title())
	}
	tools.Println(m.out)
}
