package decor

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font"

	"github.com/rook-computer/wmdecor/internal/config"
	"github.com/rook-computer/wmdecor/internal/render"
)

// FaceLoader returns the face for a font setting. The default is
// render.LoadFace.
type FaceLoader func(config.Font) font.Face

// Manager owns the current Set. Readers call Current at any time; a rebuild
// happens off to the side and is swapped in only when it fully succeeds, so
// readers never see a partially built set.
type Manager struct {
	Display  render.Display
	Menu     MenuStyler
	Logger   Logger
	LoadFace FaceLoader
	Open     func(path string) (io.ReadCloser, error)

	mu       sync.Mutex
	cfg      *config.Config
	face     font.Face
	faceSpec config.Font
	swatches *Swatches
	current  atomic.Pointer[Set]
	onSwap   []func(next, prev *Set)
}

func NewManager(display render.Display, menu MenuStyler, logger Logger) *Manager {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Manager{Display: display, Menu: menu, Logger: logger}
}

func (m *Manager) log() Logger {
	if m.Logger == nil {
		return noopLogger{}
	}
	return m.Logger
}

// OnSwap registers fn to run after a new set becomes current and before the
// previous one is released. prev is nil on the first build. fn runs with
// the manager locked and may only call Current.
func (m *Manager) OnSwap(fn func(next, prev *Set)) {
	m.mu.Lock()
	m.onSwap = append(m.onSwap, fn)
	m.mu.Unlock()
}

// Initialize allocates the swatches and builds the first set. A nil cfg
// means the default theme.
func (m *Manager) Initialize(cfg *config.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.swatches != nil {
		return ErrAlreadyInitialized
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	} else {
		cfg = cfg.Clone()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	sw, err := AllocSwatches(m.Display)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	face := m.faceFor(cfg.Font)
	set, err := m.build(cfg, face)
	if err != nil {
		_ = sw.Release()
		return fmt.Errorf("initialize: %w", err)
	}
	m.swatches = sw
	m.commit(cfg, face, set)
	return nil
}

// Reinitialize rebuilds every set image from cfg, or from the current
// config when cfg is nil. On failure the current set stays in place.
// Swatches are kept.
func (m *Manager) Reinitialize(cfg *config.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.swatches == nil {
		return ErrNotInitialized
	}
	if cfg == nil {
		cfg = m.cfg
	} else {
		cfg = cfg.Clone()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("reinitialize: %w", err)
		}
	}

	face := m.faceFor(cfg.Font)
	set, err := m.build(cfg, face)
	if err != nil {
		return fmt.Errorf("reinitialize: %w", err)
	}
	m.commit(cfg, face, set)
	return nil
}

func (m *Manager) build(cfg *config.Config, face font.Face) (*Set, error) {
	b := &Builder{
		Display: m.Display,
		Face:    face,
		Config:  cfg,
		Menu:    m.Menu,
		Logger:  m.log(),
		Open:    m.Open,
	}
	return b.Build()
}

// faceFor returns the cached face when spec is unchanged, otherwise a newly
// loaded one. The cache is only updated by commit.
func (m *Manager) faceFor(spec config.Font) font.Face {
	if m.face != nil && spec == m.faceSpec {
		return m.face
	}
	if m.LoadFace != nil {
		return m.LoadFace(spec)
	}
	return render.LoadFace(render.FontSpec{Path: spec.Path, Size: spec.Size, DPI: spec.DPI}, m.log())
}

// commit makes set current together with the config and face it was built
// from.
func (m *Manager) commit(cfg *config.Config, face font.Face, set *Set) {
	m.cfg = cfg
	m.face = face
	m.faceSpec = cfg.Font
	m.swap(set)
}

func (m *Manager) swap(next *Set) {
	prev := m.current.Swap(next)
	for _, fn := range m.onSwap {
		fn(next, prev)
	}
	if err := prev.Release(); err != nil {
		m.log().Errorf("decor", "release previous set: %v", err)
	}
}

// Current returns the live set, or nil before Initialize.
func (m *Manager) Current() *Set { return m.current.Load() }

func (m *Manager) Swatches() *Swatches {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.swatches
}

// Config returns a copy of the config the current set was built from.
func (m *Manager) Config() *config.Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cfg == nil {
		return nil
	}
	return m.cfg.Clone()
}

// Face returns the face the current set was measured with.
func (m *Manager) Face() font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.face
}

// Close releases the current set and the swatches. The manager can be
// initialized again afterwards.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.swatches == nil {
		return nil
	}
	prev := m.current.Swap(nil)
	for _, fn := range m.onSwap {
		fn(nil, prev)
	}
	err := prev.Release()
	if serr := m.swatches.Release(); err == nil {
		err = serr
	}
	m.swatches = nil
	return err
}
