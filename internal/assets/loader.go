package assets

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/cactus-run/internal/config"
)

// Entry describes one sprite to load. Width and Height size the placeholder
// used when the file is missing or malformed.
type Entry struct {
	ID     ID
	Path   string
	Width  float64
	Height float64
}

// DefaultManifest lists the sprites the scene renderer needs.
func DefaultManifest() []Entry {
	return []Entry{
		{ID: Background, Path: "background.yaml", Width: 1127, Height: 606},
		{ID: Clouds, Path: "clouds.yaml", Width: 600, Height: 150},
		{ID: Player, Path: "player.yaml", Width: 100, Height: 100},
		{ID: Obstacle, Path: "obstacle.yaml", Width: 140, Height: 140},
	}
}

// Atlas holds loaded sprites by ID. It is immutable once the loader has finished.
type Atlas struct {
	sprites map[ID]*Sprite
}

// NewAtlas builds an atlas from already decoded sprites.
func NewAtlas(sprites ...*Sprite) *Atlas {
	a := &Atlas{sprites: make(map[ID]*Sprite, len(sprites))}
	for _, s := range sprites {
		if s != nil {
			a.sprites[s.ID] = s
		}
	}
	return a
}

// Sprite returns the sprite for id.
func (a *Atlas) Sprite(id ID) (*Sprite, bool) {
	if a == nil {
		return nil, false
	}
	s, ok := a.sprites[id]
	return s, ok
}

// IDs returns the loaded sprite IDs in sorted order.
func (a *Atlas) IDs() []ID {
	ids := make([]ID, 0, len(a.sprites))
	for id := range a.sprites {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Loader reads sprites concurrently and exposes a readiness gate.
// The frame driver must not start before Ready is closed.
type Loader struct {
	fsys   fs.FS
	policy config.MissingAssetPolicy
	logger *log.Logger

	once  sync.Once
	ready chan struct{}
	atlas *Atlas
	err   error
}

// NewLoader creates a loader over fsys. A nil logger discards output.
func NewLoader(fsys fs.FS, policy config.MissingAssetPolicy, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		fsys:   fsys,
		policy: policy,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Start begins loading the manifest in the background. Later calls are no-ops.
func (l *Loader) Start(ctx context.Context, manifest []Entry) {
	l.once.Do(func() {
		go l.load(ctx, manifest)
	})
}

// load fills the atlas and closes the ready channel when every entry has settled.
func (l *Loader) load(ctx context.Context, manifest []Entry) {
	defer close(l.ready)

	sprites := make([]*Sprite, len(manifest))
	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range manifest {
		g.Go(func() error {
			s, err := l.loadOne(gctx, entry)
			if err != nil {
				l.logger.Error("asset load failed", "sprite", entry.ID, "path", entry.Path, "err", err)
				if l.policy == config.MissingBlock {
					return err
				}
				s = Placeholder(entry.ID, entry.Width, entry.Height)
			}
			sprites[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		l.err = err
		return
	}
	l.atlas = NewAtlas(sprites...)
	l.logger.Debug("assets ready", "sprites", len(sprites))
}

// loadOne reads and decodes a single manifest entry.
func (l *Loader) loadOne(ctx context.Context, entry Entry) (*Sprite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.fsys, entry.Path)
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", entry.ID, err)
	}
	s, err := ParseSprite(data)
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", entry.ID, err)
	}
	if s.ID != entry.ID {
		return nil, fmt.Errorf("load sprite %s: file declares id %q", entry.ID, s.ID)
	}
	return s, nil
}

// Ready is closed once loading has finished, successfully or not.
func (l *Loader) Ready() <-chan struct{} {
	return l.ready
}

// Result returns the loaded atlas. It must only be called after Ready is closed.
func (l *Loader) Result() (*Atlas, error) {
	return l.atlas, l.err
}

// Wait blocks until loading has finished or ctx is done.
func (l *Loader) Wait(ctx context.Context) (*Atlas, error) {
	select {
	case <-l.ready:
		return l.Result()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
