package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/fudr-web/models"
	"github.com/yeremiapane/fudr-web/utils"
)

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot notification shown on the next rendered screen.
// Several can be pending; they are shown in the order they were added.
type Flash struct {
	Kind    FlashKind
	Message string
}

type roleCache struct {
	known   bool
	pending bool
	user    models.CurrentUser
}

// Workspace is the view state one browser session owns: its credential, cart,
// catalog edit draft, last loaded order board and resolved role.
//
// Callers hold Lock while reading or mutating it. RoleResolver, CatalogAdmin,
// OrderDesk and OrderSubmitter take the lock themselves around each step and
// release it for backend round-trips; they must not be called with it held.
type Workspace struct {
	mu sync.Mutex

	id      string
	token   string
	role    roleCache
	flashes []Flash

	// Menu is the catalog the menu screen last showed; cart actions pick
	// items from it.
	Menu   []models.MenuItem
	Cart   *Cart
	Editor *CatalogEditor
	Board  *OrderBoard

	lastSeen time.Time
}

func newWorkspace(id, token string, now time.Time) *Workspace {
	return &Workspace{
		id:       id,
		token:    token,
		Cart:     NewCart(),
		Editor:   NewCatalogEditor(),
		Board:    NewOrderBoard(),
		lastSeen: now,
	}
}

func (w *Workspace) Lock()   { w.mu.Lock() }
func (w *Workspace) Unlock() { w.mu.Unlock() }

func (w *Workspace) ID() string {
	return w.id
}

// Token returns the stored credential, empty when signed out.
func (w *Workspace) Token() string {
	return w.token
}

// SetToken replaces the credential and forgets the resolved role.
func (w *Workspace) SetToken(token string) {
	if w.token == token {
		return
	}
	w.token = token
	w.role = roleCache{}
}

// snapshotToken reads the credential under the lock.
func (w *Workspace) snapshotToken() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.token
}

// User returns the identity resolved for the current credential, if any.
func (w *Workspace) User() (models.CurrentUser, bool) {
	return w.role.user, w.role.known
}

func (w *Workspace) AddFlash(kind FlashKind, message string) {
	w.flashes = append(w.flashes, Flash{Kind: kind, Message: message})
}

// MenuItem looks up id in the catalog the menu screen last showed.
func (w *Workspace) MenuItem(id string) (models.MenuItem, bool) {
	for _, item := range w.Menu {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// TakeFlashes returns the pending flashes and clears them.
func (w *Workspace) TakeFlashes() []Flash {
	f := w.flashes
	w.flashes = nil
	return f
}

// WorkspaceStore keeps workspaces in memory. Nothing in it is persisted, so
// carts and drafts do not survive a restart.
type WorkspaceStore struct {
	mu    sync.RWMutex
	items map[string]*Workspace
	ttl   time.Duration
	now   func() time.Time
}

func NewWorkspaceStore(ttl time.Duration) *WorkspaceStore {
	return &WorkspaceStore{
		items: make(map[string]*Workspace),
		ttl:   ttl,
		now:   time.Now,
	}
}

// New creates a workspace with a fresh random id.
func (s *WorkspaceStore) New() *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws := newWorkspace(uuid.NewString(), "", s.now())
	s.items[ws.id] = ws
	return ws
}

// Get returns the workspace for id and marks it as used.
func (s *WorkspaceStore) Get(id string) (*Workspace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, ok := s.items[id]
	if ok {
		ws.lastSeen = s.now()
	}
	return ws, ok
}

// Restore returns the workspace for id, recreating it with token when it is
// gone (restart or eviction). The second result reports whether it was recreated.
func (s *WorkspaceStore) Restore(id, token string) (*Workspace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ws, ok := s.items[id]; ok {
		ws.lastSeen = s.now()
		return ws, false
	}
	ws := newWorkspace(id, token, s.now())
	s.items[id] = ws
	return ws, true
}

func (s *WorkspaceStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

func (s *WorkspaceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Sweep drops workspaces idle for longer than the TTL and returns how many it dropped.
func (s *WorkspaceStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	dropped := 0
	for id, ws := range s.items {
		if ws.lastSeen.Before(cutoff) {
			delete(s.items, id)
			dropped++
		}
	}
	return dropped
}

// StartSweeper runs Sweep every interval until ctx is done.
func (s *WorkspaceStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					utils.InfoLogger.Printf("Dropped %d idle workspaces", n)
				}
			}
		}
	}()
}
