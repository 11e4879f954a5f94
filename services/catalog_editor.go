package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/fudr-web/models"
)

var (
	ErrNoDraft      = errors.New("no menu item is being edited")
	ErrItemNotFound = errors.New("menu item not found")
)

// CatalogEditor holds the admin's copy of the catalog and at most one edit draft.
// It never talks to the backend itself; CatalogAdmin does that.
type CatalogEditor struct {
	items []models.MenuItem
	draft *models.MenuItem
}

func NewCatalogEditor() *CatalogEditor {
	return &CatalogEditor{}
}

// SetItems stores a catalog fetch. A failed fetch leaves the list empty; the
// draft is kept either way.
func (e *CatalogEditor) SetItems(res Result[[]models.MenuItem]) error {
	e.items = res.OrElse(nil)
	return res.Err
}

// Items returns a copy of the loaded catalog.
func (e *CatalogEditor) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(e.items))
	copy(out, e.items)
	return out
}

func (e *CatalogEditor) find(id string) int {
	for i, item := range e.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// StartEdit opens a draft for id, silently discarding any open draft.
func (e *CatalogEditor) StartEdit(id string) error {
	i := e.find(id)
	if i < 0 {
		return ErrItemNotFound
	}
	draft := e.items[i]
	e.draft = &draft
	return nil
}

func (e *CatalogEditor) Draft() (models.MenuItem, bool) {
	if e.draft == nil {
		return models.MenuItem{}, false
	}
	return *e.draft, true
}

func (e *CatalogEditor) CancelEdit() {
	e.draft = nil
}

// StageUpdate writes changes into the open draft for id and returns the item
// to send. The draft keeps the changes until ApplyUpdate closes it, so a
// failed update can be retried from the form.
func (e *CatalogEditor) StageUpdate(id string, changes models.MenuItem) (models.MenuItem, error) {
	if e.draft == nil || e.draft.ID != id {
		return models.MenuItem{}, ErrNoDraft
	}
	changes.ID = id
	e.draft = &changes
	return changes, nil
}

// ApplyUpdate replaces the list entry with the backend's representation and
// closes the draft if it still belongs to that item.
func (e *CatalogEditor) ApplyUpdate(updated models.MenuItem) {
	if i := e.find(updated.ID); i >= 0 {
		e.items[i] = updated
	}
	if e.draft != nil && e.draft.ID == updated.ID {
		e.draft = nil
	}
}

func (e *CatalogEditor) ApplyDelete(id string) {
	if i := e.find(id); i >= 0 {
		e.items = append(e.items[:i], e.items[i+1:]...)
	}
	if e.draft != nil && e.draft.ID == id {
		e.draft = nil
	}
}

func (e *CatalogEditor) ApplyCreate(created models.MenuItem) {
	e.items = append(e.items, created)
}

// CatalogAdmin runs the editor's backend calls. Each call reads what it needs
// under the workspace lock, releases it for the round-trip and takes it again
// to store the answer, so other screens of the same browser are not held up.
// Callers must not hold the workspace lock.
type CatalogAdmin struct {
	menus MenuStore
}

func NewCatalogAdmin(menus MenuStore) *CatalogAdmin {
	return &CatalogAdmin{menus: menus}
}

func (a *CatalogAdmin) Load(ctx context.Context, ws *Workspace) error {
	token := ws.snapshotToken()
	res := Collect(a.menus.ListMenus(ctx, token))

	ws.Lock()
	defer ws.Unlock()
	return ws.Editor.SetItems(res)
}

// Update sends the whole draft of id with changes applied.
func (a *CatalogAdmin) Update(ctx context.Context, ws *Workspace, id string, changes models.MenuItem) (models.MenuItem, error) {
	ws.Lock()
	staged, err := ws.Editor.StageUpdate(id, changes)
	token := ws.token
	ws.Unlock()
	if err != nil {
		return models.MenuItem{}, err
	}

	updated, err := a.menus.UpdateMenu(ctx, token, staged)
	if err != nil {
		return models.MenuItem{}, err
	}

	ws.Lock()
	defer ws.Unlock()
	ws.Editor.ApplyUpdate(updated)
	return updated, nil
}

// Delete removes id through the backend, then from the local list.
func (a *CatalogAdmin) Delete(ctx context.Context, ws *Workspace, id string) error {
	if err := a.menus.DeleteMenu(ctx, ws.snapshotToken(), id); err != nil {
		return err
	}

	ws.Lock()
	defer ws.Unlock()
	ws.Editor.ApplyDelete(id)
	return nil
}

// Create adds a new item through the backend and appends the result locally.
func (a *CatalogAdmin) Create(ctx context.Context, ws *Workspace, item models.MenuItem) (models.MenuItem, error) {
	item.ID = ""
	created, err := a.menus.CreateMenu(ctx, ws.snapshotToken(), item)
	if err != nil {
		return models.MenuItem{}, err
	}

	ws.Lock()
	defer ws.Unlock()
	ws.Editor.ApplyCreate(created)
	return created, nil
}
