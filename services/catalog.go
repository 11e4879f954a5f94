package services

import (
	"context"

	"github.com/yeremiapane/fudr-web/models"
)

// CategoryGroup is one section of the menu screen.
type CategoryGroup struct {
	Category models.Category
	Items    []models.MenuItem
}

// GroupByCategory groups items by category. Groups appear in the order their
// category is first seen; items keep their relative order.
func GroupByCategory(items []models.MenuItem) []CategoryGroup {
	index := make(map[models.Category]int)
	var groups []CategoryGroup
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// RefreshMenu fetches the catalog for the menu screen and stores it as the
// workspace's Menu, which cart actions pick from. A failed fetch leaves an
// empty menu. The workspace lock is not held during the fetch.
func RefreshMenu(ctx context.Context, menus MenuStore, ws *Workspace) error {
	res := Collect(menus.ListMenus(ctx, ws.snapshotToken()))

	ws.Lock()
	defer ws.Unlock()
	ws.Menu = res.OrElse(nil)
	return res.Err
}
