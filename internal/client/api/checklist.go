package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/duckycart/companion/internal/client/models"
)

// Checklist operations. All endpoints require a bearer token.

// ListChecklists returns every checklist owned by the current user,
// items included.
func (c *Client) ListChecklists(ctx context.Context) ([]models.Checklist, error) {
	var out []models.Checklist
	if err := c.do(ctx, "list checklists", http.MethodGet, "/checklists/", nil, "", true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetChecklist fetches a single checklist by id.
func (c *Client) GetChecklist(ctx context.Context, checklistID int) (*models.Checklist, error) {
	var out models.Checklist
	path := fmt.Sprintf("/checklists/%d", checklistID)
	if err := c.do(ctx, "get checklist", http.MethodGet, path, nil, "", true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateChecklist creates a checklist, optionally with an initial item batch.
func (c *Client) CreateChecklist(ctx context.Context, req models.ChecklistCreate) (*models.Checklist, error) {
	var out models.Checklist
	if err := c.doJSON(ctx, "create checklist", http.MethodPost, "/checklists/", req, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateChecklist renames a checklist and returns the server copy.
func (c *Client) UpdateChecklist(ctx context.Context, checklistID int, req models.ChecklistUpdate) (*models.Checklist, error) {
	var out models.Checklist
	path := fmt.Sprintf("/checklists/%d", checklistID)
	if err := c.doJSON(ctx, "update checklist", http.MethodPut, path, req, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteChecklist removes a checklist and all of its items.
func (c *Client) DeleteChecklist(ctx context.Context, checklistID int) error {
	path := fmt.Sprintf("/checklists/%d", checklistID)
	return c.do(ctx, "delete checklist", http.MethodDelete, path, nil, "", true, nil)
}

// AddItem appends an item to a checklist and returns the server-assigned
// record.
func (c *Client) AddItem(ctx context.Context, checklistID int, req models.ChecklistItemCreate) (*models.ChecklistItem, error) {
	var out models.ChecklistItem
	path := fmt.Sprintf("/checklists/%d/items", checklistID)
	if err := c.doJSON(ctx, "add item", http.MethodPost, path, req, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItem applies a partial update to an item and returns the server copy.
func (c *Client) UpdateItem(ctx context.Context, checklistID, itemID int, req models.ChecklistItemUpdate) (*models.ChecklistItem, error) {
	var out models.ChecklistItem
	path := fmt.Sprintf("/checklists/%d/items/%d", checklistID, itemID)
	if err := c.doJSON(ctx, "update item", http.MethodPut, path, req, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteItem removes a single item from a checklist.
func (c *Client) DeleteItem(ctx context.Context, checklistID, itemID int) error {
	path := fmt.Sprintf("/checklists/%d/items/%d", checklistID, itemID)
	return c.do(ctx, "delete item", http.MethodDelete, path, nil, "", true, nil)
}
