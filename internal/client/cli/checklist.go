package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/duckycart/companion/internal/common"
)

// getLines is an indirection over GetLines, swappable in tests.
var getLines = GetLines

func (a *App) promptInt(prompt string) (int, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		fmt.Println("Expected a number, got:", text)
		return 0, fmt.Errorf("%w: %q is not a number", common.ErrValidation, text)
	}
	return n, nil
}

// Lists prints the local mirror of the user's checklists.
func (a *App) Lists(context.Context) error {
	lists := a.checklists.Lists()
	if len(lists) == 0 {
		fmt.Println("No checklists yet. Try 'create' or 'refresh'.")
		return nil
	}

	for _, list := range lists {
		fmt.Printf("[%d] %s\n", list.ID, list.Name)
		for _, item := range list.Items {
			mark := " "
			if item.Checked {
				mark = "x"
			}
			fmt.Printf("    [%s] (%d) %s\n", mark, item.ID, item.Text)
		}
	}
	return nil
}

// Refresh re-reads the checklist collection from the server.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.checklists.Refresh(ctx); err != nil {
		fmt.Println("Refresh failed:", err)
		return err
	}
	fmt.Printf("Loaded %d checklist(s).\n", len(a.checklists.Lists()))
	return nil
}

func (a *App) CreateList(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Checklist name", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.checklists.Create(ctx, name, nil)
	if err != nil {
		fmt.Println("Create failed:", err)
		return err
	}
	fmt.Printf("Created checklist [%d] %s\n", created.ID, created.Name)
	return nil
}

func (a *App) RenameList(ctx context.Context) error {
	id, err := a.promptInt("Checklist id")
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "New name", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.checklists.Rename(ctx, id, name); err != nil {
		fmt.Println("Rename failed:", err)
		return err
	}
	fmt.Println("Renamed.")
	return nil
}

func (a *App) DeleteList(ctx context.Context) error {
	id, err := a.promptInt("Checklist id")
	if err != nil {
		return err
	}

	if err := a.checklists.Delete(ctx, id); err != nil {
		fmt.Println("Delete failed:", err)
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

func (a *App) AddItem(ctx context.Context) error {
	id, err := a.promptInt("Checklist id")
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "Item text", os.Stdout)
	if err != nil {
		return err
	}

	item, err := a.checklists.AddItem(ctx, id, text)
	if err != nil {
		fmt.Println("Add failed:", err)
		return err
	}
	fmt.Printf("Added item (%d) %s\n", item.ID, item.Text)
	return nil
}

func (a *App) ToggleItem(ctx context.Context) error {
	listID, err := a.promptInt("Checklist id")
	if err != nil {
		return err
	}
	itemID, err := a.promptInt("Item id")
	if err != nil {
		return err
	}

	item, err := a.checklists.ToggleItem(ctx, listID, itemID)
	if err != nil {
		fmt.Println("Toggle failed:", err)
		return err
	}
	state := "unchecked"
	if item.Checked {
		state = "checked"
	}
	fmt.Printf("Item (%d) is now %s.\n", item.ID, state)
	return nil
}

func (a *App) EditItem(ctx context.Context) error {
	listID, err := a.promptInt("Checklist id")
	if err != nil {
		return err
	}
	itemID, err := a.promptInt("Item id")
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "New text", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.checklists.UpdateItemText(ctx, listID, itemID, text); err != nil {
		fmt.Println("Edit failed:", err)
		return err
	}
	fmt.Println("Updated.")
	return nil
}

func (a *App) DeleteItem(ctx context.Context) error {
	listID, err := a.promptInt("Checklist id")
	if err != nil {
		return err
	}
	itemID, err := a.promptInt("Item id")
	if err != nil {
		return err
	}

	if err := a.checklists.DeleteItem(ctx, listID, itemID); err != nil {
		fmt.Println("Delete failed:", err)
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// Share renders a checklist as plain text for pasting elsewhere. Entirely
// local; nothing leaves the device.
func (a *App) Share(context.Context) error {
	id, err := a.promptInt("Checklist id")
	if err != nil {
		return err
	}

	text, err := a.checklists.ShareText(id)
	if err != nil {
		fmt.Println("Share failed:", err)
		return err
	}
	fmt.Print(text)
	return nil
}

// ImportList collects a batch of item texts and creates a checklist from
// them in a single call, the same path a scanned paper list would take.
func (a *App) ImportList(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Checklist name", os.Stdout)
	if err != nil {
		return err
	}
	items, err := getLines(a.reader, "Enter items, one per line", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.checklists.Create(ctx, name, items)
	if err != nil {
		fmt.Println("Import failed:", err)
		return err
	}
	fmt.Printf("Created checklist [%d] %s with %d item(s)\n", created.ID, created.Name, len(created.Items))
	return nil
}
