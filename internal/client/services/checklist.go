package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/duckycart/companion/internal/client/models"
	"github.com/duckycart/companion/internal/common"
	"github.com/duckycart/companion/internal/logging"
)

// ChecklistAPI is the slice of the remote client the service needs.
type ChecklistAPI interface {
	ListChecklists(ctx context.Context) ([]models.Checklist, error)
	CreateChecklist(ctx context.Context, req models.ChecklistCreate) (*models.Checklist, error)
	UpdateChecklist(ctx context.Context, checklistID int, req models.ChecklistUpdate) (*models.Checklist, error)
	DeleteChecklist(ctx context.Context, checklistID int) error
	AddItem(ctx context.Context, checklistID int, req models.ChecklistItemCreate) (*models.ChecklistItem, error)
	UpdateItem(ctx context.Context, checklistID, itemID int, req models.ChecklistItemUpdate) (*models.ChecklistItem, error)
	DeleteItem(ctx context.Context, checklistID, itemID int) error
}

// ChecklistService keeps the in-memory mirror of the user's checklists and
// reconciles every mutation against the server.
//
// Discipline: validate trivial local preconditions first, then issue the
// remote call, and only merge the server-confirmed entity into the mirror.
// On failure the prior state is left untouched. A per-entity in-flight guard
// rejects a second concurrent mutation on the same checklist or item.
type ChecklistService interface {
	Lists() []models.Checklist
	Refresh(ctx context.Context) error
	Create(ctx context.Context, name string, itemTexts []string) (*models.Checklist, error)
	Rename(ctx context.Context, checklistID int, name string) (*models.Checklist, error)
	Delete(ctx context.Context, checklistID int) error
	AddItem(ctx context.Context, checklistID int, text string) (*models.ChecklistItem, error)
	ToggleItem(ctx context.Context, checklistID, itemID int) (*models.ChecklistItem, error)
	UpdateItemText(ctx context.Context, checklistID, itemID int, text string) (*models.ChecklistItem, error)
	DeleteItem(ctx context.Context, checklistID, itemID int) error
	ShareText(checklistID int) (string, error)
}

type checklistService struct {
	api ChecklistAPI
	log logging.Logger

	mu       sync.Mutex
	lists    []models.Checklist
	inFlight map[string]struct{}
}

// NewChecklistService returns a service with an empty mirror; call Refresh
// to populate it.
func NewChecklistService(api ChecklistAPI, log logging.Logger) ChecklistService {
	return &checklistService{
		api:      api,
		log:      log.With("component", "checklist"),
		inFlight: make(map[string]struct{}),
	}
}

// ---- in-flight guard ----

func (s *checklistService) begin(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return fmt.Errorf("%w: %s", common.ErrMutationInFlight, key)
	}
	s.inFlight[key] = struct{}{}
	return nil
}

func (s *checklistService) finish(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

func checklistKey(id int) string { return fmt.Sprintf("checklist:%d", id) }
func itemKey(id int) string      { return fmt.Sprintf("item:%d", id) }

// ---- mirror maintenance ----

// mergeList replaces the checklist with the same id, or prepends a new one.
func (s *checklistService) mergeList(server *models.Checklist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		if s.lists[i].ID == server.ID {
			s.lists[i] = *server
			return
		}
	}
	s.lists = append([]models.Checklist{*server}, s.lists...)
}

// mergeItem replaces the item with the same id inside its checklist, or
// appends it.
func (s *checklistService) mergeItem(checklistID int, server *models.ChecklistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		if s.lists[i].ID != checklistID {
			continue
		}
		for j := range s.lists[i].Items {
			if s.lists[i].Items[j].ID == server.ID {
				s.lists[i].Items[j] = *server
				return
			}
		}
		s.lists[i].Items = append(s.lists[i].Items, *server)
		return
	}
}

func (s *checklistService) dropList(checklistID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		if s.lists[i].ID == checklistID {
			s.lists = append(s.lists[:i], s.lists[i+1:]...)
			return
		}
	}
}

func (s *checklistService) dropItem(checklistID, itemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		if s.lists[i].ID != checklistID {
			continue
		}
		items := s.lists[i].Items
		for j := range items {
			if items[j].ID == itemID {
				s.lists[i].Items = append(items[:j], items[j+1:]...)
				return
			}
		}
	}
}

func (s *checklistService) findItem(checklistID, itemID int) (models.ChecklistItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		if s.lists[i].ID != checklistID {
			continue
		}
		for _, item := range s.lists[i].Items {
			if item.ID == itemID {
				return item, true
			}
		}
	}
	return models.ChecklistItem{}, false
}

// ---- operations ----

// Lists returns a copy of the mirror.
func (s *checklistService) Lists() []models.Checklist {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Checklist, len(s.lists))
	copy(out, s.lists)
	return out
}

// Refresh replaces the mirror with the server's collection.
func (s *checklistService) Refresh(ctx context.Context) error {
	lists, err := s.api.ListChecklists(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.lists = lists
	s.mu.Unlock()
	return nil
}

func (s *checklistService) Create(ctx context.Context, name string, itemTexts []string) (*models.Checklist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: checklist name is empty", common.ErrValidation)
	}

	var items []models.ChecklistItemCreate
	for _, text := range itemTexts {
		if text = strings.TrimSpace(text); text != "" {
			items = append(items, models.ChecklistItemCreate{Text: text})
		}
	}

	const key = "checklist:new"
	if err := s.begin(key); err != nil {
		return nil, err
	}
	defer s.finish(key)

	created, err := s.api.CreateChecklist(ctx, models.ChecklistCreate{Name: name, Items: items})
	if err != nil {
		return nil, err
	}

	s.mergeList(created)
	s.log.Info(ctx, "checklist created", "id", created.ID, "name", created.Name)
	return created, nil
}

func (s *checklistService) Rename(ctx context.Context, checklistID int, name string) (*models.Checklist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: checklist name is empty", common.ErrValidation)
	}

	key := checklistKey(checklistID)
	if err := s.begin(key); err != nil {
		return nil, err
	}
	defer s.finish(key)

	updated, err := s.api.UpdateChecklist(ctx, checklistID, models.ChecklistUpdate{Name: name})
	if err != nil {
		return nil, err
	}

	s.mergeList(updated)
	return updated, nil
}

func (s *checklistService) Delete(ctx context.Context, checklistID int) error {
	key := checklistKey(checklistID)
	if err := s.begin(key); err != nil {
		return err
	}
	defer s.finish(key)

	if err := s.api.DeleteChecklist(ctx, checklistID); err != nil {
		return err
	}

	s.dropList(checklistID)
	return nil
}

func (s *checklistService) AddItem(ctx context.Context, checklistID int, text string) (*models.ChecklistItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: item text is empty", common.ErrValidation)
	}

	key := checklistKey(checklistID)
	if err := s.begin(key); err != nil {
		return nil, err
	}
	defer s.finish(key)

	created, err := s.api.AddItem(ctx, checklistID, models.ChecklistItemCreate{Text: text})
	if err != nil {
		return nil, err
	}

	s.mergeItem(checklistID, created)
	return created, nil
}

func (s *checklistService) ToggleItem(ctx context.Context, checklistID, itemID int) (*models.ChecklistItem, error) {
	current, ok := s.findItem(checklistID, itemID)
	if !ok {
		return nil, fmt.Errorf("%w: item %d in checklist %d", common.ErrNotFound, itemID, checklistID)
	}

	key := itemKey(itemID)
	if err := s.begin(key); err != nil {
		return nil, err
	}
	defer s.finish(key)

	checked := !current.Checked
	updated, err := s.api.UpdateItem(ctx, checklistID, itemID, models.ChecklistItemUpdate{Checked: &checked})
	if err != nil {
		return nil, err
	}

	s.mergeItem(checklistID, updated)
	return updated, nil
}

func (s *checklistService) UpdateItemText(ctx context.Context, checklistID, itemID int, text string) (*models.ChecklistItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: item text is empty", common.ErrValidation)
	}
	if _, ok := s.findItem(checklistID, itemID); !ok {
		return nil, fmt.Errorf("%w: item %d in checklist %d", common.ErrNotFound, itemID, checklistID)
	}

	key := itemKey(itemID)
	if err := s.begin(key); err != nil {
		return nil, err
	}
	defer s.finish(key)

	updated, err := s.api.UpdateItem(ctx, checklistID, itemID, models.ChecklistItemUpdate{Text: &text})
	if err != nil {
		return nil, err
	}

	s.mergeItem(checklistID, updated)
	return updated, nil
}

func (s *checklistService) DeleteItem(ctx context.Context, checklistID, itemID int) error {
	key := itemKey(itemID)
	if err := s.begin(key); err != nil {
		return err
	}
	defer s.finish(key)

	if err := s.api.DeleteItem(ctx, checklistID, itemID); err != nil {
		return err
	}

	s.dropItem(checklistID, itemID)
	return nil
}

// ShareText renders a checklist as shareable plain text. It is a read-only
// transform over the mirror and never touches the network.
func (s *checklistService) ShareText(checklistID int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lists {
		if s.lists[i].ID != checklistID {
			continue
		}
		var b strings.Builder
		b.WriteString(s.lists[i].Name + "\n")
		for _, item := range s.lists[i].Items {
			mark := " "
			if item.Checked {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, item.Text)
		}
		return b.String(), nil
	}
	return "", fmt.Errorf("%w: checklist %d", common.ErrNotFound, checklistID)
}
