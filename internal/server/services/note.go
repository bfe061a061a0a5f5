package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/avolkov/focusboard/internal/common"
	"github.com/avolkov/focusboard/internal/server/config"
	"github.com/avolkov/focusboard/internal/server/models"
	"github.com/avolkov/focusboard/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// NoteService implements ownership-scoped note operations. Notes have no
// update: create, list and delete only.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewNoteService constructs a NoteService.
func NewNoteService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// Create validates the content (must be non-blank after trimming), applies
// the default color when none is given and persists a new note.
func (s *NoteService) Create(ctx context.Context, userID, content, color string) (*models.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: note content cannot be empty", common.ErrorValidation)
	}
	if color == "" {
		color = models.DefaultNoteColor
	}

	note := &models.Note{
		ID:      uuid.NewString(),
		UserID:  userID,
		Content: content,
		Color:   color,
	}

	repo := s.repomanager.Notes(s.db)
	n, err := repo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	return n, nil
}

// ListAll returns all of the user's notes, most recent first.
func (s *NoteService) ListAll(ctx context.Context, userID string) ([]*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	list, err := repo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return list, nil
}

// Delete removes the note via a single (id, owner)-filtered statement.
func (s *NoteService) Delete(ctx context.Context, userID, id string) error {
	repo := s.repomanager.Notes(s.db)
	return repo.Delete(ctx, userID, id)
}
