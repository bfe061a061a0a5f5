package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkov/focusboard/internal/dbx"
	"github.com/avolkov/focusboard/internal/server/repositories/focussessions"
	"github.com/avolkov/focusboard/internal/server/repositories/notes"
	"github.com/avolkov/focusboard/internal/server/repositories/refreshtokens"
	"github.com/avolkov/focusboard/internal/server/repositories/tasks"
	"github.com/avolkov/focusboard/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can run the same repository code on *sql.DB or inside *sql.Tx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Notes(db dbx.DBTX) notes.Repository
	FocusSessions(db dbx.DBTX) focussessions.Repository
}
