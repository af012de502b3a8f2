package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/weekjournal/internal/dbx"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/reflections"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository inside or outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Reflections(db dbx.DBTX) reflections.Repository
}
