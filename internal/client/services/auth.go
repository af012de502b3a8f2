// Package services contains the client's application services. They sit
// between the CLI and the two collaborators: the remote Client and the
// local SQLite cache.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/weekjournal/internal/client/client"
	"github.com/dmitrijs2005/weekjournal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/weekjournal/internal/client/repositories/reflections"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/cryptox"
	"github.com/dmitrijs2005/weekjournal/internal/dbx"
)

// AuthService handles the account session. The account password is only
// used to derive the login verifier; the journal passphrase is separate and
// never passes through here.
type AuthService interface {
	OfflineLogin(ctx context.Context, username string, password []byte) error
	OnlineLogin(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Username(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) metadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (a *authService) localValue(ctx context.Context, key metadata.Key) ([]byte, error) {
	v, err := a.metadataRepo(a.db).Get(ctx, key)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, client.ErrLocalDataNotAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}
	return v, nil
}

// OfflineLogin checks the password against the verifier saved by the last
// online login. It grants read access to the cache only.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) error {
	savedUsername, err := a.localValue(ctx, metadata.KeyUsername)
	if err != nil {
		return err
	}
	if string(savedUsername) != username {
		return client.ErrUnauthorized
	}

	savedSalt, err := a.localValue(ctx, metadata.KeySalt)
	if err != nil {
		return err
	}
	savedVerifier, err := a.localValue(ctx, metadata.KeyVerifier)
	if err != nil {
		return err
	}

	masterKey := cryptox.DeriveMasterKey(password, savedSalt)
	defer common.WipeByteArray(masterKey)

	if subtle.ConstantTimeCompare(savedVerifier, cryptox.MakeVerifier(masterKey)) == 0 {
		return client.ErrUnauthorized
	}
	return nil
}

func (a *authService) OnlineLogin(ctx context.Context, username string, password []byte) error {
	salt, err := a.client.GetSalt(ctx, username)
	if err != nil {
		return fmt.Errorf("get salt error: %w", err)
	}

	masterKey := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(masterKey)
	verifier := cryptox.MakeVerifier(masterKey)

	if err := a.client.Login(ctx, username, verifier); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.saveOfflineData(ctx, username, salt, verifier); err != nil {
		return fmt.Errorf("offline data saving error: %w: %w", common.ErrStorageFailure, err)
	}
	return nil
}

// saveOfflineData replaces the offline credentials in one transaction. A
// different user logging in also drops the previous user's cache.
func (a *authService) saveOfflineData(ctx context.Context, username string, salt, verifier []byte) error {
	previous, err := a.metadataRepo(a.db).Get(ctx, metadata.KeyUsername)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return err
	}
	if previous != nil && string(previous) != username {
		if err := reflections.NewSQLiteRepository(a.db).Clear(ctx); err != nil {
			return err
		}
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.metadataRepo(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeyUsername, []byte(username)); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeySalt, salt); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyVerifier, verifier)
	})
}

func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)

	return a.client.Register(ctx, username, salt, cryptox.MakeVerifier(key))
}

// Logout ends the session and removes everything stored locally.
func (a *authService) Logout(ctx context.Context) error {
	a.client.Logout()

	if err := a.metadataRepo(a.db).Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}
	if err := reflections.NewSQLiteRepository(a.db).Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}
	return nil
}

// Username returns the account remembered from the last online login.
func (a *authService) Username(ctx context.Context) (string, error) {
	v, err := a.localValue(ctx, metadata.KeyUsername)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
