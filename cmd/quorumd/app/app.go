/*
Package app links together all the various components
to construct the quorumd application.
*/
package app

import (
	"path/filepath"
	"strings"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/app"
	"github.com/iov-one/quorum/commands/server"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
	"github.com/iov-one/quorum/store/iavl"
	"github.com/iov-one/quorum/x"
	"github.com/iov-one/quorum/x/cash"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/iov-one/quorum/x/settings"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/iov-one/quorum/x/utils"
)

// Authenticator returns the typical authentication: public key signatures
// plus the authority of a multisig whose proposal is being executed.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, multisig.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to all extensions. The same router
// is used to replay sub operations of executed proposals.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	ctrl := cash.NewController(cash.NewBucket())
	cash.RegisterRoutes(r, authFn, ctrl)
	sigs.RegisterRoutes(r, authFn)
	settings.RegisterRoutes(r, authFn)
	multisig.RegisterRoutes(r, authFn, sigs.Authenticate{}, ctrl, SubOperationDecoder, r)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/settings", "/multisigs",
// "/proposals", "/votes" and "/"
func QueryRouter() quorum.QueryRouter {
	r := quorum.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		settings.RegisterQuery,
		multisig.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into Application.
func Stack() quorum.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Initializers returns all extensions that read the genesis file.
func Initializers() quorum.Initializer {
	return quorum.ChainInitializers(
		&cash.Initializer{},
		&settings.Initializer{},
		&multisig.Initializer{},
	)
}

// Application constructs the ABCI application on top of the database in
// dbPath. An empty path keeps everything in memory.
func Application(name string, h quorum.Handler, tx quorum.TxDecoder, dbPath string, options *server.Options) (*app.Application, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create database instance")
	}
	return app.New(kv, app.Config{
		Name:    name,
		Decoder: tx,
		Handler: h,
		Queries: QueryRouter(),
		Init:    Initializers(),
		Logger:  options.Logger,
		Debug:   options.Debug,
	})
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (quorum.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}
