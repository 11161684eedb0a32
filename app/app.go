/*
Package app turns a decorated handler stack into an ABCI application.

The Application keeps the committed store together with the block and
mempool caches, decodes raw transactions, routes queries and records the
chain id given at genesis. Errors in the steps that carry no user input
(InitChain, BeginBlock, EndBlock and Commit) leave the node in an unknown
state, so they panic.
*/
package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Config collects the collaborators of an Application.
type Config struct {
	// Name is reported by Info.
	Name    string
	Decoder quorum.TxDecoder
	Handler quorum.Handler
	Queries quorum.QueryRouter
	// Init reads the app_state section of the genesis file. It may be nil.
	Init   quorum.Initializer
	Logger log.Logger
	// Debug adds stack traces to the logs of failed transactions.
	Debug bool
}

// Application implements abci.Application.
type Application struct {
	conf    Config
	state   *state
	chainID string

	// base is valid for the lifetime of the application, block is rebuilt
	// on every BeginBlock.
	base  quorum.Context
	block quorum.Context
}

var _ abci.Application = (*Application)(nil)

// New loads the latest version of db and prepares the application to
// continue from there.
func New(db quorum.CommitKVStore, conf Config) (*Application, error) {
	if conf.Logger == nil {
		conf.Logger = log.NewNopLogger()
	}
	st, err := openState(db)
	if err != nil {
		return nil, err
	}
	a := &Application{
		conf:  conf,
		state: st,
		base:  quorum.WithLogger(context.Background(), conf.Logger),
	}
	if a.chainID, err = loadChainID(st.deliver); err != nil {
		return nil, err
	}
	if a.chainID != "" {
		a.base = quorum.WithChainID(a.base, a.chainID)
	}
	last, err := db.LatestVersion()
	if err != nil {
		return nil, errors.Wrap(err, "latest version")
	}
	a.block = quorum.WithHeight(a.base, last.Version)
	return a, nil
}

// ChainID is empty until the genesis was loaded.
func (a *Application) ChainID() string {
	return a.chainID
}

func (a *Application) Info(abci.RequestInfo) abci.ResponseInfo {
	last, err := a.state.db.LatestVersion()
	if err != nil {
		panic(err)
	}
	a.conf.Logger.Info("Info synced", "height", last.Version, "hash", fmt.Sprintf("%X", last.Hash))
	return abci.ResponseInfo{
		Data:             a.conf.Name,
		LastBlockHeight:  last.Version,
		LastBlockAppHash: last.Hash,
	}
}

func (a *Application) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "not supported"}
}

// InitChain stores the chain id and hands the app_state to the
// initializers. It runs once in the lifetime of a chain.
func (a *Application) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := a.genesis(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (a *Application) genesis(chainID string, appState []byte) error {
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrEmpty, "genesis app_state")
	}
	var opts quorum.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "genesis app_state: %s", err)
	}
	if err := saveChainID(a.state.deliver, chainID); err != nil {
		return err
	}
	a.chainID = chainID
	a.base = quorum.WithChainID(a.base, chainID)
	if a.conf.Init == nil {
		return nil
	}
	return a.conf.Init.FromGenesis(opts, a.state.deliver)
}

func (a *Application) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := quorum.WithHeader(a.base, req.Header)
	a.block = quorum.WithHeight(ctx, req.Header.Height)
	return abci.ResponseBeginBlock{}
}

// EndBlock never changes the validator set.
func (a *Application) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}

func (a *Application) Commit() abci.ResponseCommit {
	id, err := a.state.commit()
	if err != nil {
		panic(err)
	}
	a.conf.Logger.Debug("Commit synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

func (a *Application) CheckTx(raw []byte) abci.ResponseCheckTx {
	tx, err := a.decode(raw)
	if err != nil {
		return a.checkFailed(err)
	}
	ctx := quorum.WithLogInfo(a.block, "call", "check_tx", "path", quorum.GetPath(tx))
	res, err := a.conf.Handler.Check(ctx, a.state.check, tx)
	if err != nil {
		return a.checkFailed(err)
	}
	return abci.ResponseCheckTx{Data: res.Data, Log: res.Log, GasWanted: res.GasAllocated}
}

func (a *Application) checkFailed(err error) abci.ResponseCheckTx {
	code, log := errors.ABCIInfo(err, a.conf.Debug)
	return abci.ResponseCheckTx{Code: code, Log: "check tx: " + log}
}

func (a *Application) DeliverTx(raw []byte) abci.ResponseDeliverTx {
	tx, err := a.decode(raw)
	if err != nil {
		return a.deliverFailed(err)
	}
	ctx := quorum.WithLogInfo(a.block, "call", "deliver_tx", "path", quorum.GetPath(tx))
	res, err := a.conf.Handler.Deliver(ctx, a.state.deliver, tx)
	if err != nil {
		return a.deliverFailed(err)
	}
	return abci.ResponseDeliverTx{Data: res.Data, Log: res.Log, Tags: res.Tags}
}

func (a *Application) deliverFailed(err error) abci.ResponseDeliverTx {
	code, log := errors.ABCIInfo(err, a.conf.Debug)
	return abci.ResponseDeliverTx{Code: code, Log: "deliver tx: " + log}
}

// decode turns a decoder failure, panics included, into ErrInvalidMsg.
func (a *Application) decode(raw []byte) (tx quorum.Tx, err error) {
	defer errors.Recover(&err)
	if tx, err = a.conf.Decoder(raw); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidMsg, err.Error())
	}
	return tx, nil
}
