package app

import (
	"strings"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Query reads the last committed state. The path selects the handler,
// "/<bucket>" or "/<bucket>/<index>", and may carry a modifier after a
// "?". Key and Value of the response are ResultSets of the same length,
// so a query can return any number of models. Historic heights are not
// kept.
func (a *Application) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod := req.Path, quorum.KeyQueryMod
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path, mod = path[:i], path[i+1:]
	}
	h := a.conf.Queries.Handler(path)
	if h == nil {
		return queryFailed(errors.Wrapf(errors.ErrNotFound, "query path %q", req.Path))
	}
	last, err := a.state.db.LatestVersion()
	if err != nil {
		return queryFailed(err)
	}
	if req.Height != 0 && req.Height != last.Version {
		return queryFailed(errors.Wrapf(errors.ErrInvalidInput, "height %d, only %d is available", req.Height, last.Version))
	}

	db := a.state.db.CacheWrap()
	defer db.Discard()
	models, err := h.Query(db, mod, req.Data)
	if err != nil {
		return queryFailed(err)
	}
	var keys, values ResultSet
	for _, m := range models {
		keys.Results = append(keys.Results, m.Key)
		values.Results = append(values.Results, m.Value)
	}
	res := abci.ResponseQuery{Height: last.Version}
	if res.Key, err = keys.Marshal(); err != nil {
		return queryFailed(err)
	}
	if res.Value, err = values.Marshal(); err != nil {
		return queryFailed(err)
	}
	return res
}

func queryFailed(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{Code: code, Log: log}
}
