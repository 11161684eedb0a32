package settings

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
	"github.com/iov-one/quorum/x"
)

const (
	// packageName is used to store the configuration of this extension.
	packageName = "settings"

	initSettingsCost int64 = 100
)

// RegisterRoutes registers handlers for all messages of this extension.
func RegisterRoutes(r quorum.Registry, auth x.Authenticator) {
	r.Handle(pathInitSettingsMsg, NewInitSettingsHandler(auth))
}

// RegisterQuery exposes the authority registry under "/settings".
func RegisterQuery(qr quorum.QueryRouter) {
	NewBucket().Register("settings", qr)
}

// InitSettingsHandler creates the authority registry. It can succeed only
// once and only when signed by the configured deployer.
type InitSettingsHandler struct {
	auth   x.Authenticator
	bucket *Bucket
}

var _ quorum.Handler = (*InitSettingsHandler)(nil)

// NewInitSettingsHandler returns a handler for the InitSettingsMsg.
func NewInitSettingsHandler(auth x.Authenticator) *InitSettingsHandler {
	return &InitSettingsHandler{
		auth:   auth,
		bucket: NewBucket(),
	}
}

func (h *InitSettingsHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: initSettingsCost}, nil
}

func (h *InitSettingsHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, deployer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	s := &Settings{
		Metadata:            &quorum.Metadata{Schema: 1},
		Initialized:         true,
		OpsFeeAccount:       msg.OpsFeeAccount,
		Admin:               deployer,
		MultisigCreationFee: msg.MultisigCreationFee,
		ProposalCreationFee: msg.ProposalCreationFee,
	}
	if err := h.bucket.Save(db, s); err != nil {
		return nil, errors.Wrap(err, "save registry")
	}
	quorum.GetLogger(ctx).Info("authority registry initialized",
		"admin", deployer, "ops_fee_account", msg.OpsFeeAccount)
	return &quorum.DeliverResult{}, nil
}

func (h *InitSettingsHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*InitSettingsMsg, quorum.Address, error) {
	var msg InitSettingsMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, nil, errors.Wrap(err, "load configuration")
	}
	if !h.auth.HasAddress(ctx, conf.Deployer) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "deployer signature required")
	}
	switch ok, err := h.bucket.Exists(db); {
	case err != nil:
		return nil, nil, errors.Wrap(err, "registry lookup")
	case ok:
		return nil, nil, errors.Wrap(errors.ErrDuplicate, "already initialized")
	}
	return &msg, conf.Deployer, nil
}
