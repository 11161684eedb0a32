package gconf

import (
	"reflect"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x"
)

// OwnedConfig is a configuration that its owner can change.
type OwnedConfig interface {
	Configuration
	GetOwner() quorum.Address
}

// Patcher is a message carrying new values for a configuration. Zero
// fields of the patch keep their current value.
type Patcher interface {
	quorum.Msg
	ConfigPatch() OwnedConfig
}

// NewUpdateConfigurationHandler returns a handler applying Patcher messages
// to the configuration of pkg. proto is a pointer of the configuration
// type. The change must be authorized by the current owner.
func NewUpdateConfigurationHandler(pkg string, proto OwnedConfig, auth x.Authenticator) quorum.Handler {
	return updateHandler{
		pkg:      pkg,
		confType: reflect.TypeOf(proto).Elem(),
		auth:     auth,
	}
}

type updateHandler struct {
	pkg      string
	confType reflect.Type
	auth     x.Authenticator
}

func (h updateHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if err := h.update(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{}, nil
}

func (h updateHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	if err := h.update(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.DeliverResult{}, nil
}

func (h updateHandler) update(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "load msg")
	}
	p, ok := msg.(Patcher)
	if !ok {
		return errors.Wrapf(errors.ErrInvalidMsg, "%T carries no configuration patch", msg)
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	conf := reflect.New(h.confType).Interface().(OwnedConfig)
	if err := Load(db, h.pkg, conf); err != nil {
		return err
	}
	owner := conf.GetOwner()
	if len(owner) == 0 {
		return errors.Wrapf(errors.ErrUnauthorized, "%s configuration has no owner", h.pkg)
	}
	if !h.auth.HasAddress(ctx, owner) {
		return errors.Wrap(errors.ErrUnauthorized, "configuration owner did not sign")
	}
	if err := merge(conf, p.ConfigPatch()); err != nil {
		return err
	}
	return Save(db, h.pkg, conf)
}

// merge copies every non zero field of patch into conf. Both must point
// to the same struct type.
func merge(conf, patch OwnedConfig) error {
	dst, src := reflect.ValueOf(conf), reflect.ValueOf(patch)
	if src.Type() != dst.Type() {
		return errors.Wrapf(errors.ErrInvalidMsg, "patch of type %T for %T", patch, conf)
	}
	if src.IsNil() {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	dst, src = dst.Elem(), src.Elem()
	for i := 0; i < src.NumField(); i++ {
		f := src.Field(i)
		if !reflect.DeepEqual(f.Interface(), reflect.Zero(f.Type()).Interface()) {
			dst.Field(i).Set(f)
		}
	}
	return nil
}
