package app

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/cash"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/iov-one/quorum/x/settings"
	"github.com/iov-one/quorum/x/sigs"
)

type msgFactory func() quorum.Msg

// registry returns factories indexed by the path of the message they
// create.
func registry(fns ...msgFactory) map[string]msgFactory {
	r := make(map[string]msgFactory, len(fns))
	for _, fn := range fns {
		r[fn().Path()] = fn
	}
	return r
}

// txMessages lists every message that can be submitted in a transaction.
var txMessages = registry(
	func() quorum.Msg { return &cash.SendMsg{} },
	func() quorum.Msg { return &sigs.BumpSequenceMsg{} },
	func() quorum.Msg { return &settings.InitSettingsMsg{} },
	func() quorum.Msg { return &multisig.CreateMultisigMsg{} },
	func() quorum.Msg { return &multisig.UpdateMultisigMsg{} },
	func() quorum.Msg { return &multisig.CreateProposalMsg{} },
	func() quorum.Msg { return &multisig.ApproveProposalMsg{} },
	func() quorum.Msg { return &multisig.RejectProposalMsg{} },
	func() quorum.Msg { return &multisig.ExecuteProposalMsg{} },
	func() quorum.Msg { return &multisig.UpdateConfigurationMsg{} },
)

// subOperations lists messages that an executed proposal can replay. Proposal
// management messages are excluded so that an execution cannot nest another
// one.
var subOperations = registry(
	func() quorum.Msg { return &cash.SendMsg{} },
	func() quorum.Msg { return &multisig.UpdateMultisigMsg{} },
	func() quorum.Msg { return &multisig.UpdateConfigurationMsg{} },
)

func decode(reg map[string]msgFactory, route string, payload []byte) (quorum.Msg, error) {
	fn, ok := reg[route]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidType, "unknown route %q", route)
	}
	msg := fn()
	if err := msg.Unmarshal(payload); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "cannot decode %q: %s", route, err)
	}
	return msg, nil
}

// SubOperationDecoder decodes sub operations of executed proposals.
var SubOperationDecoder = multisig.DecoderFunc(func(target string, payload []byte) (quorum.Msg, error) {
	if _, ok := subOperations[target]; !ok {
		return nil, errors.Wrapf(multisig.ErrUnknownTarget, "%q", target)
	}
	return decode(subOperations, target, payload)
})
