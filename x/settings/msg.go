package settings

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const pathInitSettingsMsg = "settings/init"

var _ quorum.Msg = (*InitSettingsMsg)(nil)

// Path returns the routing path for this message.
func (InitSettingsMsg) Path() string {
	return pathInitSettingsMsg
}

// Validate ensures the message is well formed.
func (m *InitSettingsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "OpsFeeAccount", m.OpsFeeAccount.Validate())
	errs = errors.AppendField(errs, "MultisigCreationFee", validateFee(m.MultisigCreationFee))
	errs = errors.AppendField(errs, "ProposalCreationFee", validateFee(m.ProposalCreationFee))
	return errs
}

// Validate ensures the configuration names a deployer.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Deployer", c.Deployer.Validate())
	return errs
}
