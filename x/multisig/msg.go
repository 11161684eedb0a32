package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
)

const (
	pathCreateMultisigMsg      = "multisig/create_multisig"
	pathUpdateMultisigMsg      = "multisig/update_multisig"
	pathCreateProposalMsg      = "multisig/create_proposal"
	pathApproveProposalMsg     = "multisig/approve"
	pathRejectProposalMsg      = "multisig/reject"
	pathExecuteProposalMsg     = "multisig/execute"
	pathUpdateConfigurationMsg = "multisig/update_configuration"

	createMultisigCost  int64 = 300 // 3x more expensive than SendMsg
	updateMultisigCost  int64 = 150 // Half the creation cost
	createProposalCost  int64 = 200
	voteCost            int64 = 50
	executeProposalCost int64 = 100
)

var _ quorum.Msg = (*CreateMultisigMsg)(nil)

// Path fulfills quorum.Msg interface to allow routing
func (CreateMultisigMsg) Path() string {
	return pathCreateMultisigMsg
}

// Validate enforces owners and threshold boundaries
func (m *CreateMultisigMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owners", validateOwnerSet(m.Owners, m.Threshold))
	errs = errors.AppendField(errs, "Label", validateLabel(m.Label))
	errs = errors.AppendField(errs, "CoolOffPeriod", validateCoolOff(m.CoolOffPeriod))
	return errs
}

var _ quorum.Msg = (*UpdateMultisigMsg)(nil)

// Path fulfills quorum.Msg interface to allow routing
func (UpdateMultisigMsg) Path() string {
	return pathUpdateMultisigMsg
}

// Validate enforces owners and threshold boundaries
func (m *UpdateMultisigMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.MultisigID) == 0 {
		errs = errors.Append(errs, errors.Field("MultisigID", errors.ErrEmpty, "required"))
	}
	errs = errors.AppendField(errs, "Owners", validateOwnerSet(m.Owners, m.Threshold))
	errs = errors.AppendField(errs, "Label", validateLabel(m.Label))
	errs = errors.AppendField(errs, "CoolOffPeriod", validateCoolOff(m.CoolOffPeriod))
	return errs
}

var _ quorum.Msg = (*CreateProposalMsg)(nil)

// Path fulfills quorum.Msg interface to allow routing
func (CreateProposalMsg) Path() string {
	return pathCreateProposalMsg
}

// Validate checks the batch shape. Sub operation payloads are not decoded
// until the proposal is executed.
func (m *CreateProposalMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.MultisigID) == 0 {
		errs = errors.Append(errs, errors.Field("MultisigID", errors.ErrEmpty, "required"))
	}
	errs = errors.AppendField(errs, "Instructions", validateInstructions(m.Instructions))
	errs = errors.Append(errs, validateTexts(m.Title, m.Description))
	if m.ExpiresAt <= 0 {
		errs = errors.Append(errs, errors.Field("ExpiresAt", errors.ErrInvalidInput, "required"))
	}
	return errs
}

var _ quorum.Msg = (*ApproveProposalMsg)(nil)

// Path fulfills quorum.Msg interface to allow routing
func (ApproveProposalMsg) Path() string {
	return pathApproveProposalMsg
}

func (m *ApproveProposalMsg) Validate() error {
	return validateProposalRef(m.Metadata, m.ProposalID)
}

var _ quorum.Msg = (*RejectProposalMsg)(nil)

// Path fulfills quorum.Msg interface to allow routing
func (RejectProposalMsg) Path() string {
	return pathRejectProposalMsg
}

func (m *RejectProposalMsg) Validate() error {
	return validateProposalRef(m.Metadata, m.ProposalID)
}

func validateProposalRef(meta *quorum.Metadata, id []byte) error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", meta.Validate())
	if len(id) == 0 {
		errs = errors.Append(errs, errors.Field("ProposalID", errors.ErrEmpty, "required"))
	}
	return errs
}

var _ quorum.Msg = (*ExecuteProposalMsg)(nil)

// Path fulfills quorum.Msg interface to allow routing
func (ExecuteProposalMsg) Path() string {
	return pathExecuteProposalMsg
}

func (m *ExecuteProposalMsg) Validate() error {
	errs := validateProposalRef(m.Metadata, m.ProposalID)
	for i, a := range m.Accounts {
		if a == nil {
			errs = errors.Append(errs, errors.Field("Accounts", errors.ErrEmpty, "account %d", i))
			continue
		}
		if err := a.Address.Validate(); err != nil {
			errs = errors.Append(errs, errors.Field("Accounts", err, "account %d", i))
		}
	}
	return errs
}

var _ quorum.Msg = (*UpdateConfigurationMsg)(nil)

// Path fulfills quorum.Msg interface to allow routing
func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfigurationMsg
}

// ConfigPatch returns the new configuration values.
func (m *UpdateConfigurationMsg) ConfigPatch() gconf.OwnedConfig {
	return m.Patch
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.Append(errs, errors.Field("Patch", errors.ErrEmpty, "required"))
	} else if m.Patch.Owner != nil {
		errs = errors.AppendField(errs, "Patch", m.Patch.Owner.Validate())
	}
	return errs
}

// Validate ensures the configuration limits are usable.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if c.MaxOwners < 1 {
		errs = errors.Append(errs, errors.Field("MaxOwners", errors.ErrInvalidInput, "must be at least 1"))
	}
	if c.MaxInstructions < 1 {
		errs = errors.Append(errs, errors.Field("MaxInstructions", errors.ErrInvalidInput, "must be at least 1"))
	}
	return errs
}
