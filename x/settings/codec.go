package settings

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/coin"
)

// Settings is the authority registry. There is at most one instance of it
// and it is created by the deployer with the InitSettingsMsg.
type Settings struct {
	Metadata    *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	Initialized bool             `protobuf:"varint,2,opt,name=initialized,proto3" json:"initialized,omitempty"`
	// OpsFeeAccount receives all creation fees.
	OpsFeeAccount quorum.Address `protobuf:"bytes,3,opt,name=ops_fee_account,json=opsFeeAccount,proto3" json:"ops_fee_account,omitempty"`
	// Admin is the deployer that initialized the registry.
	Admin               quorum.Address `protobuf:"bytes,4,opt,name=admin,proto3" json:"admin,omitempty"`
	MultisigCreationFee *coin.Coin     `protobuf:"bytes,5,opt,name=multisig_creation_fee,json=multisigCreationFee" json:"multisig_creation_fee,omitempty"`
	ProposalCreationFee *coin.Coin     `protobuf:"bytes,6,opt,name=proposal_creation_fee,json=proposalCreationFee" json:"proposal_creation_fee,omitempty"`
}

type settingsPB Settings

func (m *settingsPB) Reset()         { *m = settingsPB{} }
func (m *settingsPB) String() string { return proto.CompactTextString(m) }
func (*settingsPB) ProtoMessage()    {}

func (m *Settings) Marshal() ([]byte, error) { return proto.Marshal((*settingsPB)(m)) }

func (m *Settings) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*settingsPB)(m)) }

func (m *Settings) String() string { return proto.CompactTextString((*settingsPB)(m)) }

// InitSettingsMsg creates the authority registry.
type InitSettingsMsg struct {
	Metadata            *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	OpsFeeAccount       quorum.Address   `protobuf:"bytes,2,opt,name=ops_fee_account,json=opsFeeAccount,proto3" json:"ops_fee_account,omitempty"`
	MultisigCreationFee *coin.Coin       `protobuf:"bytes,3,opt,name=multisig_creation_fee,json=multisigCreationFee" json:"multisig_creation_fee,omitempty"`
	ProposalCreationFee *coin.Coin       `protobuf:"bytes,4,opt,name=proposal_creation_fee,json=proposalCreationFee" json:"proposal_creation_fee,omitempty"`
}

type initSettingsMsgPB InitSettingsMsg

func (m *initSettingsMsgPB) Reset()         { *m = initSettingsMsgPB{} }
func (m *initSettingsMsgPB) String() string { return proto.CompactTextString(m) }
func (*initSettingsMsgPB) ProtoMessage()    {}

func (m *InitSettingsMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*initSettingsMsgPB)(m))
}

func (m *InitSettingsMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*initSettingsMsgPB)(m))
}

// Configuration is the genesis provided configuration of this extension.
type Configuration struct {
	Metadata *quorum.Metadata `protobuf:"bytes,1,opt,name=metadata" json:"metadata,omitempty"`
	// Deployer is the only address allowed to initialize the registry.
	Deployer quorum.Address `protobuf:"bytes,2,opt,name=deployer,proto3" json:"deployer,omitempty"`
}

type configurationPB Configuration

func (m *configurationPB) Reset()         { *m = configurationPB{} }
func (m *configurationPB) String() string { return proto.CompactTextString(m) }
func (*configurationPB) ProtoMessage()    {}

func (m *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*configurationPB)(m)) }

func (m *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationPB)(m))
}
