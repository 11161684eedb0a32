/*
Package multisig implements multi-owner transaction authorization.

A Multisig is a set of owners together with an approval threshold. Every
multisig has an authority: an address derived from the multisig ID that has
no private key. Coins and other resources owned by the authority can only be
moved by executing a proposal that reached the quorum.

Any owner can create a Proposal containing a batch of sub operations. Owners
then approve or reject it. Votes are kept in a ledger separate from the
proposal and the status is recomputed after each vote. A proposal passes once
the number of approvals reaches the threshold and fails once the number of
rejections makes the threshold unreachable.

A passed proposal can be executed by anyone after the cool off period of the
multisig elapsed and before the proposal expires. All sub operations are
replayed within a single cache under the authority of the multisig. Either
all of them succeed or none is applied.

Changing the owner set or the threshold of a multisig increments its owner
set sequence. Proposals created for an older sequence can no longer be voted
on nor executed.
*/
package multisig
