/*
Package quorum holds the interfaces shared by the multisig engine and its
supporting extensions: stores, transactions, messages, handlers and
decorators. It also carries the small value types every extension needs,
such as addresses, conditions and block time, and the helpers that put
block data into a context.

The multi-owner authorization engine lives in x/multisig.
*/
package quorum
