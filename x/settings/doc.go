/*
Package settings implements the authority registry.

The registry is a singleton created once by the deployer, the address set in
the genesis configuration of this package. It declares the account that
collects operational fees and the fees charged when a multisig or a proposal
is created. Any further InitSettingsMsg is rejected.
*/
package settings
