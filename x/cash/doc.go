/*
Package cash defines a simple implementation of sending coins
between wallets.

There is no logic in the coins (tokens), except that the balance
of any coin may not go below zero. Thus, this implementation is
referred to as cash. Simple and safe.

A multisig authority holds its funds in a cash wallet like any other
account. Proposals move those funds by replaying a SendMsg whose source
is the authority address.
*/
package cash
