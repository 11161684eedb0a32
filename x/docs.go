/*
Package x holds what the extensions of the chain share: the interface used
to authenticate transactions. Each sub package is one extension with its
own messages, handlers and storage.
*/
package x
