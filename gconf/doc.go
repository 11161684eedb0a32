/*
Package gconf keeps the configuration of each extension in the store.

A configuration is a single message saved under "_c:<package>". It is
created from the "conf" section of the genesis file by InitConfig, read
with Load and changed at runtime by an owner signed patch, see
NewUpdateConfigurationHandler.
*/
package gconf
