/*
Package signpost holds what the rest of the module shares:
the sentinel errors every package wraps, the [Environment] an app runs in,
and the [Config] an app reads from its environment.

The typed link helpers live in http/link;
the expressions they take are built with http/action.
*/
package signpost
