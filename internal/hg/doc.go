// Package hg locates the Mercurial binary and builds the arguments and
// environment used to launch it in command-server mode.
package hg
