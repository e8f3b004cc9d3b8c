// Package rcon implements the UDP remote-console protocol server: a
// fixed-port datagram loop that bridges an external
// client to the host's resolved console-command entry, optionally mirroring
// captured host output back to the client.
package rcon

const (
	// ListenAddr is the hard-coded loopback address and port the server
	// binds to.
	ListenAddr = "127.0.0.1:10666"

	// protoPrefix is the mandatory first byte of every datagram in either
	// direction.
	protoPrefix = 0xFF

	// clrcBeginConnection is the client-to-server login opcode.
	clrcBeginConnection = 52
	// clrcCommand is the client-to-server command-dispatch opcode.
	clrcCommand = 54

	// svrcLoggedIn is the server-to-client login-acknowledgement opcode.
	svrcLoggedIn = 35
	// svrcMessage is the server-to-client mirrored-output opcode.
	svrcMessage = 37

	// maxCommandBytes bounds the payload accepted by CLRC_COMMAND; longer
	// payloads are truncated at this limit.
	maxCommandBytes = 4094
)

// loggedInDatagram is the fixed 2-byte SVRC_LOGGEDIN reply (FF 23).
var loggedInDatagram = []byte{protoPrefix, svrcLoggedIn}
