package ws

const (
	// client - server
	MsgMove = "move"
	MsgHelp = "help"
	MsgExit = "exit"
	MsgPing = "ping"

	// server - client
	MsgCommit = "commit"
	MsgRules  = "rules"
	MsgResult = "result"
	MsgError  = "error"
	MsgPong   = "pong"
)
