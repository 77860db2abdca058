package main

import (
	"github.com/fwojciec/markotravel/mcp"
)

// Run executes the serve command. It blocks until the client disconnects.
func (c *ServeCmd) Run(deps *Dependencies) error {
	deps.Logger.Info("serving tools over stdio", "server", mcp.ServerName, "version", mcp.ServerVersion)
	return mcp.NewServer(deps.Places).Run(deps.Ctx)
}
