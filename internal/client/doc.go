// Package client is a small MCP client for talking to a running hive
// server from the command line.
//
// It connects over the streamable HTTP transport (the /mcp endpoint of the
// http bridge, or the streamable-http transport) or over SSE, performs the
// initialize handshake and exposes the calls the CLI needs:
//
//	c := client.New("http://localhost:3002/mcp", client.TransportStreamableHTTP, 30*time.Second)
//	if err := c.Connect(ctx); err != nil {
//	    return err
//	}
//	defer c.Close()
//	text, err := c.CallToolText(ctx, "get_swarm_status", nil)
//
// Tool failures reported by the server as JSON-RPC errors are returned as
// Go errors carrying the server message.
package client
