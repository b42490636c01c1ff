package events

import (
	"fmt"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// BusConfig configures the embedded NATS server.
type BusConfig struct {
	Host string
	// Port to listen on. -1 picks a random free port.
	Port int
}

// Bus is an in-process NATS server.
type Bus struct {
	server *natsserver.Server
}

// NewBus starts an embedded NATS server and waits until it accepts
// connections.
func NewBus(cfg BusConfig) (*Bus, error) {
	opts := &natsserver.Options{
		Host:   cfg.Host,
		Port:   cfg.Port,
		NoLog:  true,
		NoSigs: true,
	}

	ns, err := natsserver.NewServer(opts)
	if err != nil {
		return nil, fmt.Errorf("create nats server: %w", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		return nil, fmt.Errorf("nats server not ready")
	}

	return &Bus{server: ns}, nil
}

// ClientURL returns the URL clients connect to.
func (b *Bus) ClientURL() string {
	return b.server.ClientURL()
}

// Close stops the server.
func (b *Bus) Close() {
	b.server.Shutdown()
	b.server.WaitForShutdown()
}

// Client wraps a NATS connection.
type Client struct {
	conn *nats.Conn
}

// NewClientFromURL connects to the NATS server at url.
func NewClientFromURL(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name("hivemcp"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &Client{conn: conn}, nil
}

// Publish implements Transport.
func (c *Client) Publish(subject string, data []byte) error {
	return c.conn.Publish(subject, data)
}

// Subscribe registers handler for subject.
func (c *Client) Subscribe(subject string, handler func(msg *nats.Msg)) (*nats.Subscription, error) {
	return c.conn.Subscribe(subject, handler)
}

// Flush waits until the server has processed all buffered messages.
func (c *Client) Flush() error {
	return c.conn.Flush()
}

// Close drains and closes the connection.
func (c *Client) Close() {
	if err := c.conn.Drain(); err != nil {
		c.conn.Close()
	}
}
