package httpclient

import (
	"net/http"
	"sync"
	"time"
)

// Pool hands out HTTP clients with tuned transports for outbound capability
// calls (blob storage, email delivery).
type Pool struct {
	clients chan *http.Client
	mu      sync.RWMutex
	closed  bool
}

// NewPool creates a pool pre-populated with maxClients clients
func NewPool(maxClients int) *Pool {
	pool := &Pool{
		clients: make(chan *http.Client, maxClients),
	}
	for i := 0; i < maxClients; i++ {
		pool.clients <- newClient()
	}
	return pool
}

func newClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Get retrieves an HTTP client from the pool, creating one when empty
func (p *Pool) Get() *http.Client {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return newClient()
	}

	select {
	case client := <-p.clients:
		return client
	default:
		return newClient()
	}
}

// Put returns a client to the pool; extra clients are dropped
func (p *Pool) Put(client *http.Client) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return
	}

	select {
	case p.clients <- client:
	default:
	}
}

// Close drains the pool
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	close(p.clients)
	for range p.clients {
	}
}
