package network

import (
	"net"
	"time"
)

// ConnectivityChecker reports whether the network is reachable right now.
// The weather coordinator consults it before spending a fetch attempt.
type ConnectivityChecker interface {
	IsNetworkAvailable() bool
}

// DialProbe checks connectivity by opening a TCP connection to a well-known
// address. It is deliberately conservative: any dial failure means offline.
type DialProbe struct {
	Address string
	Timeout time.Duration
}

func NewDialProbe(address string, timeout time.Duration) *DialProbe {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &DialProbe{Address: address, Timeout: timeout}
}

func (p *DialProbe) IsNetworkAvailable() bool {
	conn, err := net.DialTimeout("tcp", p.Address, p.Timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
