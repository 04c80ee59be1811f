// Package hostid derives the stable server identity recorded in config.toml.
//
// The identity is the hardware (MAC) address of the first non-loopback
// interface that has one. It is derived exactly once, when a fresh store is
// synthesized; after that the value in config.toml is authoritative and is
// never regenerated.
package hostid

import (
	"errors"
	"fmt"
	"net"

	"github.com/conn-castle/deploy-agent/internal/messages"
)

// ErrUnavailable indicates no network interface exposes a hardware address.
// Callers must treat this as a hard failure, not a prompt to invent an identity.
var ErrUnavailable = errors.New(messages.HostIDUnavailable)

// Interfaces is a seam for tests.
var Interfaces = net.Interfaces

// ServerIdentity returns the hardware address of the first usable interface.
func ServerIdentity() (string, error) {
	ifaces, err := Interfaces()
	if err != nil {
		return "", fmt.Errorf(messages.HostIDListFmt, err)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if len(iface.HardwareAddr) == 0 {
			continue
		}
		return iface.HardwareAddr.String(), nil
	}
	return "", ErrUnavailable
}
