package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Instance is a wordhunt web front end found on the local network
type Instance struct {
	// Name is the mDNS instance name (e.g., "wordhunt on kitchen-pc")
	Name string

	// Hostname is the advertised host (e.g., "kitchen-pc.local.")
	Hostname string

	// IP is the preferred address, IPv4 when available
	IP string

	Port int

	// Version is the advertised wordhunt build, if any
	Version string

	// Path is the page path, "/" unless advertised otherwise
	Path string

	DiscoveredAt time.Time
}

// String returns a human-readable representation of the instance
func (i *Instance) String() string {
	return fmt.Sprintf("%s at %s", i.Name, i.URL())
}

// URL returns the address a browser should open
func (i *Instance) URL() string {
	path := i.Path
	if path == "" {
		path = "/"
	}
	return "http://" + net.JoinHostPort(i.IP, strconv.Itoa(i.Port)) + path
}
