// Package discovery finds and announces wordhunt web front ends over mDNS.
//
// "wordhunt serve --advertise" registers a "_wordhunt._tcp" service so
// other machines on the LAN can find the page; "wordhunt scan" browses for
// those registrations:
//
//	ad, err := discovery.Advertise("wordhunt on "+host, port, version.Version)
//	defer ad.Shutdown()
//
//	instances, err := discovery.NewScanner().Scan(ctx)
//	for _, inst := range instances {
//	    fmt.Println(inst.Name, inst.URL())
//	}
package discovery
