package radio

import (
	"fmt"

	"github.com/mdlayher/wifi"
)

// DetectInterface returns the name of the first 802.11 station
// interface on the system, via nl80211.
func DetectInterface() (string, error) {
	client, err := wifi.New()
	if err != nil {
		return "", fmt.Errorf("failed to open nl80211: %w", err)
	}

	defer func() { _ = client.Close() }()

	ifaces, err := client.Interfaces()
	if err != nil {
		return "", fmt.Errorf("failed to enumerate wifi interfaces: %w", err)
	}

	for _, ifi := range ifaces {
		if ifi.Name != "" && ifi.Type == wifi.InterfaceTypeStation {
			return ifi.Name, nil
		}
	}

	return "", ErrNoInterface
}
