package radio

// SecSummary is a supplicant security summary (the parsed WPA or RSN
// information element), using the supplicant's suite names.
type SecSummary struct {
	KeyMgmt  []string
	Pairwise []string
}

// BSS is the raw platform representation of one observed network,
// kept as close to the supplicant's vocabulary as practical.
// Normalize maps it into the stable models.ScanRecord shape.
type BSS struct {
	SSID      []byte
	BSSID     string
	Frequency int // MHz
	Signal    int // dBm
	Age       int // seconds since the BSS was last seen
	Privacy   bool
	Mode      string // "infrastructure" or "ad-hoc"
	WPA       *SecSummary
	RSN       *SecSummary
	IEs       []byte // raw information element blob
}
