package models

type Product struct {
	ID    ID      `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image,omitempty"`
	Price float64 `json:"price"`
}

// ShareTarget is one entry of the share-product sheet.
type ShareTarget struct {
	Network string `json:"network"`
	Label   string `json:"label"`
	URL     string `json:"url"`
}

type ShareSheet struct {
	Product Product       `json:"product"`
	URL     string        `json:"url"`
	Targets []ShareTarget `json:"targets"`
	QRCode  string        `json:"qrCode"`
}
