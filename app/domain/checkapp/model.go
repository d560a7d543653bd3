package checkapp

import "encoding/json"

// Info represents information about the service.
type Info struct {
	Status     string `json:"status"`
	Build      string `json:"build"`
	Host       string `json:"host"`
	GoMaxProcs int    `json:"goMaxProcs"`
}

// Encode implements the web.Encoder interface.
func (info Info) Encode() ([]byte, string, error) {
	data, err := json.Marshal(info)
	return data, "application/json", err
}
