package hall

import "errors"

type Hall struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

func (h *Hall) Validate() error {
	if h.Number <= 0 {
		return errors.New("number must be greater than 0")
	}
	if h.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
